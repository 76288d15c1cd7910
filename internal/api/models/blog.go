package models

// Blog represents a single blog entry. Author is free-text attribution
// and is distinct from OwnerID, which references the creating user and
// never changes after creation.
type Blog struct {
	ID      string `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	URL     string `db:"url" json:"url"`
	Author  string `db:"author" json:"author"`
	Likes   int    `db:"likes" json:"likes"`
	OwnerID string `db:"owner_id" json:"-"`
}

// BlogWithOwner is a blog joined with its owner's public fields, the
// shape returned by the list and create endpoints.
type BlogWithOwner struct {
	Blog
	Owner UserSummary `json:"user" db:"owner"`
}

// BlogSummary is the excerpt of an owned blog embedded in user listings.
type BlogSummary struct {
	ID     string `db:"id" json:"id"`
	Title  string `db:"title" json:"title"`
	URL    string `db:"url" json:"url"`
	Author string `db:"author" json:"author"`
}

// CreateBlogRequest defines the structure for a blog creation request.
// Likes is a pointer so an absent field can be defaulted to zero once,
// at entity construction, instead of per call site.
type CreateBlogRequest struct {
	Title  string `json:"title" binding:"required"`
	URL    string `json:"url" binding:"required"`
	Author string `json:"author"`
	Likes  *int   `json:"likes" binding:"omitempty,min=0"`
}

// UpdateBlogRequest defines the structure for a blog update request.
// Any owner field supplied by the caller is ignored; ownership is fixed
// at creation.
type UpdateBlogRequest struct {
	Title  string `json:"title" binding:"required"`
	URL    string `json:"url" binding:"required"`
	Author string `json:"author"`
	Likes  *int   `json:"likes" binding:"omitempty,min=0"`
}

// NewBlog builds a Blog entity from a creation request, filling the
// likes default and binding ownership to the acting user.
func NewBlog(req *CreateBlogRequest, ownerID string) *Blog {
	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}
	return &Blog{
		Title:   req.Title,
		URL:     req.URL,
		Author:  req.Author,
		Likes:   likes,
		OwnerID: ownerID,
	}
}
