package models

// User represents a registered account in the database.
type User struct {
	ID           string `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Name         string `db:"name" json:"name"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// RegisterRequest defines the structure for a user registration request.
// The password is validated by the service layer, not by binding tags,
// so that a policy violation surfaces as 422 rather than a bind error.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest defines the structure for a login request.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse defines the structure for a successful login response.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UserSummary is the owner excerpt embedded in blog listings.
type UserSummary struct {
	ID       string `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Name     string `db:"name" json:"name"`
}

// UserWithBlogs is a user together with the blogs they own. The owned
// list is a query-time view over the blogs table, never a stored column,
// so it cannot drift out of sync with blog ownership.
type UserWithBlogs struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Name     string        `json:"name"`
	Blogs    []BlogSummary `json:"blogs"`
}
