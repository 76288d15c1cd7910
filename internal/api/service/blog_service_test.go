package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorVA6/fullstack-part4/internal/api/models"
	"github.com/VitorVA6/fullstack-part4/internal/auth"
)

// fakeBlogRepo is an in-memory BlogRepository for service tests.
type fakeBlogRepo struct {
	blogs  []models.Blog
	owners map[string]models.UserSummary
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{owners: map[string]models.UserSummary{}}
}

func (f *fakeBlogRepo) withOwner(b models.Blog) models.BlogWithOwner {
	return models.BlogWithOwner{Blog: b, Owner: f.owners[b.OwnerID]}
}

func (f *fakeBlogRepo) List(_ context.Context) ([]models.BlogWithOwner, error) {
	out := make([]models.BlogWithOwner, 0, len(f.blogs))
	for _, b := range f.blogs {
		out = append(out, f.withOwner(b))
	}
	return out, nil
}

func (f *fakeBlogRepo) ListPlain(_ context.Context) ([]models.Blog, error) {
	return append([]models.Blog(nil), f.blogs...), nil
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id string) (*models.Blog, error) {
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			b := f.blogs[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogRepo) GetByIDWithOwner(ctx context.Context, id string) (*models.BlogWithOwner, error) {
	b, err := f.GetByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}
	bo := f.withOwner(*b)
	return &bo, nil
}

func (f *fakeBlogRepo) Insert(_ context.Context, blog *models.Blog) error {
	blog.ID = fmt.Sprintf("blog-%d", len(f.blogs)+1)
	f.blogs = append(f.blogs, *blog)
	return nil
}

func (f *fakeBlogRepo) UpdateByID(_ context.Context, id string, patch *models.UpdateBlogRequest) (*models.Blog, error) {
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			likes := 0
			if patch.Likes != nil {
				likes = *patch.Likes
			}
			f.blogs[i].Title = patch.Title
			f.blogs[i].URL = patch.URL
			f.blogs[i].Author = patch.Author
			f.blogs[i].Likes = likes
			b := f.blogs[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlogRepo) Count(_ context.Context) (int, error) {
	return len(f.blogs), nil
}

func userA() *models.User { return &models.User{ID: "user-a", Username: "alice", Name: "Alice"} }
func userB() *models.User { return &models.User{ID: "user-b", Username: "bob", Name: "Bob"} }

func TestCreateBindsOwnerAndDefaultsLikes(t *testing.T) {
	repo := newFakeBlogRepo()
	repo.owners["user-a"] = models.UserSummary{ID: "user-a", Username: "alice", Name: "Alice"}
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title: "Test",
		URL:   "https://test.com/",
	}, userA())
	require.NoError(t, err)

	assert.Equal(t, 0, created.Likes, "absent likes must default to zero")
	assert.Equal(t, "user-a", created.OwnerID)
	assert.Equal(t, "alice", created.Owner.Username)
}

func TestCreateKeepsExplicitLikes(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)

	likes := 20
	created, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title: "Test", URL: "https://test.com/", Author: "Test", Likes: &likes,
	}, userA())
	require.NoError(t, err)
	assert.Equal(t, 20, created.Likes)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title: "Owned by A", URL: "https://a.example/",
	}, userA())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, userB())
	assert.ErrorIs(t, err, auth.ErrNotOwner)
	assert.Len(t, repo.blogs, 1, "blog must remain after a rejected delete")

	err = svc.Delete(context.Background(), created.ID, userA())
	require.NoError(t, err)
	assert.Empty(t, repo.blogs)
}

func TestDeleteUnknownID(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	err := svc.Delete(context.Background(), "no-such-blog", userA())
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestUpdateNeedsNoIdentity(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title: "Owned by A", URL: "https://a.example/",
	}, userA())
	require.NoError(t, err)

	likes := 30
	updated, err := svc.Update(context.Background(), created.ID, &models.UpdateBlogRequest{
		Title: created.Title, URL: created.URL, Author: created.Author, Likes: &likes,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Likes)
	assert.Equal(t, "user-a", updated.OwnerID, "update must never move ownership")
}

func TestUpdateUnknownID(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	_, err := svc.Update(context.Background(), "no-such-blog", &models.UpdateBlogRequest{
		Title: "x", URL: "https://x.example/",
	})
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestStats(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)

	t.Run("empty collection", func(t *testing.T) {
		stats, err := svc.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalLikes)
		assert.Nil(t, stats.Favorite)
		assert.Nil(t, stats.MostBlogs)
		assert.Nil(t, stats.MostLikes)
	})

	t.Run("populated collection", func(t *testing.T) {
		for _, b := range []struct {
			title  string
			author string
			likes  int
		}{
			{"Canonical string reduction", "Edsger W. Dijkstra", 12},
			{"React patterns", "Michael Chan", 7},
			{"Go To Statement Considered Harmful", "Edsger W. Dijkstra", 5},
		} {
			likes := b.likes
			_, err := svc.Create(context.Background(), &models.CreateBlogRequest{
				Title: b.title, URL: "https://example.com/", Author: b.author, Likes: &likes,
			}, userA())
			require.NoError(t, err)
		}

		stats, err := svc.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 24, stats.TotalLikes)
		require.NotNil(t, stats.Favorite)
		assert.Equal(t, "Canonical string reduction", stats.Favorite.Title)
		require.NotNil(t, stats.MostBlogs)
		assert.Equal(t, "Edsger W. Dijkstra", stats.MostBlogs.Author)
		assert.Equal(t, 2, stats.MostBlogs.Blogs)
		require.NotNil(t, stats.MostLikes)
		assert.Equal(t, 17, stats.MostLikes.Likes)
	})
}
