// Package liststats computes derived statistics over a blog list. Every
// function is pure: no state is kept between calls and identical input
// yields identical output.
package liststats

import (
	"github.com/VitorVA6/fullstack-part4/internal/api/models"
)

// AuthorBlogs is the author with the largest number of blogs.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is the author with the largest accumulated like count.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums the likes of every blog. An empty list sums to zero.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// list. On a tie the earliest blog in input order wins.
func FavoriteBlog(blogs []models.Blog) *models.Blog {
	if len(blogs) == 0 {
		return nil
	}
	favorite := &blogs[0]
	for i := 1; i < len(blogs); i++ {
		if blogs[i].Likes > favorite.Likes {
			favorite = &blogs[i]
		}
	}
	return favorite
}

// MostBlogs returns the author with the most blogs, or nil for an empty
// list. Authors are grouped in a single pass preserving first-appearance
// order, so ties resolve to the author seen first.
func MostBlogs(blogs []models.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}
	counts := make(map[string]int, len(blogs))
	var order []string
	for _, b := range blogs {
		if _, seen := counts[b.Author]; !seen {
			order = append(order, b.Author)
		}
		counts[b.Author]++
	}

	top := &AuthorBlogs{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > top.Blogs {
			top = &AuthorBlogs{Author: author, Blogs: counts[author]}
		}
	}
	return top
}

// MostLikes returns the author whose blogs accumulate the most likes, or
// nil for an empty list. The tie-break rule matches MostBlogs.
func MostLikes(blogs []models.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}
	likes := make(map[string]int, len(blogs))
	var order []string
	for _, b := range blogs {
		if _, seen := likes[b.Author]; !seen {
			order = append(order, b.Author)
		}
		likes[b.Author] += b.Likes
	}

	top := &AuthorLikes{Author: order[0], Likes: likes[order[0]]}
	for _, author := range order[1:] {
		if likes[author] > top.Likes {
			top = &AuthorLikes{Author: author, Likes: likes[author]}
		}
	}
	return top
}
