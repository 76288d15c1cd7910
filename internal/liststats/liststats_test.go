package liststats

import (
	"reflect"
	"testing"

	"github.com/VitorVA6/fullstack-part4/internal/api/models"
)

var listWithOneBlog = []models.Blog{
	{
		ID:     "5a422aa71b54a676234d17f8",
		Title:  "Go To Statement Considered Harmful",
		Author: "Edsger W. Dijkstra",
		URL:    "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
		Likes:  5,
	},
}

var manyBlogs = []models.Blog{
	{Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html", Likes: 10},
	{Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []models.Blog
		want  int
	}{
		{name: "empty list is zero", blogs: []models.Blog{}, want: 0},
		{name: "nil list is zero", blogs: nil, want: 0},
		{name: "one blog equals its likes", blogs: listWithOneBlog, want: 5},
		{name: "bigger list is summed", blogs: manyBlogs, want: 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalLikes(tt.blogs); got != tt.want {
				t.Errorf("TotalLikes() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFavoriteBlog(t *testing.T) {
	tests := []struct {
		name  string
		blogs []models.Blog
		want  *models.Blog
	}{
		{name: "empty list has no favorite", blogs: []models.Blog{}, want: nil},
		{name: "one blog is the favorite", blogs: listWithOneBlog, want: &listWithOneBlog[0]},
		{name: "highest likes wins", blogs: manyBlogs, want: &manyBlogs[2]},
		{
			name: "tie keeps the first occurrence",
			blogs: []models.Blog{
				{Title: "a", Author: "A", Likes: 3},
				{Title: "b", Author: "B", Likes: 3},
			},
			want: &models.Blog{Title: "a", Author: "A", Likes: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FavoriteBlog(tt.blogs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FavoriteBlog() got = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMostBlogs(t *testing.T) {
	tests := []struct {
		name  string
		blogs []models.Blog
		want  *AuthorBlogs
	}{
		{name: "empty list has no top author", blogs: []models.Blog{}, want: nil},
		{name: "single blog", blogs: listWithOneBlog, want: &AuthorBlogs{Author: "Edsger W. Dijkstra", Blogs: 1}},
		{name: "author with most blogs wins", blogs: manyBlogs, want: &AuthorBlogs{Author: "Robert C. Martin", Blogs: 3}},
		{
			name: "tie resolves to first-seen author",
			blogs: []models.Blog{
				{Author: "B"},
				{Author: "A"},
				{Author: "A"},
				{Author: "B"},
			},
			want: &AuthorBlogs{Author: "B", Blogs: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MostBlogs(tt.blogs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MostBlogs() got = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMostLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []models.Blog
		want  *AuthorLikes
	}{
		{name: "empty list has no top author", blogs: []models.Blog{}, want: nil},
		{name: "single blog", blogs: listWithOneBlog, want: &AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 5}},
		{name: "author with most accumulated likes wins", blogs: manyBlogs, want: &AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}},
		{
			name: "tie resolves to first-seen author",
			blogs: []models.Blog{
				{Author: "B", Likes: 2},
				{Author: "A", Likes: 4},
				{Author: "B", Likes: 2},
			},
			want: &AuthorLikes{Author: "B", Likes: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MostLikes(tt.blogs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MostLikes() got = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAggregationIsStateless(t *testing.T) {
	first := MostLikes(manyBlogs)
	for i := 0; i < 3; i++ {
		if got := MostLikes(manyBlogs); !reflect.DeepEqual(got, first) {
			t.Fatalf("MostLikes() changed across calls: got %+v, want %+v", got, first)
		}
	}
}
