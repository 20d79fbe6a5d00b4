package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalLikes(t *testing.T) {
	testCases := []struct {
		name  string
		blogs []Blog
		want  int
	}{
		{
			name:  "empty list",
			blogs: []Blog{},
			want:  0,
		},
		{
			name: "single blog",
			blogs: []Blog{
				{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", Likes: 5},
			},
			want: 5,
		},
		{
			name: "two blogs",
			blogs: []Blog{
				{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", Likes: 5},
				{Title: "Beep Boop This is a Blog Post", Author: "Edsger W. Dijkstra", Likes: 10},
			},
			want: 15,
		},
		{
			name: "three seeded blogs",
			blogs: []Blog{
				{Title: "multiplication story", Author: "multi", Likes: 100000},
				{Title: "addition story", Author: "addi", Likes: 100000},
				{Title: "division story", Author: "omelette writer", Likes: 7878},
			},
			want: 207878,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalLikes(tc.blogs))
		})
	}
}

func TestFavoriteBlog(t *testing.T) {
	testCases := []struct {
		name  string
		blogs []Blog
		want  int
	}{
		{
			name:  "empty list",
			blogs: []Blog{},
			want:  0,
		},
		{
			name: "three blogs",
			blogs: []Blog{
				{Title: "Go To Statement Considered Harmful", Likes: 5},
				{Title: "Beep Boop This is a Blog Post", Likes: 10},
				{Title: "Why Beef Stew is Important in America", Likes: 20},
			},
			want: 20,
		},
		{
			name: "three seeded blogs",
			blogs: []Blog{
				{Title: "multiplication story", Likes: 100000},
				{Title: "addition story", Likes: 100000},
				{Title: "division story", Likes: 7878},
			},
			want: 100000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FavoriteBlog(tc.blogs))
		})
	}
}
