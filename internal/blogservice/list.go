package blogservice

// TotalLikes sums the like counts of the given blogs. An empty list
// totals zero.
func TotalLikes(blogs []Blog) int {
	var sum int
	for _, blog := range blogs {
		sum += blog.Likes
	}

	return sum
}

// FavoriteBlog returns the highest like count present in the list, or
// zero for an empty list. Note that it returns the count itself rather
// than the blog that holds it.
func FavoriteBlog(blogs []Blog) int {
	var max int
	for _, blog := range blogs {
		if blog.Likes > max {
			max = blog.Likes
		}
	}

	return max
}
