package blogservice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/bloglist/internal/common"
)

// setupTestUser creates a user row for blogs to hang off.
func setupTestUser(db *sql.DB) (int, error) {
	query := `
		INSERT INTO users (username, name, password)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err := db.QueryRow(query, "root", "Superuser", []byte("not-a-real-hash")).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func setupTestEnvironment(t *testing.T) (*BlogService, *sql.DB, int) {
	db := common.TestDB("file://../../migrations", t)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	id, err := setupTestUser(db)
	assert.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.Exec("DELETE FROM blogs")
		cache.Flush()
	})

	return NewBlogService(db, cache), db, id
}

func intptr(i int) *int {
	return &i
}

func TestCreateBlog(t *testing.T) {
	s, db, userId := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		req         *CreateBlogRequest
		wantLikes   int
		expectedErr error
	}{
		{
			name: "valid blog",
			req: &CreateBlogRequest{
				Title:  "how to make cheese",
				Author: "mouse",
				URL:    "www.ratgirl.com",
				Likes:  intptr(898398539),
				UserID: userId,
			},
			wantLikes: 898398539,
		},
		{
			name: "likes omitted defaults to zero",
			req: &CreateBlogRequest{
				Title:  "quiet blog",
				Author: "mouse",
				URL:    "www.quiet.com",
				UserID: userId,
			},
			wantLikes: 0,
		},
		{
			name: "missing title",
			req: &CreateBlogRequest{
				Author: "mouse",
				URL:    "www.ratgirl.com",
				UserID: userId,
			},
			expectedErr: common.ValidationError{},
		},
		{
			name: "missing url",
			req: &CreateBlogRequest{
				Title:  "how to make cheese",
				Author: "mouse",
				UserID: userId,
			},
			expectedErr: common.ValidationError{},
		},
		{
			name: "negative likes",
			req: &CreateBlogRequest{
				Title:  "how to make cheese",
				URL:    "www.ratgirl.com",
				Likes:  intptr(-1),
				UserID: userId,
			},
			expectedErr: common.ValidationError{},
		},
		{
			name: "unknown user",
			req: &CreateBlogRequest{
				Title:  "orphan blog",
				URL:    "www.orphan.com",
				UserID: 999999,
			},
			expectedErr: ErrUserForeignKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			blog, err := s.CreateBlog(context.Background(), tc.req)

			switch {
			case tc.expectedErr == nil:
				assert.NoError(t, err)
				assert.NotZero(t, blog.ID)
				assert.Equal(t, tc.wantLikes, blog.Likes)
				assert.Equal(t, tc.req.UserID, blog.User.ID)

				var likes int
				err = db.QueryRow("SELECT likes FROM blogs WHERE id = $1", blog.ID).Scan(&likes)
				assert.NoError(t, err)
				assert.Equal(t, tc.wantLikes, likes)
			case tc.expectedErr == ErrUserForeignKey:
				assert.ErrorIs(t, err, ErrUserForeignKey)
			default:
				var vErr common.ValidationError
				assert.ErrorAs(t, err, &vErr)

				var count int
				assert.NoError(t, db.QueryRow("SELECT COUNT(*) FROM blogs WHERE title = $1", tc.req.Title).Scan(&count))
				assert.Zero(t, count)
			}
		})
	}
}

func TestGetBlogs(t *testing.T) {
	s, _, userId := setupTestEnvironment(t)

	seeded := []*CreateBlogRequest{
		{Title: "multiplication story", Author: "multi", URL: "www.multi.com", Likes: intptr(100000), UserID: userId},
		{Title: "addition story", Author: "addi", URL: "www.addi.com", Likes: intptr(100000), UserID: userId},
		{Title: "division story", Author: "omelette writer", URL: "www.oooomelette.com", Likes: intptr(7878), UserID: userId},
	}

	for _, req := range seeded {
		_, err := s.CreateBlog(context.Background(), req)
		assert.NoError(t, err)
	}

	blogs, err := s.GetBlogs(context.Background())
	assert.NoError(t, err)
	assert.Len(t, blogs, 3)

	for _, blog := range blogs {
		assert.NotZero(t, blog.ID)
		assert.Equal(t, userId, blog.User.ID)
		assert.Equal(t, "root", blog.User.Username)
	}

	assert.Equal(t, 207878, TotalLikes(blogs))
	assert.Equal(t, 100000, FavoriteBlog(blogs))

	// second read is served from the cache
	cached, err := s.GetBlogs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, blogs, cached)
}

func TestUpdateLikes(t *testing.T) {
	s, _, userId := setupTestEnvironment(t)

	blog, err := s.CreateBlog(context.Background(), &CreateBlogRequest{
		Title:  "multiplication story",
		Author: "multi",
		URL:    "www.multi.com",
		Likes:  intptr(100000),
		UserID: userId,
	})
	assert.NoError(t, err)

	updated, err := s.UpdateLikes(context.Background(), blog.ID, 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, updated.Likes)

	fetched, err := s.GetBlogByID(context.Background(), blog.ID)
	assert.NoError(t, err)
	assert.Equal(t, 7, fetched.Likes)

	_, err = s.UpdateLikes(context.Background(), 999999, 7)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = s.UpdateLikes(context.Background(), blog.ID, -1)
	var vErr common.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestDeleteBlog(t *testing.T) {
	s, _, userId := setupTestEnvironment(t)

	blog, err := s.CreateBlog(context.Background(), &CreateBlogRequest{
		Title:  "division story",
		Author: "omelette writer",
		URL:    "www.oooomelette.com",
		UserID: userId,
	})
	assert.NoError(t, err)

	err = s.DeleteBlog(context.Background(), blog.ID)
	assert.NoError(t, err)

	blogs, err := s.GetBlogs(context.Background())
	assert.NoError(t, err)
	for _, b := range blogs {
		assert.NotEqual(t, blog.ID, b.ID)
	}

	err = s.DeleteBlog(context.Background(), blog.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
