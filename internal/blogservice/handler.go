package blogservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/bloglist/internal/common"
)

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c}
}

type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
	UserID int    `json:"-"`
}

// CreateBlog persists a new blog owned by the requesting user. A missing
// likes value defaults to zero.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateURL(v, req.URL)
	validateInt(v, req.UserID, "user_id")
	if req.Likes != nil {
		validateLikes(v, *req.Likes)
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	blog := &Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		User:   Owner{ID: req.UserID},
	}

	err := s.m.insert(ctx, blog)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyAllBlogs())

	return blog, nil
}

// GetBlogs returns every blog with its owner joined in, in store order.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyAllBlogs()); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.getBlogs(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyAllBlogs(), blogs)

	return blogs, nil
}

// GetBlogByID returns a single blog with its owner joined in.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if cached, ok := s.c.Get(common.CacheKeyBlog(id)); ok {
		return cached.(*Blog), nil
	}

	blog, err := s.m.getBlogById(ctx, id)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlog(id), blog)

	return blog, nil
}

// UpdateLikes sets the like count of a blog. Any caller may do this;
// there is deliberately no ownership check on the update path.
func (s *BlogService) UpdateLikes(ctx context.Context, id, likes int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	validateLikes(v, likes)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.updateLikes(ctx, id, likes)
	if err != nil {
		return nil, err
	}

	s.c.Delete(common.CacheKeyAllBlogs())
	s.c.Delete(common.CacheKeyBlog(id))

	return blog, nil
}

// DeleteBlog removes a blog by id. Ownership is checked by the caller
// against the blog's owner before this is invoked.
func (s *BlogService) DeleteBlog(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	err := s.m.deleteBlog(ctx, id)
	if err != nil {
		return err
	}

	s.c.Delete(common.CacheKeyAllBlogs())
	s.c.Delete(common.CacheKeyBlog(id))

	return nil
}
