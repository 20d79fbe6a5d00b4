package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// foreignKeyError reports whether the error is a foreign key constraint
// violation on the named constraint.
func foreignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version`

	args := []any{
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.User.ID,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&blog.ID, &blog.CreatedAt, &blog.Version)
	if err != nil {
		switch {
		case foreignKeyError(err, "blogs_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

// getBlogById joins the owning user so that the caller can compare
// ownership without a second round trip.
func (m *BlogModel) getBlogById(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.created_at, b.version, u.id, u.username, u.name
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		WHERE b.id = $1`

	row := m.db.QueryRowContext(ctx, query, id)

	var blog Blog
	err := row.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.CreatedAt, &blog.Version, &blog.User.ID, &blog.User.Username, &blog.User.Name)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

// getBlogs returns every blog with its owner joined in, ordered by id,
// which is the store's natural creation order.
func (m *BlogModel) getBlogs(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.created_at, b.version, u.id, u.username, u.name
		FROM blogs b
		JOIN users u ON b.user_id = u.id
		ORDER BY b.id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		var blog Blog
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.CreatedAt, &blog.Version, &blog.User.ID, &blog.User.Username, &blog.User.Name)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BlogModel) updateLikes(ctx context.Context, id, likes int) (*Blog, error) {
	query := `
		UPDATE blogs
		SET likes = $1, version = version + 1
		WHERE id = $2
		RETURNING id, title, author, url, likes, user_id, created_at, version`

	var blog Blog
	err := m.db.QueryRowContext(ctx, query, likes, id).Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.User.ID, &blog.CreatedAt, &blog.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

func (m *BlogModel) deleteBlog(ctx context.Context, id int) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}
