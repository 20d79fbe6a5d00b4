package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrNotFound          = errors.New("user not found")
)

func newUserModel(db *sql.DB) *DBModel {
	return &DBModel{db: db}
}

// uniqueViolation reports whether the error is a unique constraint
// violation on the named constraint.
func uniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *DBModel) insertUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (username, name, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version`

	args := []any{
		u.Username,
		u.Name,
		u.Password.hash,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.Version)
	if err != nil {
		switch {
		case uniqueViolation(err, "users_username_key"):
			return ErrDuplicateUsername
		default:
			return err
		}
	}

	return nil
}

func (m *DBModel) getUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, name, password, version
		FROM users
		WHERE username = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Name, &u.Password.hash, &u.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

// getUserById returns the user row with the ids of its blogs aggregated
// in creation order.
func (m *DBModel) getUserById(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT u.id, u.username, u.name, u.version,
			COALESCE(ARRAY_AGG(b.id ORDER BY b.id) FILTER (WHERE b.id IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN blogs b ON b.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.id`

	var u User
	var blogIds pq.Int64Array

	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Name, &u.Version, &blogIds)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	u.Blogs = make([]int, 0, len(blogIds))
	for _, id := range blogIds {
		u.Blogs = append(u.Blogs, int(id))
	}

	return &u, nil
}

func (m *DBModel) getUsers(ctx context.Context) ([]User, error) {
	query := `
		SELECT u.id, u.username, u.name, u.version,
			COALESCE(ARRAY_AGG(b.id ORDER BY b.id) FILTER (WHERE b.id IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN blogs b ON b.user_id = u.id
		GROUP BY u.id
		ORDER BY u.id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		var blogIds pq.Int64Array

		err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.Version, &blogIds)
		if err != nil {
			return nil, err
		}

		u.Blogs = make([]int, 0, len(blogIds))
		for _, id := range blogIds {
			u.Blogs = append(u.Blogs, int(id))
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
