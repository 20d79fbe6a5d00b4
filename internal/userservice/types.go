package userservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/bloglist/internal/common"
)

const (
	// MinUsernameLength and MinPasswordLength mirror the store-side
	// constraints: both fields must be at least three characters.
	MinUsernameLength = 3
	MinPasswordLength = 3

	BearerTokenTime time.Duration = 24 * time.Hour
)

var (
	AnonymousUser = User{}
)

type UserService struct {
	m      *DBModel
	mb     common.MessageProducer
	secret []byte
}

type DBModel struct {
	db *sql.DB
}

// User is the public projection of an account row. The password hash and
// the row version never leave the process; Blogs lists the ids of the
// blogs the user owns in creation order.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Password  Password  `json:"-"`
	Blogs     []int     `json:"blogs"`
	CreatedAt time.Time `json:"-"`
	Version   int       `json:"-"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}
