package blogservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/bloglist/internal/common"
)

// Blog is the public projection of a blog row. The store-assigned id is
// exposed as "id" and the row version never leaves the process.
type Blog struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	User      Owner     `json:"user"`
	CreatedAt time.Time `json:"-"`
	Version   int       `json:"-"`
}

// Owner carries the joined fields of the owning user. On a freshly
// created blog only the id is set; the listing populates the rest.
type Owner struct {
	ID       int    `json:"id"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
	c *common.Cache
}
