package ownershipservice

import (
	"database/sql"

	"github.com/sushihentaime/frogblogs/internal/common"
)

type User struct {
	ID   int    `json:"user_id"`
	Name string `json:"user_name"`
}

// Blog is owned by at most one user.
type Blog struct {
	ID     int    `json:"blog_id"`
	Name   string `json:"blog_name"`
	Frog   string `json:"blog_frog"`
	UserID *int   `json:"user_id"`
}

// Comment may point at an owning user and at the blog it was left on.
type Comment struct {
	ID     int    `json:"comment_id"`
	Frog   string `json:"comment_frog"`
	UserID *int   `json:"user_id"`
	BlogID *int   `json:"blog_id"`
}

type UserRequest struct {
	Name string `json:"user_name" validate:"required,max=80,nonul"`
}

type BlogRequest struct {
	Name   string             `json:"blog_name" validate:"required,max=80,nonul"`
	Frog   string             `json:"blog_frog" validate:"required,max=800,nonul"`
	UserID common.OptionalInt `json:"user_id"`
}

type CommentRequest struct {
	Frog   string             `json:"comment_frog" validate:"required,max=800,nonul"`
	UserID common.OptionalInt `json:"user_id"`
	BlogID common.OptionalInt `json:"blog_id"`
}

type OwnershipModel struct {
	db *sql.DB
}

type OwnershipService struct {
	m *OwnershipModel
}
