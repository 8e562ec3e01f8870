package rosterservice

import (
	"database/sql"

	"github.com/sushihentaime/frogblogs/internal/common"
)

type Blog struct {
	ID   int    `json:"blog_id"`
	Name string `json:"blog_name"`
	// Frog is the free-text body of the blog.
	Frog string `json:"blog_frog"`
}

type Comment struct {
	ID   int    `json:"comment_id"`
	Frog string `json:"comment_frog"`
}

// Membership binds a comment to a blog. A nil EndYear means the membership is still active.
type Membership struct {
	ID        int    `json:"membership_id"`
	BlogID    int    `json:"blog_id"`
	CommentID int    `json:"comment_id"`
	StartYear *int   `json:"start_year"`
	EndYear   *int   `json:"end_year"`
	Role      string `json:"role"`
}

type User struct {
	ID     int    `json:"user_id"`
	BlogID *int   `json:"blog_id"`
	Name   string `json:"user_name"`
}

type BlogRequest struct {
	Name string `json:"blog_name" validate:"required,max=80,nonul"`
	Frog string `json:"blog_frog" validate:"required,max=800,nonul"`
}

type CommentRequest struct {
	Frog string `json:"comment_frog" validate:"required,max=80,nonul"`
}

type MembershipRequest struct {
	BlogID    int                `json:"blog_id" validate:"required,gt=0"`
	CommentID int                `json:"comment_id" validate:"required,gt=0"`
	StartYear common.OptionalInt `json:"start_year"`
	EndYear   common.OptionalInt `json:"end_year"`
	Role      string             `json:"role" validate:"nonul"`
}

type UserRequest struct {
	BlogID common.OptionalInt `json:"blog_id"`
	Name   string             `json:"user_name" validate:"max=80,nonul"`
}

type RosterModel struct {
	db *sql.DB
}

type RosterService struct {
	m *RosterModel
}
