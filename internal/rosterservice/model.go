package rosterservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/frogblogs/internal/common"
)

const (
	blogsTable       = "roster.blogs"
	commentsTable    = "roster.comments"
	membershipsTable = "roster.memberships"
	usersTable       = "roster.users"
)

var (
	// writeConstraints translates violations raised by INSERT and UPDATE.
	writeConstraints = common.ConstraintErrors{
		"memberships_blog_id_fkey":    common.ReferentialError{Field: "blog_id", Message: "does not reference an existing blog"},
		"memberships_comment_id_fkey": common.ReferentialError{Field: "comment_id", Message: "does not reference an existing comment"},
		"users_blog_id_fkey":          common.ReferentialError{Field: "blog_id", Message: "does not reference an existing blog"},
		"memberships_years_check":     common.ValidationError{Errors: map[string]string{"end_year": "must not be before start_year"}},
	}

	deleteBlogConstraints = common.ConstraintErrors{
		"memberships_blog_id_fkey": common.ReferentialError{Field: "blog_id", Message: "is still referenced by a membership"},
		"users_blog_id_fkey":       common.ReferentialError{Field: "blog_id", Message: "is still referenced by a user"},
	}

	deleteCommentConstraints = common.ConstraintErrors{
		"memberships_comment_id_fkey": common.ReferentialError{Field: "comment_id", Message: "is still referenced by a membership"},
	}
)

func newRosterModel(db *sql.DB) *RosterModel {
	return &RosterModel{db: db}
}

// blogs

func scanBlog(row common.RowScanner) (Blog, error) {
	var b Blog
	err := row.Scan(&b.ID, &b.Name, &b.Frog)
	return b, err
}

func (m *RosterModel) insertBlog(ctx context.Context, name, frog string) (*Blog, error) {
	query := `
		INSERT INTO roster.blogs (blog_name, blog_frog)
		VALUES ($1, $2)
		RETURNING id, blog_name, blog_frog`

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, name, frog))
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

func (m *RosterModel) getBlogByID(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT id, blog_name, blog_frog
		FROM roster.blogs
		WHERE id = $1`

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &blog, nil
}

func (m *RosterModel) getBlogs(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT id, blog_name, blog_frog
		FROM roster.blogs
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanBlog, query)
}

func (m *RosterModel) updateBlog(ctx context.Context, id int, name, frog string) (*Blog, error) {
	query := `
		UPDATE roster.blogs
		SET blog_name = $1, blog_frog = $2
		WHERE id = $3
		RETURNING id, blog_name, blog_frog`

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, name, frog, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &blog, nil
}

func (m *RosterModel) deleteBlog(ctx context.Context, id int) error {
	return common.DeleteByID(ctx, m.db, blogsTable, id, deleteBlogConstraints)
}

// comments

func scanComment(row common.RowScanner) (Comment, error) {
	var c Comment
	err := row.Scan(&c.ID, &c.Frog)
	return c, err
}

func (m *RosterModel) insertComment(ctx context.Context, frog string) (*Comment, error) {
	query := `
		INSERT INTO roster.comments (comment_frog)
		VALUES ($1)
		RETURNING id, comment_frog`

	comment, err := scanComment(m.db.QueryRowContext(ctx, query, frog))
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (m *RosterModel) getCommentByID(ctx context.Context, id int) (*Comment, error) {
	query := `
		SELECT id, comment_frog
		FROM roster.comments
		WHERE id = $1`

	comment, err := scanComment(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &comment, nil
}

func (m *RosterModel) getComments(ctx context.Context) ([]Comment, error) {
	query := `
		SELECT id, comment_frog
		FROM roster.comments
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanComment, query)
}

func (m *RosterModel) updateComment(ctx context.Context, id int, frog string) (*Comment, error) {
	query := `
		UPDATE roster.comments
		SET comment_frog = $1
		WHERE id = $2
		RETURNING id, comment_frog`

	comment, err := scanComment(m.db.QueryRowContext(ctx, query, frog, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &comment, nil
}

func (m *RosterModel) deleteComment(ctx context.Context, id int) error {
	return common.DeleteByID(ctx, m.db, commentsTable, id, deleteCommentConstraints)
}

// memberships

const membershipColumns = `id, blog_id, comment_id, start_year, end_year, COALESCE(role, '')`

func scanMembership(row common.RowScanner) (Membership, error) {
	var (
		ms                 Membership
		startYear, endYear sql.NullInt64
	)

	err := row.Scan(&ms.ID, &ms.BlogID, &ms.CommentID, &startYear, &endYear, &ms.Role)
	if err != nil {
		return ms, err
	}

	ms.StartYear = common.IntPtr(startYear)
	ms.EndYear = common.IntPtr(endYear)

	return ms, nil
}

func (m *RosterModel) insertMembership(ctx context.Context, ms *Membership) error {
	query := `
		INSERT INTO roster.memberships (blog_id, comment_id, start_year, end_year, role)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING ` + membershipColumns

	args := []any{ms.BlogID, ms.CommentID, ms.StartYear, ms.EndYear, ms.Role}

	saved, err := scanMembership(m.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return writeConstraints.Translate(err)
	}

	*ms = saved
	return nil
}

func (m *RosterModel) getMembershipByID(ctx context.Context, id int) (*Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM roster.memberships
		WHERE id = $1`

	ms, err := scanMembership(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &ms, nil
}

func (m *RosterModel) getMemberships(ctx context.Context) ([]Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM roster.memberships
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanMembership, query)
}

func (m *RosterModel) getMembershipsByBlog(ctx context.Context, blogID int) ([]Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM roster.memberships
		WHERE blog_id = $1
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanMembership, query, blogID)
}

func (m *RosterModel) getMembershipsByComment(ctx context.Context, commentID int) ([]Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM roster.memberships
		WHERE comment_id = $1
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanMembership, query, commentID)
}

func (m *RosterModel) updateMembership(ctx context.Context, ms *Membership) error {
	query := `
		UPDATE roster.memberships
		SET blog_id = $1, comment_id = $2, start_year = $3, end_year = $4, role = NULLIF($5, '')
		WHERE id = $6
		RETURNING ` + membershipColumns

	args := []any{ms.BlogID, ms.CommentID, ms.StartYear, ms.EndYear, ms.Role, ms.ID}

	saved, err := scanMembership(m.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return common.NoRows(err, writeConstraints)
	}

	*ms = saved
	return nil
}

func (m *RosterModel) deleteMembership(ctx context.Context, id int) error {
	return common.DeleteByID(ctx, m.db, membershipsTable, id, nil)
}

// users

const userColumns = `id, blog_id, COALESCE(user_name, '')`

func scanUser(row common.RowScanner) (User, error) {
	var (
		u      User
		blogID sql.NullInt64
	)

	err := row.Scan(&u.ID, &blogID, &u.Name)
	if err != nil {
		return u, err
	}

	u.BlogID = common.IntPtr(blogID)

	return u, nil
}

func (m *RosterModel) insertUser(ctx context.Context, blogID *int, name string) (*User, error) {
	query := `
		INSERT INTO roster.users (blog_id, user_name)
		VALUES ($1, NULLIF($2, ''))
		RETURNING ` + userColumns

	u, err := scanUser(m.db.QueryRowContext(ctx, query, blogID, name))
	if err != nil {
		return nil, writeConstraints.Translate(err)
	}

	return &u, nil
}

func (m *RosterModel) getUserByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM roster.users
		WHERE id = $1`

	u, err := scanUser(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &u, nil
}

func (m *RosterModel) getUsers(ctx context.Context) ([]User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM roster.users
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanUser, query)
}

func (m *RosterModel) getUsersByBlog(ctx context.Context, blogID int) ([]User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM roster.users
		WHERE blog_id = $1
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanUser, query, blogID)
}

func (m *RosterModel) updateUser(ctx context.Context, id int, blogID *int, name string) (*User, error) {
	query := `
		UPDATE roster.users
		SET blog_id = $1, user_name = NULLIF($2, '')
		WHERE id = $3
		RETURNING ` + userColumns

	u, err := scanUser(m.db.QueryRowContext(ctx, query, blogID, name, id))
	if err != nil {
		return nil, common.NoRows(err, writeConstraints)
	}

	return &u, nil
}

func (m *RosterModel) deleteUser(ctx context.Context, id int) error {
	return common.DeleteByID(ctx, m.db, usersTable, id, nil)
}
