package ownershipservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/frogblogs/internal/common"
)

const (
	usersTable    = "ownership.users"
	blogsTable    = "ownership.blogs"
	commentsTable = "ownership.comments"
)

var (
	writeConstraints = common.ConstraintErrors{
		"blogs_user_id_fkey":    common.ReferentialError{Field: "user_id", Message: "does not reference an existing user"},
		"comments_user_id_fkey": common.ReferentialError{Field: "user_id", Message: "does not reference an existing user"},
		"comments_blog_id_fkey": common.ReferentialError{Field: "blog_id", Message: "does not reference an existing blog"},
	}

	deleteUserConstraints = common.ConstraintErrors{
		"blogs_user_id_fkey":    common.ReferentialError{Field: "user_id", Message: "still owns a blog"},
		"comments_user_id_fkey": common.ReferentialError{Field: "user_id", Message: "still owns a comment"},
	}

	deleteBlogConstraints = common.ConstraintErrors{
		"comments_blog_id_fkey": common.ReferentialError{Field: "blog_id", Message: "is still referenced by a comment"},
	}
)

func newOwnershipModel(db *sql.DB) *OwnershipModel {
	return &OwnershipModel{db: db}
}

// users

func scanUser(row common.RowScanner) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name)
	return u, err
}

func (m *OwnershipModel) insertUser(ctx context.Context, name string) (*User, error) {
	query := `
		INSERT INTO ownership.users (user_name)
		VALUES ($1)
		RETURNING id, user_name`

	u, err := scanUser(m.db.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (m *OwnershipModel) getUserByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, user_name
		FROM ownership.users
		WHERE id = $1`

	u, err := scanUser(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &u, nil
}

func (m *OwnershipModel) getUsers(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, user_name
		FROM ownership.users
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanUser, query)
}

func (m *OwnershipModel) updateUser(ctx context.Context, id int, name string) (*User, error) {
	query := `
		UPDATE ownership.users
		SET user_name = $1
		WHERE id = $2
		RETURNING id, user_name`

	u, err := scanUser(m.db.QueryRowContext(ctx, query, name, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &u, nil
}

func (m *OwnershipModel) deleteUser(ctx context.Context, id int) error {
	return common.DeleteByID(ctx, m.db, usersTable, id, deleteUserConstraints)
}

// blogs

const blogColumns = `id, blog_name, blog_frog, user_id`

func scanBlog(row common.RowScanner) (Blog, error) {
	var (
		b      Blog
		userID sql.NullInt64
	)

	err := row.Scan(&b.ID, &b.Name, &b.Frog, &userID)
	if err != nil {
		return b, err
	}

	b.UserID = common.IntPtr(userID)
	return b, nil
}

func (m *OwnershipModel) insertBlog(ctx context.Context, name, frog string, userID *int) (*Blog, error) {
	query := `
		INSERT INTO ownership.blogs (blog_name, blog_frog, user_id)
		VALUES ($1, $2, $3)
		RETURNING ` + blogColumns

	b, err := scanBlog(m.db.QueryRowContext(ctx, query, name, frog, userID))
	if err != nil {
		return nil, writeConstraints.Translate(err)
	}

	return &b, nil
}

func (m *OwnershipModel) getBlogByID(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM ownership.blogs
		WHERE id = $1`

	b, err := scanBlog(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &b, nil
}

func (m *OwnershipModel) getBlogs(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM ownership.blogs
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanBlog, query)
}

func (m *OwnershipModel) getBlogsByUser(ctx context.Context, userID int) ([]Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM ownership.blogs
		WHERE user_id = $1
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanBlog, query, userID)
}

func (m *OwnershipModel) updateBlog(ctx context.Context, id int, name, frog string, userID *int) (*Blog, error) {
	query := `
		UPDATE ownership.blogs
		SET blog_name = $1, blog_frog = $2, user_id = $3
		WHERE id = $4
		RETURNING ` + blogColumns

	b, err := scanBlog(m.db.QueryRowContext(ctx, query, name, frog, userID, id))
	if err != nil {
		return nil, common.NoRows(err, writeConstraints)
	}

	return &b, nil
}

func (m *OwnershipModel) deleteBlog(ctx context.Context, id int) error {
	return common.DeleteByID(ctx, m.db, blogsTable, id, deleteBlogConstraints)
}

// comments

const commentColumns = `id, comment_frog, user_id, blog_id`

func scanComment(row common.RowScanner) (Comment, error) {
	var (
		c              Comment
		userID, blogID sql.NullInt64
	)

	err := row.Scan(&c.ID, &c.Frog, &userID, &blogID)
	if err != nil {
		return c, err
	}

	c.UserID = common.IntPtr(userID)
	c.BlogID = common.IntPtr(blogID)
	return c, nil
}

func (m *OwnershipModel) insertComment(ctx context.Context, c *Comment) error {
	query := `
		INSERT INTO ownership.comments (comment_frog, user_id, blog_id)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	saved, err := scanComment(m.db.QueryRowContext(ctx, query, c.Frog, c.UserID, c.BlogID))
	if err != nil {
		return writeConstraints.Translate(err)
	}

	*c = saved
	return nil
}

func (m *OwnershipModel) getCommentByID(ctx context.Context, id int) (*Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM ownership.comments
		WHERE id = $1`

	c, err := scanComment(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, common.NoRows(err, nil)
	}

	return &c, nil
}

func (m *OwnershipModel) getComments(ctx context.Context) ([]Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM ownership.comments
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanComment, query)
}

func (m *OwnershipModel) getCommentsByUser(ctx context.Context, userID int) ([]Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM ownership.comments
		WHERE user_id = $1
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanComment, query, userID)
}

func (m *OwnershipModel) getCommentsByBlog(ctx context.Context, blogID int) ([]Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM ownership.comments
		WHERE blog_id = $1
		ORDER BY id`

	return common.QueryRows(ctx, m.db, scanComment, query, blogID)
}

func (m *OwnershipModel) updateComment(ctx context.Context, c *Comment) error {
	query := `
		UPDATE ownership.comments
		SET comment_frog = $1, user_id = $2, blog_id = $3
		WHERE id = $4
		RETURNING ` + commentColumns

	saved, err := scanComment(m.db.QueryRowContext(ctx, query, c.Frog, c.UserID, c.BlogID, c.ID))
	if err != nil {
		return common.NoRows(err, writeConstraints)
	}

	*c = saved
	return nil
}

func (m *OwnershipModel) deleteComment(ctx context.Context, id int) error {
	return common.DeleteByID(ctx, m.db, commentsTable, id, nil)
}
