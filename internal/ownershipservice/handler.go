package ownershipservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/frogblogs/internal/common"
)

func NewOwnershipService(db *sql.DB) *OwnershipService {
	return &OwnershipService{m: newOwnershipModel(db)}
}

func (s *OwnershipService) CreateUser(ctx context.Context, req *UserRequest) (*User, error) {
	v := common.NewValidator()
	validateUser(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insertUser(ctx, req.Name)
}

func (s *OwnershipService) GetUserByID(ctx context.Context, id int) (*User, error) {
	if id < 1 {
		return nil, common.ErrRecordNotFound
	}

	return s.m.getUserByID(ctx, id)
}

func (s *OwnershipService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsers(ctx)
}

func (s *OwnershipService) UpdateUser(ctx context.Context, id int, req *UserRequest) (*User, error) {
	if err := common.RequireRow(ctx, s.m.db, usersTable, id); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateUser(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.updateUser(ctx, id, req.Name)
}

// DeleteUser deletes a user. A user that still owns blogs or comments is kept and a ReferentialError is returned.
func (s *OwnershipService) DeleteUser(ctx context.Context, id int) error {
	if id < 1 {
		return common.ErrRecordNotFound
	}

	return s.m.deleteUser(ctx, id)
}

// CreateBlog stores a blog. A blank user_id leaves the blog without an owner.
func (s *OwnershipService) CreateBlog(ctx context.Context, req *BlogRequest) (*Blog, error) {
	v := common.NewValidator()
	userID := validateBlog(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insertBlog(ctx, req.Name, req.Frog, userID)
}

func (s *OwnershipService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	if id < 1 {
		return nil, common.ErrRecordNotFound
	}

	return s.m.getBlogByID(ctx, id)
}

func (s *OwnershipService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogs(ctx)
}

// GetBlogsByUser returns the blogs a user owns. ErrRecordNotFound means the user does not exist.
func (s *OwnershipService) GetBlogsByUser(ctx context.Context, userID int) ([]Blog, error) {
	if err := common.RequireRow(ctx, s.m.db, usersTable, userID); err != nil {
		return nil, err
	}

	return s.m.getBlogsByUser(ctx, userID)
}

func (s *OwnershipService) UpdateBlog(ctx context.Context, id int, req *BlogRequest) (*Blog, error) {
	if err := common.RequireRow(ctx, s.m.db, blogsTable, id); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	userID := validateBlog(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.updateBlog(ctx, id, req.Name, req.Frog, userID)
}

func (s *OwnershipService) DeleteBlog(ctx context.Context, id int) error {
	if id < 1 {
		return common.ErrRecordNotFound
	}

	return s.m.deleteBlog(ctx, id)
}

func (s *OwnershipService) CreateComment(ctx context.Context, req *CommentRequest) (*Comment, error) {
	v := common.NewValidator()
	userID, blogID := validateComment(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	c := &Comment{Frog: req.Frog, UserID: userID, BlogID: blogID}

	err := s.m.insertComment(ctx, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (s *OwnershipService) GetCommentByID(ctx context.Context, id int) (*Comment, error) {
	if id < 1 {
		return nil, common.ErrRecordNotFound
	}

	return s.m.getCommentByID(ctx, id)
}

func (s *OwnershipService) GetComments(ctx context.Context) ([]Comment, error) {
	return s.m.getComments(ctx)
}

func (s *OwnershipService) GetCommentsByUser(ctx context.Context, userID int) ([]Comment, error) {
	if err := common.RequireRow(ctx, s.m.db, usersTable, userID); err != nil {
		return nil, err
	}

	return s.m.getCommentsByUser(ctx, userID)
}

// GetCommentsByBlog lists the comments left on a blog.
func (s *OwnershipService) GetCommentsByBlog(ctx context.Context, blogID int) ([]Comment, error) {
	if err := common.RequireRow(ctx, s.m.db, blogsTable, blogID); err != nil {
		return nil, err
	}

	return s.m.getCommentsByBlog(ctx, blogID)
}

func (s *OwnershipService) UpdateComment(ctx context.Context, id int, req *CommentRequest) (*Comment, error) {
	if err := common.RequireRow(ctx, s.m.db, commentsTable, id); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	userID, blogID := validateComment(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	c := &Comment{ID: id, Frog: req.Frog, UserID: userID, BlogID: blogID}

	err := s.m.updateComment(ctx, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (s *OwnershipService) DeleteComment(ctx context.Context, id int) error {
	if id < 1 {
		return common.ErrRecordNotFound
	}

	return s.m.deleteComment(ctx, id)
}
