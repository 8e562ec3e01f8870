package rosterservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/frogblogs/internal/common"
)

func NewRosterService(db *sql.DB) *RosterService {
	return &RosterService{m: newRosterModel(db)}
}

// CreateBlog validates req and stores a new blog.
func (s *RosterService) CreateBlog(ctx context.Context, req *BlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateBlog(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insertBlog(ctx, req.Name, req.Frog)
}

// GetBlogByID returns a blog by its ID.
func (s *RosterService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	if id < 1 {
		return nil, common.ErrRecordNotFound
	}

	return s.m.getBlogByID(ctx, id)
}

// GetBlogs returns every blog in insertion order.
func (s *RosterService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogs(ctx)
}

// UpdateBlog replaces the name and body of an existing blog.
func (s *RosterService) UpdateBlog(ctx context.Context, id int, req *BlogRequest) (*Blog, error) {
	if err := s.requireRow(ctx, blogsTable, id); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateBlog(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.updateBlog(ctx, id, req.Name, req.Frog)
}

// DeleteBlog deletes a blog. A blog still referenced by a membership or a user is kept and a ReferentialError is returned.
func (s *RosterService) DeleteBlog(ctx context.Context, id int) error {
	if id < 1 {
		return common.ErrRecordNotFound
	}

	return s.m.deleteBlog(ctx, id)
}

func (s *RosterService) CreateComment(ctx context.Context, req *CommentRequest) (*Comment, error) {
	v := common.NewValidator()
	validateComment(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insertComment(ctx, req.Frog)
}

func (s *RosterService) GetCommentByID(ctx context.Context, id int) (*Comment, error) {
	if id < 1 {
		return nil, common.ErrRecordNotFound
	}

	return s.m.getCommentByID(ctx, id)
}

func (s *RosterService) GetComments(ctx context.Context) ([]Comment, error) {
	return s.m.getComments(ctx)
}

func (s *RosterService) UpdateComment(ctx context.Context, id int, req *CommentRequest) (*Comment, error) {
	if err := s.requireRow(ctx, commentsTable, id); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateComment(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.updateComment(ctx, id, req.Frog)
}

// DeleteComment deletes a comment that no membership refers to.
func (s *RosterService) DeleteComment(ctx context.Context, id int) error {
	if id < 1 {
		return common.ErrRecordNotFound
	}

	return s.m.deleteComment(ctx, id)
}

// CreateMembership attaches a comment to a blog. Blank years are stored as null.
func (s *RosterService) CreateMembership(ctx context.Context, req *MembershipRequest) (*Membership, error) {
	v := common.NewValidator()
	startYear, endYear := validateMembership(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	ms := &Membership{
		BlogID:    req.BlogID,
		CommentID: req.CommentID,
		StartYear: startYear,
		EndYear:   endYear,
		Role:      req.Role,
	}

	err := s.m.insertMembership(ctx, ms)
	if err != nil {
		return nil, err
	}

	return ms, nil
}

func (s *RosterService) GetMembershipByID(ctx context.Context, id int) (*Membership, error) {
	if id < 1 {
		return nil, common.ErrRecordNotFound
	}

	return s.m.getMembershipByID(ctx, id)
}

func (s *RosterService) GetMemberships(ctx context.Context) ([]Membership, error) {
	return s.m.getMemberships(ctx)
}

// GetMembershipsByBlog returns the memberships of a blog. ErrRecordNotFound means the blog itself does not exist.
func (s *RosterService) GetMembershipsByBlog(ctx context.Context, blogID int) ([]Membership, error) {
	if err := s.requireRow(ctx, blogsTable, blogID); err != nil {
		return nil, err
	}

	return s.m.getMembershipsByBlog(ctx, blogID)
}

// GetMembershipsByComment returns the memberships that attach a comment to blogs.
func (s *RosterService) GetMembershipsByComment(ctx context.Context, commentID int) ([]Membership, error) {
	if err := s.requireRow(ctx, commentsTable, commentID); err != nil {
		return nil, err
	}

	return s.m.getMembershipsByComment(ctx, commentID)
}

// UpdateMembership overwrites every field of a membership; blank years become null.
func (s *RosterService) UpdateMembership(ctx context.Context, id int, req *MembershipRequest) (*Membership, error) {
	if err := s.requireRow(ctx, membershipsTable, id); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	startYear, endYear := validateMembership(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	ms := &Membership{
		ID:        id,
		BlogID:    req.BlogID,
		CommentID: req.CommentID,
		StartYear: startYear,
		EndYear:   endYear,
		Role:      req.Role,
	}

	err := s.m.updateMembership(ctx, ms)
	if err != nil {
		return nil, err
	}

	return ms, nil
}

func (s *RosterService) DeleteMembership(ctx context.Context, id int) error {
	if id < 1 {
		return common.ErrRecordNotFound
	}

	return s.m.deleteMembership(ctx, id)
}

func (s *RosterService) CreateUser(ctx context.Context, req *UserRequest) (*User, error) {
	v := common.NewValidator()
	blogID := validateUser(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.insertUser(ctx, blogID, req.Name)
}

func (s *RosterService) GetUserByID(ctx context.Context, id int) (*User, error) {
	if id < 1 {
		return nil, common.ErrRecordNotFound
	}

	return s.m.getUserByID(ctx, id)
}

func (s *RosterService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsers(ctx)
}

// GetUsersByBlog returns the users pointing at a blog.
func (s *RosterService) GetUsersByBlog(ctx context.Context, blogID int) ([]User, error) {
	if err := s.requireRow(ctx, blogsTable, blogID); err != nil {
		return nil, err
	}

	return s.m.getUsersByBlog(ctx, blogID)
}

func (s *RosterService) UpdateUser(ctx context.Context, id int, req *UserRequest) (*User, error) {
	if err := s.requireRow(ctx, usersTable, id); err != nil {
		return nil, err
	}

	v := common.NewValidator()
	blogID := validateUser(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.updateUser(ctx, id, blogID, req.Name)
}

func (s *RosterService) DeleteUser(ctx context.Context, id int) error {
	if id < 1 {
		return common.ErrRecordNotFound
	}

	return s.m.deleteUser(ctx, id)
}

func (s *RosterService) requireRow(ctx context.Context, table string, id int) error {
	return common.RequireRow(ctx, s.m.db, table, id)
}
