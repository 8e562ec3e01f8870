package rosterservice

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/frogblogs/internal/common"
)

func intptr(i int) *int {
	return &i
}

func setupTestEnvironment(t *testing.T) (*RosterService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() error {
		_, err := db.Exec("TRUNCATE roster.users, roster.memberships, roster.comments, roster.blogs RESTART IDENTITY")
		return err
	}

	return NewRosterService(db), db, cleanup
}

func createRandomBlog(db *sql.DB) (int, error) {
	query := `
		INSERT INTO roster.blogs (blog_name, blog_frog)
		VALUES ($1, $2)
		RETURNING id`

	var id int
	err := db.QueryRow(query, "Pond Life", "ribbit").Scan(&id)
	return id, err
}

func createRandomComment(db *sql.DB) (int, error) {
	var id int
	err := db.QueryRow("INSERT INTO roster.comments (comment_frog) VALUES ($1) RETURNING id", "croak").Scan(&id)
	return id, err
}

func createRandomMembership(db *sql.DB, blogID, commentID int) (int, error) {
	var id int
	err := db.QueryRow("INSERT INTO roster.memberships (blog_id, comment_id, role) VALUES ($1, $2, $3) RETURNING id", blogID, commentID, "reader").Scan(&id)
	return id, err
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestCreateBlog(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		req         *BlogRequest
		expected    *Blog
		expectedErr error
	}{
		{
			name:     "valid blog",
			req:      &BlogRequest{Name: "Pond Life", Frog: "ribbit"},
			expected: &Blog{ID: 1, Name: "Pond Life", Frog: "ribbit"},
		},
		{
			name:        "empty name",
			req:         &BlogRequest{Name: "", Frog: "ribbit"},
			expectedErr: common.ValidationError{Errors: map[string]string{"blog_name": "must be provided"}},
		},
		{
			name:        "empty frog",
			req:         &BlogRequest{Name: "Pond Life", Frog: ""},
			expectedErr: common.ValidationError{Errors: map[string]string{"blog_frog": "must be provided"}},
		},
		{
			name:        "name too long",
			req:         &BlogRequest{Name: strings.Repeat("f", 81), Frog: "ribbit"},
			expectedErr: common.ValidationError{Errors: map[string]string{"blog_name": "must not be more than 80 characters long"}},
		},
		{
			name:        "frog too long",
			req:         &BlogRequest{Name: "Pond Life", Frog: strings.Repeat("r", 801)},
			expectedErr: common.ValidationError{Errors: map[string]string{"blog_frog": "must not be more than 800 characters long"}},
		},
		{
			name:        "NUL in frog",
			req:         &BlogRequest{Name: "Pond Life", Frog: "rib\x00bit"},
			expectedErr: common.ValidationError{Errors: map[string]string{"blog_frog": "must not contain NUL characters"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			blog, err := s.CreateBlog(ctx, tc.req)
			assert.Equal(t, tc.expectedErr, err)

			if tc.expectedErr != nil {
				assert.Nil(t, blog)
				assert.Equal(t, 0, countRows(t, db, "roster.blogs"))
			} else {
				assert.Equal(t, tc.expected, blog)

				stored, err := s.GetBlogByID(ctx, blog.ID)
				assert.NoError(t, err)
				assert.Equal(t, blog, stored)
			}

			t.Cleanup(func() {
				err := cleanup()
				assert.NoError(t, err)
			})
		})
	}
}

func TestGetBlogByID(t *testing.T) {
	s, db, _ := setupTestEnvironment(t)

	blogID, err := createRandomBlog(db)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		id          int
		expectedErr error
	}{
		{
			name: "valid ID",
			id:   blogID,
		},
		{
			name:        "missing ID",
			id:          999,
			expectedErr: common.ErrRecordNotFound,
		},
		{
			name:        "zero ID",
			id:          0,
			expectedErr: common.ErrRecordNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			blog, err := s.GetBlogByID(context.Background(), tc.id)
			if tc.expectedErr != nil {
				assert.Nil(t, blog)
				assert.Equal(t, tc.expectedErr, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &Blog{ID: blogID, Name: "Pond Life", Frog: "ribbit"}, blog)
			}
		})
	}
}

func TestGetBlogs(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Run("no rows", func(t *testing.T) {
		blogs, err := s.GetBlogs(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, blogs)
		assert.Empty(t, blogs)
	})

	t.Run("creates minus deletes", func(t *testing.T) {
		var ids []int
		for i := 0; i < 5; i++ {
			blog, err := s.CreateBlog(ctx, &BlogRequest{Name: "Pond Life", Frog: "ribbit"})
			require.NoError(t, err)
			ids = append(ids, blog.ID)
		}

		require.NoError(t, s.DeleteBlog(ctx, ids[1]))
		require.NoError(t, s.DeleteBlog(ctx, ids[3]))

		blogs, err := s.GetBlogs(ctx)
		assert.NoError(t, err)
		assert.Len(t, blogs, 3)

		// insertion order
		assert.Equal(t, ids[0], blogs[0].ID)
		assert.Equal(t, ids[2], blogs[1].ID)
		assert.Equal(t, ids[4], blogs[2].ID)

		t.Cleanup(func() {
			assert.NoError(t, cleanup())
		})
	})
}

func TestUpdateBlog(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		req         *BlogRequest
		missing     bool
		expected    *Blog
		expectedErr error
	}{
		{
			name:     "valid update",
			req:      &BlogRequest{Name: "New Pond", Frog: "croak"},
			expected: &Blog{Name: "New Pond", Frog: "croak"},
		},
		{
			name:        "empty name keeps the stored row",
			req:         &BlogRequest{Name: "", Frog: "croak"},
			expected:    &Blog{Name: "Pond Life", Frog: "ribbit"},
			expectedErr: common.ValidationError{Errors: map[string]string{"blog_name": "must be provided"}},
		},
		{
			name:        "missing blog",
			req:         &BlogRequest{Name: "New Pond", Frog: "croak"},
			missing:     true,
			expectedErr: common.ErrRecordNotFound,
		},
		{
			name:        "missing blog with invalid fields",
			req:         &BlogRequest{},
			missing:     true,
			expectedErr: common.ErrRecordNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			blogID, err := createRandomBlog(db)
			require.NoError(t, err)

			id := blogID
			if tc.missing {
				id = blogID + 100
			}

			updated, err := s.UpdateBlog(ctx, id, tc.req)
			assert.Equal(t, tc.expectedErr, err)

			if tc.expectedErr == nil {
				assert.Equal(t, blogID, updated.ID)
			}

			if tc.expected != nil {
				stored, err := s.GetBlogByID(ctx, blogID)
				assert.NoError(t, err)
				assert.Equal(t, blogID, stored.ID)
				assert.Equal(t, tc.expected.Name, stored.Name)
				assert.Equal(t, tc.expected.Frog, stored.Frog)
			}

			t.Cleanup(func() {
				assert.NoError(t, cleanup())
			})
		})
	}
}

func TestDeleteBlog(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		setup       func(blogID int) error
		missing     bool
		expectedErr error
	}{
		{
			name: "valid ID",
		},
		{
			name:        "missing ID",
			missing:     true,
			expectedErr: common.ErrRecordNotFound,
		},
		{
			name: "referenced by a membership",
			setup: func(blogID int) error {
				commentID, err := createRandomComment(db)
				if err != nil {
					return err
				}
				_, err = createRandomMembership(db, blogID, commentID)
				return err
			},
			expectedErr: common.ReferentialError{Field: "blog_id", Message: "is still referenced by a membership"},
		},
		{
			name: "referenced by a user",
			setup: func(blogID int) error {
				_, err := db.Exec("INSERT INTO roster.users (blog_id, user_name) VALUES ($1, $2)", blogID, "tad")
				return err
			},
			expectedErr: common.ReferentialError{Field: "blog_id", Message: "is still referenced by a user"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			blogID, err := createRandomBlog(db)
			require.NoError(t, err)

			if tc.setup != nil {
				require.NoError(t, tc.setup(blogID))
			}

			id := blogID
			if tc.missing {
				id = blogID + 100
			}

			err = s.DeleteBlog(ctx, id)
			assert.Equal(t, tc.expectedErr, err)

			_, getErr := s.GetBlogByID(ctx, blogID)
			if tc.expectedErr == nil {
				assert.Equal(t, common.ErrRecordNotFound, getErr)
			} else {
				assert.NoError(t, getErr)
			}

			t.Cleanup(func() {
				assert.NoError(t, cleanup())
			})
		})
	}
}

func TestCommentLifecycle(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	ctx := context.Background()
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	_, err := s.CreateComment(ctx, &CommentRequest{Frog: strings.Repeat("c", 81)})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"comment_frog": "must not be more than 80 characters long"}}, err)

	comment, err := s.CreateComment(ctx, &CommentRequest{Frog: "croak"})
	require.NoError(t, err)
	assert.Equal(t, "croak", comment.Frog)

	updated, err := s.UpdateComment(ctx, comment.ID, &CommentRequest{Frog: "ribbit"})
	require.NoError(t, err)
	assert.Equal(t, &Comment{ID: comment.ID, Frog: "ribbit"}, updated)

	comments, err := s.GetComments(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []Comment{*updated}, comments)

	blogID, err := createRandomBlog(db)
	require.NoError(t, err)
	membershipID, err := createRandomMembership(db, blogID, comment.ID)
	require.NoError(t, err)

	err = s.DeleteComment(ctx, comment.ID)
	assert.Equal(t, common.ReferentialError{Field: "comment_id", Message: "is still referenced by a membership"}, err)

	require.NoError(t, s.DeleteMembership(ctx, membershipID))
	assert.NoError(t, s.DeleteComment(ctx, comment.ID))

	_, err = s.GetCommentByID(ctx, comment.ID)
	assert.Equal(t, common.ErrRecordNotFound, err)
	assert.Equal(t, common.ErrRecordNotFound, s.DeleteComment(ctx, comment.ID))
}

func TestCreateMembership(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		req         func(blogID, commentID int) *MembershipRequest
		expected    func(blogID, commentID int) *Membership
		expectedErr error
	}{
		{
			name: "blank years are stored as null",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{BlogID: blogID, CommentID: commentID, StartYear: "", EndYear: "", Role: "reader"}
			},
			expected: func(blogID, commentID int) *Membership {
				return &Membership{BlogID: blogID, CommentID: commentID, Role: "reader"}
			},
		},
		{
			name: "years and no role",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{BlogID: blogID, CommentID: commentID, StartYear: "2019", EndYear: "2021"}
			},
			expected: func(blogID, commentID int) *Membership {
				return &Membership{BlogID: blogID, CommentID: commentID, StartYear: intptr(2019), EndYear: intptr(2021)}
			},
		},
		{
			name: "still active",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{BlogID: blogID, CommentID: commentID, StartYear: "2019", Role: "editor"}
			},
			expected: func(blogID, commentID int) *Membership {
				return &Membership{BlogID: blogID, CommentID: commentID, StartYear: intptr(2019), Role: "editor"}
			},
		},
		{
			name: "missing blog and comment",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{}
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"blog_id": "must be provided", "comment_id": "must be provided"}},
		},
		{
			name: "year is not a number",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{BlogID: blogID, CommentID: commentID, StartYear: "last year"}
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"start_year": "must be a whole number"}},
		},
		{
			name: "NUL in role",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{BlogID: blogID, CommentID: commentID, Role: "read\x00er"}
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"role": "must not contain NUL characters"}},
		},
		{
			name: "year out of range",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{BlogID: blogID, CommentID: commentID, StartYear: "3000000000", EndYear: "2021"}
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"start_year": "must be a whole number between -2147483648 and 2147483647"}},
		},
		{
			name: "end before start",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{BlogID: blogID, CommentID: commentID, StartYear: "2021", EndYear: "2019"}
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"end_year": "must not be before start_year"}},
		},
		{
			name: "unknown blog",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{BlogID: blogID + 100, CommentID: commentID}
			},
			expectedErr: common.ReferentialError{Field: "blog_id", Message: "does not reference an existing blog"},
		},
		{
			name: "unknown comment",
			req: func(blogID, commentID int) *MembershipRequest {
				return &MembershipRequest{BlogID: blogID, CommentID: commentID + 100}
			},
			expectedErr: common.ReferentialError{Field: "comment_id", Message: "does not reference an existing comment"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			blogID, err := createRandomBlog(db)
			require.NoError(t, err)
			commentID, err := createRandomComment(db)
			require.NoError(t, err)

			ms, err := s.CreateMembership(ctx, tc.req(blogID, commentID))
			assert.Equal(t, tc.expectedErr, err)

			if tc.expectedErr != nil {
				assert.Nil(t, ms)
				assert.Equal(t, 0, countRows(t, db, "roster.memberships"))
			} else {
				expected := tc.expected(blogID, commentID)
				expected.ID = ms.ID
				assert.Equal(t, expected, ms)

				stored, err := s.GetMembershipByID(ctx, ms.ID)
				assert.NoError(t, err)
				assert.Equal(t, expected, stored)
			}

			t.Cleanup(func() {
				assert.NoError(t, cleanup())
			})
		})
	}
}

func TestUpdateMembership(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	ctx := context.Background()
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	blogID, err := createRandomBlog(db)
	require.NoError(t, err)
	otherBlogID, err := createRandomBlog(db)
	require.NoError(t, err)
	commentID, err := createRandomComment(db)
	require.NoError(t, err)

	ms, err := s.CreateMembership(ctx, &MembershipRequest{BlogID: blogID, CommentID: commentID, StartYear: "2018", EndYear: "2020", Role: "reader"})
	require.NoError(t, err)

	updated, err := s.UpdateMembership(ctx, ms.ID, &MembershipRequest{BlogID: otherBlogID, CommentID: commentID, StartYear: "", EndYear: "", Role: ""})
	require.NoError(t, err)

	expected := &Membership{ID: ms.ID, BlogID: otherBlogID, CommentID: commentID}
	assert.Equal(t, expected, updated)

	stored, err := s.GetMembershipByID(ctx, ms.ID)
	assert.NoError(t, err)
	assert.Equal(t, expected, stored)

	_, err = s.UpdateMembership(ctx, ms.ID, &MembershipRequest{BlogID: otherBlogID + 100, CommentID: commentID})
	assert.Equal(t, common.ReferentialError{Field: "blog_id", Message: "does not reference an existing blog"}, err)

	_, err = s.UpdateMembership(ctx, ms.ID+100, &MembershipRequest{BlogID: blogID, CommentID: commentID})
	assert.Equal(t, common.ErrRecordNotFound, err)

	stored, err = s.GetMembershipByID(ctx, ms.ID)
	assert.NoError(t, err)
	assert.Equal(t, expected, stored)
}

func TestGetMembershipsByBlogAndComment(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	ctx := context.Background()
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	blogID, err := createRandomBlog(db)
	require.NoError(t, err)
	otherBlogID, err := createRandomBlog(db)
	require.NoError(t, err)
	emptyBlogID, err := createRandomBlog(db)
	require.NoError(t, err)
	commentID, err := createRandomComment(db)
	require.NoError(t, err)
	otherCommentID, err := createRandomComment(db)
	require.NoError(t, err)

	first, err := createRandomMembership(db, blogID, commentID)
	require.NoError(t, err)
	second, err := createRandomMembership(db, blogID, otherCommentID)
	require.NoError(t, err)
	third, err := createRandomMembership(db, otherBlogID, commentID)
	require.NoError(t, err)

	byBlog, err := s.GetMembershipsByBlog(ctx, blogID)
	assert.NoError(t, err)
	if assert.Len(t, byBlog, 2) {
		assert.Equal(t, first, byBlog[0].ID)
		assert.Equal(t, second, byBlog[1].ID)
	}

	byComment, err := s.GetMembershipsByComment(ctx, commentID)
	assert.NoError(t, err)
	if assert.Len(t, byComment, 2) {
		assert.Equal(t, first, byComment[0].ID)
		assert.Equal(t, third, byComment[1].ID)
	}

	empty, err := s.GetMembershipsByBlog(ctx, emptyBlogID)
	assert.NoError(t, err)
	assert.Empty(t, empty)

	_, err = s.GetMembershipsByBlog(ctx, emptyBlogID+100)
	assert.Equal(t, common.ErrRecordNotFound, err)

	_, err = s.GetMembershipsByComment(ctx, otherCommentID+100)
	assert.Equal(t, common.ErrRecordNotFound, err)

	all, err := s.GetMemberships(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUserLifecycle(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	ctx := context.Background()
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	blogID, err := createRandomBlog(db)
	require.NoError(t, err)

	loner, err := s.CreateUser(ctx, &UserRequest{Name: "tad", BlogID: ""})
	require.NoError(t, err)
	assert.Nil(t, loner.BlogID)
	assert.Equal(t, "tad", loner.Name)

	member, err := s.CreateUser(ctx, &UserRequest{Name: "pollywog", BlogID: common.OptionalIntOf(&blogID)})
	require.NoError(t, err)
	assert.Equal(t, &blogID, member.BlogID)

	_, err = s.CreateUser(ctx, &UserRequest{Name: "ghost", BlogID: common.OptionalIntOf(intptr(blogID + 100))})
	assert.Equal(t, common.ReferentialError{Field: "blog_id", Message: "does not reference an existing blog"}, err)

	_, err = s.CreateUser(ctx, &UserRequest{Name: strings.Repeat("u", 81)})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"user_name": "must not be more than 80 characters long"}}, err)

	byBlog, err := s.GetUsersByBlog(ctx, blogID)
	assert.NoError(t, err)
	assert.Equal(t, []User{*member}, byBlog)

	updated, err := s.UpdateUser(ctx, loner.ID, &UserRequest{Name: "", BlogID: common.OptionalIntOf(&blogID)})
	require.NoError(t, err)
	assert.Equal(t, &User{ID: loner.ID, BlogID: &blogID, Name: ""}, updated)

	users, err := s.GetUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	assert.NoError(t, s.DeleteUser(ctx, loner.ID))
	assert.Equal(t, common.ErrRecordNotFound, s.DeleteUser(ctx, loner.ID))

	_, err = s.GetUserByID(ctx, loner.ID)
	assert.Equal(t, common.ErrRecordNotFound, err)
}
