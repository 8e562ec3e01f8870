package ownershipservice

import (
	"github.com/sushihentaime/frogblogs/internal/common"
)

func validateUser(v *common.Validator, req *UserRequest) {
	v.CheckStruct(req)
}

// validateBlog returns the parsed owner.
func validateBlog(v *common.Validator, req *BlogRequest) *int {
	v.CheckStruct(req)
	return req.UserID.IntPtr(v, "user_id")
}

func validateComment(v *common.Validator, req *CommentRequest) (userID, blogID *int) {
	v.CheckStruct(req)
	userID = req.UserID.IntPtr(v, "user_id")
	blogID = req.BlogID.IntPtr(v, "blog_id")
	return userID, blogID
}
