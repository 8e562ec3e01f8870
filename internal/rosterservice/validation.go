package rosterservice

import (
	"github.com/sushihentaime/frogblogs/internal/common"
)

func validateBlog(v *common.Validator, req *BlogRequest) {
	v.CheckStruct(req)
}

func validateComment(v *common.Validator, req *CommentRequest) {
	v.CheckStruct(req)
}

// validateMembership checks the request and returns its parsed years.
func validateMembership(v *common.Validator, req *MembershipRequest) (startYear, endYear *int) {
	v.CheckStruct(req)
	startYear = req.StartYear.Int32Ptr(v, "start_year")
	endYear = req.EndYear.Int32Ptr(v, "end_year")
	return startYear, endYear
}

func validateUser(v *common.Validator, req *UserRequest) *int {
	v.CheckStruct(req)
	return req.BlogID.IntPtr(v, "blog_id")
}
