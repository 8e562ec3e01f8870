package main

import (
	"net/http"

	"github.com/sushihentaime/frogblogs/internal/common"
	"github.com/sushihentaime/frogblogs/internal/rosterservice"
)

const (
	rosterBlogsPath       = "/v1/roster/blogs"
	rosterCommentsPath    = "/v1/roster/comments"
	rosterMembershipsPath = "/v1/roster/memberships"
	rosterUsersPath       = "/v1/roster/users"
)

// blogs

func (app *application) listRosterBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.rosterService.GetBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"blogs": blogs}, nil)
}

func (app *application) createRosterBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input rosterservice.BlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.rosterService.CreateBlog(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusCreated, envelope{"blog": blog, "message": "blog created"}, location(rosterBlogsPath))
}

func (app *application) getRosterBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.rosterService.GetBlogByID(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"blog": blog}, nil)
}

func (app *application) updateRosterBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input rosterservice.BlogRequest

	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.rosterService.UpdateBlog(r.Context(), id, &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"blog": blog, "message": "blog updated"}, location(rosterBlogsPath))
}

func (app *application) deleteRosterBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.rosterService.DeleteBlog(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"message": "blog deleted"}, location(rosterBlogsPath))
}

func (app *application) listRosterBlogMembershipsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	memberships, err := app.rosterService.GetMembershipsByBlog(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"memberships": memberships}, nil)
}

func (app *application) listRosterBlogUsersHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	users, err := app.rosterService.GetUsersByBlog(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"users": users}, nil)
}

// comments

func (app *application) listRosterCommentsHandler(w http.ResponseWriter, r *http.Request) {
	comments, err := app.rosterService.GetComments(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"comments": comments}, nil)
}

func (app *application) createRosterCommentHandler(w http.ResponseWriter, r *http.Request) {
	var input rosterservice.CommentRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.rosterService.CreateComment(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusCreated, envelope{"comment": comment, "message": "comment created"}, location(rosterCommentsPath))
}

func (app *application) getRosterCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.rosterService.GetCommentByID(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"comment": comment}, nil)
}

func (app *application) updateRosterCommentHandler(w http.ResponseWriter, r *http.Request) {
	var input rosterservice.CommentRequest

	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.rosterService.UpdateComment(r.Context(), id, &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"comment": comment, "message": "comment updated"}, location(rosterCommentsPath))
}

func (app *application) deleteRosterCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.rosterService.DeleteComment(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"message": "comment deleted"}, location(rosterCommentsPath))
}

func (app *application) listRosterCommentMembershipsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	memberships, err := app.rosterService.GetMembershipsByComment(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"memberships": memberships}, nil)
}

// memberships

func membershipAttachedEvent(ms *rosterservice.Membership) common.CommentAttachedEvent {
	return common.CommentAttachedEvent{
		Schema:       "roster",
		BlogID:       ms.BlogID,
		CommentID:    ms.CommentID,
		MembershipID: ms.ID,
		Role:         ms.Role,
	}
}

func (app *application) listRosterMembershipsHandler(w http.ResponseWriter, r *http.Request) {
	memberships, err := app.rosterService.GetMemberships(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"memberships": memberships}, nil)
}

func (app *application) createRosterMembershipHandler(w http.ResponseWriter, r *http.Request) {
	var input rosterservice.MembershipRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	ms, err := app.rosterService.CreateMembership(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.publishCommentAttached(membershipAttachedEvent(ms))

	app.respond(w, r, http.StatusCreated, envelope{"membership": ms, "message": "membership created"}, location(rosterMembershipsPath))
}

func (app *application) getRosterMembershipHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	ms, err := app.rosterService.GetMembershipByID(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"membership": ms}, nil)
}

func (app *application) updateRosterMembershipHandler(w http.ResponseWriter, r *http.Request) {
	var input rosterservice.MembershipRequest

	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	ms, err := app.rosterService.UpdateMembership(r.Context(), id, &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.publishCommentAttached(membershipAttachedEvent(ms))

	app.respond(w, r, http.StatusOK, envelope{"membership": ms, "message": "membership updated"}, location(rosterMembershipsPath))
}

func (app *application) deleteRosterMembershipHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.rosterService.DeleteMembership(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"message": "membership deleted"}, location(rosterMembershipsPath))
}

// users

func (app *application) listRosterUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.rosterService.GetUsers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"users": users}, nil)
}

func (app *application) createRosterUserHandler(w http.ResponseWriter, r *http.Request) {
	var input rosterservice.UserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.rosterService.CreateUser(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusCreated, envelope{"user": user, "message": "user created"}, location(rosterUsersPath))
}

func (app *application) getRosterUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.rosterService.GetUserByID(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"user": user}, nil)
}

func (app *application) updateRosterUserHandler(w http.ResponseWriter, r *http.Request) {
	var input rosterservice.UserRequest

	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.rosterService.UpdateUser(r.Context(), id, &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"user": user, "message": "user updated"}, location(rosterUsersPath))
}

func (app *application) deleteRosterUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.rosterService.DeleteUser(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"message": "user deleted"}, location(rosterUsersPath))
}
