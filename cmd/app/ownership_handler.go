package main

import (
	"net/http"

	"github.com/sushihentaime/frogblogs/internal/common"
	"github.com/sushihentaime/frogblogs/internal/ownershipservice"
)

const (
	ownershipUsersPath    = "/v1/ownership/users"
	ownershipBlogsPath    = "/v1/ownership/blogs"
	ownershipCommentsPath = "/v1/ownership/comments"
)

// users

func (app *application) listOwnershipUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.ownershipService.GetUsers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"users": users}, nil)
}

func (app *application) createOwnershipUserHandler(w http.ResponseWriter, r *http.Request) {
	var input ownershipservice.UserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.ownershipService.CreateUser(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusCreated, envelope{"user": user, "message": "user created"}, location(ownershipUsersPath))
}

func (app *application) getOwnershipUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.ownershipService.GetUserByID(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"user": user}, nil)
}

func (app *application) updateOwnershipUserHandler(w http.ResponseWriter, r *http.Request) {
	var input ownershipservice.UserRequest

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

	user, err := app.ownershipService.UpdateUser(r.Context(), id, &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"user": user, "message": "user updated"}, location(ownershipUsersPath))
}

func (app *application) deleteOwnershipUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.ownershipService.DeleteUser(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"message": "user deleted"}, location(ownershipUsersPath))
}

func (app *application) listOwnershipUserBlogsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogs, err := app.ownershipService.GetBlogsByUser(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"blogs": blogs}, nil)
}

func (app *application) listOwnershipUserCommentsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comments, err := app.ownershipService.GetCommentsByUser(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"comments": comments}, nil)
}

// blogs

func (app *application) listOwnershipBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.ownershipService.GetBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"blogs": blogs}, nil)
}

func (app *application) createOwnershipBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input ownershipservice.BlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.ownershipService.CreateBlog(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusCreated, envelope{"blog": blog, "message": "blog created"}, location(ownershipBlogsPath))
}

func (app *application) getOwnershipBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.ownershipService.GetBlogByID(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"blog": blog}, nil)
}

func (app *application) updateOwnershipBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input ownershipservice.BlogRequest

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

	blog, err := app.ownershipService.UpdateBlog(r.Context(), id, &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"blog": blog, "message": "blog updated"}, location(ownershipBlogsPath))
}

func (app *application) deleteOwnershipBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.ownershipService.DeleteBlog(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"message": "blog deleted"}, location(ownershipBlogsPath))
}

func (app *application) listOwnershipBlogCommentsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comments, err := app.ownershipService.GetCommentsByBlog(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"comments": comments}, nil)
}

// comments

// announceComment publishes an event for comments that sit on a blog.
func (app *application) announceComment(c *ownershipservice.Comment) {
	if c.BlogID == nil {
		return
	}

	app.publishCommentAttached(common.CommentAttachedEvent{
		Schema:    "ownership",
		BlogID:    *c.BlogID,
		CommentID: c.ID,
	})
}

func (app *application) listOwnershipCommentsHandler(w http.ResponseWriter, r *http.Request) {
	comments, err := app.ownershipService.GetComments(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"comments": comments}, nil)
}

func (app *application) createOwnershipCommentHandler(w http.ResponseWriter, r *http.Request) {
	var input ownershipservice.CommentRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.ownershipService.CreateComment(r.Context(), &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.announceComment(comment)

	app.respond(w, r, http.StatusCreated, envelope{"comment": comment, "message": "comment created"}, location(ownershipCommentsPath))
}

func (app *application) getOwnershipCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.ownershipService.GetCommentByID(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"comment": comment}, nil)
}

func (app *application) updateOwnershipCommentHandler(w http.ResponseWriter, r *http.Request) {
	var input ownershipservice.CommentRequest

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

	comment, err := app.ownershipService.UpdateComment(r.Context(), id, &input)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.announceComment(comment)

	app.respond(w, r, http.StatusOK, envelope{"comment": comment, "message": "comment updated"}, location(ownershipCommentsPath))
}

func (app *application) deleteOwnershipCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.ownershipService.DeleteComment(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	app.respond(w, r, http.StatusOK, envelope{"message": "comment deleted"}, location(ownershipCommentsPath))
}
