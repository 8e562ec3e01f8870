package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthCheckHandler)

	// roster schema
	router.HandlerFunc(http.MethodGet, "/v1/roster/blogs", app.listRosterBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/roster/blogs", app.createRosterBlogHandler)
	router.HandlerFunc(http.MethodGet, "/v1/roster/blogs/:id", app.getRosterBlogHandler)
	router.HandlerFunc(http.MethodPut, "/v1/roster/blogs/:id", app.updateRosterBlogHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/roster/blogs/:id", app.deleteRosterBlogHandler)
	router.HandlerFunc(http.MethodGet, "/v1/roster/blogs/:id/memberships", app.listRosterBlogMembershipsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/roster/blogs/:id/users", app.listRosterBlogUsersHandler)

	router.HandlerFunc(http.MethodGet, "/v1/roster/comments", app.listRosterCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/roster/comments", app.createRosterCommentHandler)
	router.HandlerFunc(http.MethodGet, "/v1/roster/comments/:id", app.getRosterCommentHandler)
	router.HandlerFunc(http.MethodPut, "/v1/roster/comments/:id", app.updateRosterCommentHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/roster/comments/:id", app.deleteRosterCommentHandler)
	router.HandlerFunc(http.MethodGet, "/v1/roster/comments/:id/memberships", app.listRosterCommentMembershipsHandler)

	router.HandlerFunc(http.MethodGet, "/v1/roster/memberships", app.listRosterMembershipsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/roster/memberships", app.createRosterMembershipHandler)
	router.HandlerFunc(http.MethodGet, "/v1/roster/memberships/:id", app.getRosterMembershipHandler)
	router.HandlerFunc(http.MethodPut, "/v1/roster/memberships/:id", app.updateRosterMembershipHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/roster/memberships/:id", app.deleteRosterMembershipHandler)

	router.HandlerFunc(http.MethodGet, "/v1/roster/users", app.listRosterUsersHandler)
	router.HandlerFunc(http.MethodPost, "/v1/roster/users", app.createRosterUserHandler)
	router.HandlerFunc(http.MethodGet, "/v1/roster/users/:id", app.getRosterUserHandler)
	router.HandlerFunc(http.MethodPut, "/v1/roster/users/:id", app.updateRosterUserHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/roster/users/:id", app.deleteRosterUserHandler)

	// ownership schema
	router.HandlerFunc(http.MethodGet, "/v1/ownership/users", app.listOwnershipUsersHandler)
	router.HandlerFunc(http.MethodPost, "/v1/ownership/users", app.createOwnershipUserHandler)
	router.HandlerFunc(http.MethodGet, "/v1/ownership/users/:id", app.getOwnershipUserHandler)
	router.HandlerFunc(http.MethodPut, "/v1/ownership/users/:id", app.updateOwnershipUserHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/ownership/users/:id", app.deleteOwnershipUserHandler)
	router.HandlerFunc(http.MethodGet, "/v1/ownership/users/:id/blogs", app.listOwnershipUserBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/ownership/users/:id/comments", app.listOwnershipUserCommentsHandler)

	router.HandlerFunc(http.MethodGet, "/v1/ownership/blogs", app.listOwnershipBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/ownership/blogs", app.createOwnershipBlogHandler)
	router.HandlerFunc(http.MethodGet, "/v1/ownership/blogs/:id", app.getOwnershipBlogHandler)
	router.HandlerFunc(http.MethodPut, "/v1/ownership/blogs/:id", app.updateOwnershipBlogHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/ownership/blogs/:id", app.deleteOwnershipBlogHandler)
	router.HandlerFunc(http.MethodGet, "/v1/ownership/blogs/:id/comments", app.listOwnershipBlogCommentsHandler)

	router.HandlerFunc(http.MethodGet, "/v1/ownership/comments", app.listOwnershipCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/ownership/comments", app.createOwnershipCommentHandler)
	router.HandlerFunc(http.MethodGet, "/v1/ownership/comments/:id", app.getOwnershipCommentHandler)
	router.HandlerFunc(http.MethodPut, "/v1/ownership/comments/:id", app.updateOwnershipCommentHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/ownership/comments/:id", app.deleteOwnershipCommentHandler)

	return app.recoverPanic(app.requestID(app.logRequest(app.rateLimit(router))))
}
