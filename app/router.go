package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	// user service
	router.HandlerFunc(http.MethodPost, "/api/users", app.createUserHandler)
	router.HandlerFunc(http.MethodGet, "/api/users", app.listUsersHandler)
	router.HandlerFunc(http.MethodPost, "/api/login", app.loginUserHandler)

	// blog service
	router.HandlerFunc(http.MethodGet, "/api/blogs", app.listBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/api/blogs", app.requireAuthUser(app.createBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/api/blogs/:id", app.deleteBlogHandler)
	router.HandlerFunc(http.MethodPut, "/api/blogs/:id", app.updateBlogLikesHandler)

	router.HandlerFunc(http.MethodGet, "/api/healthcheck", app.healthCheckHandler)

	return app.recoverPanic(app.rateLimit(app.logRequest(app.authenticate(router))))
}
