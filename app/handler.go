package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

type createUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (app *application) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var input createUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.userService.CreateUser(r.Context(), input.Username, input.Name, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrDuplicateUsername):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "expected `username` to be unique")
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, user, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userService.GetUsers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, users, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type loginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input loginUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	token, user, err := app.userService.LoginUser(r.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrAuthenticationFailure):
			app.invalidCredentialsErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			app.invalidCredentialsErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"token": token, "username": user.Username, "name": user.Name}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogs, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type createBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input createBlogRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user := app.getUserContext(r)

	req := &blogservice.CreateBlogRequest{
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  input.Likes,
		UserID: user.ID,
	}

	blog, err := app.blogService.CreateBlog(r.Context(), req)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			// a blog without a title or url is rejected with a bare 400
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, blogservice.ErrUserForeignKey):
			app.unAuthorizedErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	// the delete path verifies the credential itself rather than relying
	// on the resolved context user
	token := app.extractTokenFromHeader(r.Header.Get("Authorization"))
	if token == "" {
		app.invalidAuthenticationTokenResponse(w, r)
		return
	}

	claims, err := app.userService.VerifyToken(token)
	if err != nil {
		app.invalidAuthenticationTokenResponse(w, r)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if claims.UserID != blog.User.ID {
		app.writeErrorResponse(w, r, http.StatusUnauthorized, "only the person that added the blog can delete it")
		return
	}

	err = app.blogService.DeleteBlog(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateBlogLikesRequest struct {
	Likes *int `json:"likes"`
}

// updateBlogLikesHandler updates a blog's like count. There is no
// ownership check here; any caller may change any blog's likes.
func (app *application) updateBlogLikesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input updateBlogLikesRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	if input.Likes == nil {
		app.badRequestErrorResponse(w, r, errors.New("likes must be provided"))
		return
	}

	blog, err := app.blogService.UpdateLikes(r.Context(), id, *input.Likes)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
