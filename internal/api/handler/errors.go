package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/moviecat/internal/api/apierr"
	"github.com/mcoot/moviecat/internal/model"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// Panic renders a recovered panic as an internal error
func Panic(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// movieIDVar parses the {id} route variable
func movieIDVar(r *http.Request) (model.MovieID, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError("movie id must be an integer")
	}
	return model.MovieID(id), nil
}
