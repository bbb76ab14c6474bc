package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/moviecat/internal/catalog"
	"github.com/mcoot/moviecat/internal/model"
)

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"duplicate email", model.ErrDuplicateEmail, http.StatusConflict, CodeDuplicateEmail},
		{"wrapped credentials", fmt.Errorf("login: %w", model.ErrInvalidCredentials), http.StatusUnauthorized, CodeInvalidCredentials},
		{"no session", model.ErrNotAuthenticated, http.StatusUnauthorized, CodeNotAuthenticated},
		{"invalid theme", model.ErrInvalidTheme, http.StatusBadRequest, CodeInvalidTheme},
		{"catalog", &catalog.RemoteCatalogError{Status: 503, StatusText: "Service Unavailable"}, http.StatusBadGateway, CodeCatalogError},
		{"invalid request", NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tc.err)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}
