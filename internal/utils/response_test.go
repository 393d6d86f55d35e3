package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmsantos/account-api/internal/constants"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusOK, map[string]string{"email": "alice@example.com"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constants.ContentTypeJSON, rec.Header().Get(constants.HeaderContentType))

	resp := decodeBody(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", data["email"])
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	Message(rec, http.StatusCreated, constants.MsgRegisterSuccess)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, constants.MsgRegisterSuccess, resp.Message)
	assert.Nil(t, resp.Data)
	assert.Nil(t, resp.Error)

	// The envelope must not carry empty data or error fields
	assert.NotContains(t, rec.Body.String(), `"data"`)
	assert.NotContains(t, rec.Body.String(), `"error"`)
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusConflict, constants.CodeDuplicateResource, constants.MsgEmailAlreadyExists, map[string]string{"email": "taken"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeBody(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, constants.CodeDuplicateResource, resp.Error.Code)
	assert.Equal(t, constants.MsgEmailAlreadyExists, resp.Error.Message)
	assert.Equal(t, "taken", resp.Error.Details["email"])
}

func TestErrorFromAppError_CodeMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
		wantCode   string
	}{
		{"not found", NewNotFoundError("missing"), http.StatusNotFound, constants.CodeNotFound},
		{"validation", NewValidationError("password", "weak"), http.StatusUnprocessableEntity, constants.CodeValidationError},
		{"duplicate", NewDuplicateError("taken"), http.StatusConflict, constants.CodeDuplicateResource},
		{"invalid credentials", NewInvalidCredentialsError(), http.StatusUnauthorized, constants.CodeInvalidCredentials},
		{"expired token", NewExpiredTokenError(), http.StatusBadRequest, constants.CodeTokenExpired},
		{"dependency failure", NewDependencyFailureError("email down"), http.StatusFailedDependency, constants.CodeDependencyFailure},
		{"bad request", NewBadRequestError("bad"), http.StatusBadRequest, constants.CodeBadRequest},
		{"internal", NewInternalServerError(nil), http.StatusInternalServerError, constants.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			ErrorFromAppError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeBody(t, rec)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestErrorFromAppError_FieldDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	ErrorFromAppError(rec, NewValidationError("password", constants.MsgPasswordTooShort))

	resp := decodeBody(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, constants.MsgPasswordTooShort, resp.Error.Details["password"])
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	NoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUnauthorized_DefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	Unauthorized(rec, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeBody(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, constants.MsgAuthRequired, resp.Error.Message)
}

func TestNotFound_DefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	NotFound(rec, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeBody(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, constants.MsgResourceNotFound, resp.Error.Message)
}
