package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmgrid/encounter-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "encounter not found")

	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "encounter not found", err.Message)
	assert.Equal(t, "NOT_FOUND: encounter not found", err.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.InvalidArgument("round must be a number")
	wrapped := errors.Wrap(inner, "load failed")

	assert.Equal(t, errors.CodeInvalidArgument, wrapped.Code)
	assert.Equal(t, "load failed", wrapped.Message)
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(inner, "redis save failed")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.CodeOf(nil))
	assert.Equal(t, errors.CodeNotFound, errors.CodeOf(errors.NotFound("missing")))
	assert.Equal(t, errors.CodeInternal, errors.CodeOf(fmt.Errorf("plain")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   errors.Code
		status int
	}{
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeAlreadyExists, http.StatusConflict},
		{errors.CodeFailedPrecondition, http.StatusPreconditionFailed},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.Code("BOGUS"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.status, tc.code.HTTPStatus(), "code %s", tc.code)
	}
}

func TestWriteHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	errors.WriteHTTP(rec, errors.NotFound("save not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"save not found"}`, rec.Body.String())
}

func TestWriteHTTP_PlainErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	errors.WriteHTTP(rec, fmt.Errorf("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Repository").
		Field("Count", "must be positive").
		Build()

	assert.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "Repository: is required")
	assert.Contains(t, err.Error(), "Count: must be positive")
}

func TestValidationBuilder_Empty(t *testing.T) {
	assert.NoError(t, errors.NewValidationBuilder().Build())
}
