package custom_error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(NewValidation("bad input")))
	assert.Equal(t, KindConflict, KindOf(NewConflict("already allocated")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("context: %w", NewNotFound("missing"))))
}

func TestUniqueViolationMapsToConflict(t *testing.T) {
	err := WrapDBError("duplicate asset id", "23505")

	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewValidation("x"), http.StatusBadRequest},
		{NewUnsupportedQuantity("x"), http.StatusBadRequest},
		{NewInvalidIssue("x"), http.StatusBadRequest},
		{NewConflict("x"), http.StatusBadRequest},
		{NewNoSuchHardware("x"), http.StatusNotFound},
		{NewNotFound("x"), http.StatusNotFound},
		{NewAuthorization("x"), http.StatusForbidden},
		{NewNotAllowed("x"), http.StatusForbidden},
		{errors.New("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), "kind %s", KindOf(tt.err))
	}
}

func TestIsKindSeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("submit request: %w", NewConflict("already allocated"))

	assert.True(t, IsKind(wrapped, KindConflict))
	assert.False(t, IsKind(wrapped, KindValidation))
}
