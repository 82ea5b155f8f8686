package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesCopies(t *testing.T) {
	sentinel := New(KindConflict, "PLATE_OCCUPIED", "plate already has an open session")

	detailed := sentinel.WithDetails(map[string]string{"plate": "ABC123"})
	wrapped := fmt.Errorf("register entry: %w", detailed)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.Nil(t, sentinel.Details)
}

func TestErrorIsDistinguishesCodes(t *testing.T) {
	a := New(KindState, "A", "a")
	b := New(KindState, "B", "b")

	assert.False(t, errors.Is(a, b))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:    http.StatusUnprocessableEntity,
		KindPrecondition:  http.StatusConflict,
		KindConflict:      http.StatusConflict,
		KindState:         http.StatusConflict,
		KindNotFound:      http.StatusNotFound,
		KindConfiguration: http.StatusInternalServerError,
		KindUnauthorized:  http.StatusUnauthorized,
		KindForbidden:     http.StatusForbidden,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.HTTPStatus(), string(kind))
	}
}
