package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid argument", err: New(InvalidArgument, "bad input"), want: fiber.StatusBadRequest},
		{name: "not found", err: New(NotFound, "missing"), want: fiber.StatusNotFound},
		{name: "forbidden", err: New(Forbidden, "no"), want: fiber.StatusForbidden},
		{name: "unauthorized", err: New(Unauthorized, "who"), want: fiber.StatusUnauthorized},
		{name: "internal", err: New(Internal, "boom"), want: fiber.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: fiber.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("context: %w", New(NotFound, "missing")), want: fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "missing", PublicMessage(New(NotFound, "missing")))
	assert.Equal(t, "Internal server error", PublicMessage(New(Internal, "db exploded")))
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("db exploded")))
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	err := Wrap(NotFound, "user not found", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "user not found: row not found", err.Error())
	assert.Equal(t, NotFound, KindOf(err))
}
