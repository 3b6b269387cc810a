package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{nil, fiber.StatusOK},
		{fmt.Errorf("wrap: %w", ErrUnauthorized), fiber.StatusUnauthorized},
		{ErrValidation, fiber.StatusUnprocessableEntity},
		{fmt.Errorf("%w: abc", ErrInvalidID), fiber.StatusBadRequest},
		{ErrNotFound, fiber.StatusNotFound},
		{ErrStore, fiber.StatusInternalServerError},
		{errors.New("boom"), fiber.StatusInternalServerError},
		{fiber.NewError(fiber.StatusTeapot, "tea"), fiber.StatusTeapot},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), fmt.Sprint(tc.err))
	}
}

func TestBuildPagination(t *testing.T) {
	t.Parallel()

	p := BuildPagination(12, 2, 5)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPagination(0, -1, 0)
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 10, p.Size)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasPrev)

	p = BuildPagination(12, math.MaxInt, 1)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPagination(12, 0, 5)
	assert.True(t, p.HasNext)
}

func TestPatchField_ThreeStates(t *testing.T) {
	t.Parallel()

	var body struct {
		A PatchField[string] `json:"a"`
		B PatchField[string] `json:"b"`
		C PatchField[string] `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x","b":null}`), &body))

	assert.True(t, body.A.ShouldUpdate())
	assert.False(t, body.A.IsNull())
	assert.Equal(t, "x", *body.A.Value)

	assert.True(t, body.B.ShouldUpdate())
	assert.True(t, body.B.IsNull())

	assert.False(t, body.C.ShouldUpdate())
	assert.False(t, body.C.IsNull())
}

func TestStoreFailure_HidesDriverText(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/store", func(c *fiber.Ctx) error {
		return StoreFailure(c, "test.op", fmt.Errorf("%w: pq: password authentication failed", ErrStore))
	})
	app.Get("/id", func(c *fiber.Ctx) error {
		return StoreFailure(c, "test.op", fmt.Errorf("%w: %q", ErrInvalidID, "zz"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/store", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(b), "password")
	assert.Contains(t, string(b), "INTERNAL_ERROR")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/id", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestNewValidator_UsesJSONNames(t *testing.T) {
	t.Parallel()

	type req struct {
		SubmitterEmail string `json:"submitterEmail" validate:"required,email"`
	}
	err := NewValidator().Struct(req{SubmitterEmail: "nope"})
	require.Error(t, err)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return ValidationError(c, err) })
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var out ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []string{"email"}, out.Errors["submitterEmail"])
}
