package ctx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestWrapParamAndQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/menu/{id}", Wrap(func(c *Context) {
		c.Success(map[string]string{
			"id":       c.Param("id"),
			"category": c.Query("category"),
		})
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu/abc123?category=pizza", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, env.Status)
	assert.JSONEq(t, `{"id":"abc123","category":"pizza"}`, string(env.Data))
}

func TestBindJSONValid(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"guest@bistro.test"}`))

	Wrap(func(c *Context) {
		var in input
		require.True(t, c.BindJSON(&in))
		c.Success(in)
	})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBindJSONValidationFailure(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"nope"}`))

	Wrap(func(c *Context) {
		var in input
		assert.False(t, c.BindJSON(&in))
	})(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, env.Errors, "email")
}

func TestBindJSONMalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{broken`))

	Wrap(func(c *Context) {
		var in struct{}
		assert.False(t, c.BindJSON(&in))
	})(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorEnvelopes(t *testing.T) {
	cases := []struct {
		name    string
		send    func(c *Context)
		code    int
		message string
	}{
		{"unauthorized", func(c *Context) { c.Unauthorized() }, http.StatusUnauthorized, "unauthorized access"},
		{"forbidden", func(c *Context) { c.Forbidden() }, http.StatusForbidden, "forbidden access"},
		{"not found", func(c *Context) { c.NotFound() }, http.StatusNotFound, "Not found"},
		{"bad request", func(c *Context) { c.BadRequest("invalid id") }, http.StatusBadRequest, "invalid id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			Wrap(tc.send)(rec, req)

			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.message, decodeEnvelope(t, rec).Message)
		})
	}
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/menu", nil)

	Wrap(func(c *Context) {
		c.Created(map[string]string{"insertedId": "abc"})
	})(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
