package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/handler"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("plain html", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, handler.TemplStatus(http.StatusUnprocessableEntity, text("<p>x</p>")).Render(rec, req))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<p>x</p>", rec.Body.String())
	})

	t.Run("datastar patch", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set(handler.DataStarRequestHeader, "true")

		require.NoError(t, handler.Templ(text(`<p id="login-contact-error">bad</p>`), handler.WithTarget("#login-contact-error")).Render(rec, req))

		body := rec.Body.String()
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#login-contact-error")
		assert.Contains(t, body, "bad")
	})

	t.Run("multi concatenates html", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, handler.TemplMulti(
			handler.Patch(text("a"), handler.WithTarget("#a")),
			handler.Patch(text("b"), handler.WithTarget("#b"), handler.WithPatchMode(handler.PatchInner)),
		).Render(rec, req))
		assert.Equal(t, "ab", rec.Body.String())
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(req))

	req = httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)
	assert.True(t, handler.IsDataStar(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(req))
}
