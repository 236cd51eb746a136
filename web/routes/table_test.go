package routes_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dasdy/tabstyle/border"
	"github.com/dasdy/tabstyle/table"
	"github.com/dasdy/tabstyle/web/routes"
	"github.com/stretchr/testify/assert"
)

func newHandler(load func() (*table.Table, error)) *routes.ServerHandler {
	return &routes.ServerHandler{Title: "people.csv", Load: load}
}

func styledTable() (*table.Table, error) {
	return table.New([][]string{{"name"}, {"alice"}}).With(border.Filled("12")), nil
}

func TestTableHandle(t *testing.T) {
	t.Run("html by default", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		newHandler(styledTable).TableHandle(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/html; charset=UTF-8", recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Body.String(), "<title>people.csv</title>")
		assert.Contains(t, recorder.Body.String(), "border-left: 1px solid #0000ff")
		assert.Contains(t, recorder.Body.String(), "<td style=")
	})

	t.Run("plain text", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		newHandler(styledTable).TableHandle(recorder, httptest.NewRequest(http.MethodGet, "/?format=text", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/plain; charset=UTF-8", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "┌───────┐\n│ name  │\n├───────┤\n│ alice │\n└───────┘\n", recorder.Body.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		newHandler(styledTable).TableHandle(recorder, httptest.NewRequest(http.MethodGet, "/?format=pdf", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("load failure", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler := newHandler(func() (*table.Table, error) {
			return nil, errors.New("no such file")
		})

		handler.TableHandle(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "no such file")
	})
}
