// Package response defines the JSON shapes the API serves.
package response

import (
	"net/http"

	domainerrors "mylot/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Page is the list envelope: one page of documents plus pagination metadata.
type Page struct {
	Docs  any   `json:"docs"`
	Total int64 `json:"total"`
	Limit int   `json:"limit"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// Message is the single-line envelope used for errors and confirmations.
type Message struct {
	Msg string `json:"msg"`
}

// BatchItem reports the outcome of one document in a batch create.
type BatchItem struct {
	Index int    `json:"index"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewPage assembles the list envelope, deriving the page count from the total.
func NewPage(docs any, total int64, page, limit int) Page {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Page{
		Docs:  docs,
		Total: total,
		Limit: limit,
		Page:  page,
		Pages: pages,
	}
}

// JSON writes data with the given status.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Msg writes a single-line message with the given status.
func Msg(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, Message{Msg: msg})
}

// BindingError is the 400 served when the request body cannot be decoded.
func BindingError(c echo.Context) error {
	return Msg(c, http.StatusBadRequest, "Invalid request payload.")
}

// LoginRequired is the legacy 400 served when a content mutation lacks a login.
func LoginRequired(c echo.Context) error {
	return Msg(c, domainerrors.ErrLoginRequired.HTTPCode(), domainerrors.ErrLoginRequired.Message())
}

// Fields writes the full set of validation failures as [{field, message}].
func Fields(c echo.Context, statusCode int, fields []domainerrors.FieldError) error {
	return c.JSON(statusCode, fields)
}
