// Package view renders the minimal embedded HTML pages serving the
// browser flows: login, signup, reset, account, and the content lists.
package view

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

const flashCookie = "flash"

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.Wrap(r.templates.ExecuteTemplate(w, name, data), "failed to render template")
}

// Data is the payload every page template receives.
type Data struct {
	Title string
	User  any
	Flash string
	Extra map[string]any
}

// SetFlash stores a one-shot message shown on the next rendered page.
func SetFlash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
	})
}

// TakeFlash reads and clears the one-shot message.
func TakeFlash(c echo.Context) string {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}

	return message
}
