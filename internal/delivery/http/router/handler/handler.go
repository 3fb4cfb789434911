// Package handler contains the HTTP handlers for the application.
package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"mylot/config"
	"mylot/internal/delivery/http/response"
	"mylot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// parseListQuery reads the page window from the query string.
// Missing or malformed values fall back to the usecase defaults.
func parseListQuery(c echo.Context) usecase.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return usecase.ListQuery{Page: page, Limit: limit}
}

// decodeOneOrMany reads the request body and decodes either a single document
// or an array of them. Content creates accept both shapes.
func decodeOneOrMany[T any](c echo.Context) ([]T, bool, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, false, err
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []T
		if err := json.Unmarshal(body, &many); err != nil {
			return nil, true, err
		}

		return many, true, nil
	}

	var one T
	if err := json.Unmarshal(body, &one); err != nil {
		return nil, false, err
	}

	return []T{one}, false, nil
}

// runValidatedBatch validates every payload, marks the failures, and runs the
// remaining items through the batch create, merging outcomes back by input
// index. Items are independent: one bad document never blocks its siblings.
func runValidatedBatch[T any](c echo.Context, payloads []T, create func(valid []T) []usecase.BatchItemResult) []response.BatchItem {
	items := make([]response.BatchItem, len(payloads))
	valid := make([]T, 0, len(payloads))
	indexes := make([]int, 0, len(payloads))

	for i, payload := range payloads {
		items[i] = response.BatchItem{Index: i}
		if err := c.Validate(payload); err != nil {
			items[i].Error = err.Error()

			continue
		}
		valid = append(valid, payload)
		indexes = append(indexes, i)
	}

	for _, outcome := range create(valid) {
		original := indexes[outcome.Index]
		items[original].Index = original
		if outcome.Err != nil {
			items[original].Error = outcome.Err.Error()
		} else {
			items[original].ID = outcome.ID.String()
		}
	}

	return items
}

// setSessionCookie stores the session token in the browser cookie.
func setSessionCookie(c echo.Context, cfg *config.Config, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.HTTP.Cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   cfg.HTTP.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie removes the session cookie.
func clearSessionCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.HTTP.Cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.HTTP.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
