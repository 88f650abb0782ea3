package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/unicampus/portal/middlewares"
	"github.com/unicampus/portal/models"
)

func errJSON(c echo.Context, status int, code string) error {
	return c.JSON(status, map[string]any{"error": code})
}

func ctx(c echo.Context) context.Context {
	return c.Request().Context()
}

// actor pulls the authenticated identity; a missing identity means the
// auth middleware was bypassed, answered with 401 not a panic.
func actor(c echo.Context) (models.Identity, bool) {
	return middlewares.IdentityFrom(c)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validator adapts go-playground/validator to echo's Validator hook.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	return nil
}
