package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/unicampus/portal/auth"
	"github.com/unicampus/portal/bootstrap"
	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/session"
	"github.com/unicampus/portal/store"
)

const tokenTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	Secret   string
	Strategy auth.Strategy
	Sessions *session.Manager
	Store    *store.Store
	Log      *zap.Logger
}

func NewAuthHandler(secret string, strategy auth.Strategy, sessions *session.Manager, st *store.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Secret: secret, Strategy: strategy, Sessions: sessions, Store: st, Log: log}
}

func (h *AuthHandler) signJWT(ident models.Identity, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  ident.ID,
		"role": ident.Role,
		"name": ident.DisplayName,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.Secret))
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /auth/student/login
func (h *AuthHandler) StudentLogin(c echo.Context) error {
	return h.login(c, models.RoleStudent)
}

// POST /auth/faculty/login
func (h *AuthHandler) FacultyLogin(c echo.Context) error {
	return h.login(c, models.RoleFaculty)
}

func (h *AuthHandler) login(c echo.Context, role string) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ident, err := h.Strategy.Login(ctx(c), role, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return errJSON(c, http.StatusUnauthorized, "INVALID_CREDENTIALS")
		}
		return errJSON(c, http.StatusInternalServerError, "LOGIN_FAILED")
	}

	// First faculty login on an empty roster gets starter records so
	// the dashboard has something to show.
	if role == models.RoleFaculty {
		if err := bootstrap.Seed(ctx(c), h.Store, ident.ID); err != nil {
			h.Log.Warn("starter seed failed", zap.String("faculty_id", ident.ID), zap.Error(err))
		}
	}

	token, err := h.signJWT(ident, tokenTTL)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "TOKEN_GEN_FAILED")
	}

	now := time.Now()
	if err := h.Sessions.Save(ident, session.Session{
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(tokenTTL),
	}); err != nil {
		h.Log.Warn("session persist failed", zap.Error(err))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user":  ident,
	})
}

// GET /auth/session restores a persisted session, the bypass path that
// keeps a dev login alive across restarts.
func (h *AuthHandler) Session(c echo.Context) error {
	ident, sess := h.Sessions.Current()
	if ident == nil {
		return errJSON(c, http.StatusUnauthorized, "NO_SESSION")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": sess.Token,
		"user":  ident,
	})
}

// POST /auth/logout is idempotent; logging out twice is fine.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Sessions.Clear()
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
