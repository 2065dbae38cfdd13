package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkohler/webshop/internal/events"
	"github.com/mkohler/webshop/internal/hash"
	"github.com/mkohler/webshop/internal/logging"
	mwauth "github.com/mkohler/webshop/internal/middleware/auth"
	"github.com/mkohler/webshop/internal/models"
	"github.com/mkohler/webshop/internal/repo"
	"github.com/mkohler/webshop/internal/token"
)

const msgHashingError = "Error hashing password"

type AuthHandler struct {
	Repo     *repo.GormRepo
	Tokens   *token.Service
	Producer *events.Producer
}

type userView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    int    `json:"role"`
}

func viewOf(u *models.User) userView {
	return userView{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		Role:    u.Role,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		l.Warn("register_error", "status", 400, "reason", "missing_fields")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "name, email and password are required"})
	}

	if _, err := h.Repo.UserByEmail(ctx, req.Email); err == nil {
		l.Warn("register_failed", "status", 409, "reason", "user_exists")
		return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "user already exists"})
	} else if !errors.Is(err, repo.ErrNotFound) {
		l.Error("register_failed", "status", 500, "reason", "db_error", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "internal error"})
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "status", 401, "reason", "cannot hash the password", "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": msgHashingError})
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         models.RoleUser,
	}
	if err := h.Repo.CreateUser(ctx, &user); err != nil {
		l.Error("register_failed", "status", 500, "reason", "db_error", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "internal error"})
	}

	event := map[string]interface{}{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	}
	if err := h.Producer.PublishEvent(ctx, events.TopicUserEvents, fmt.Sprint(user.ID), event); err != nil {
		l.Error("publish_failed", "topic", events.TopicUserEvents, "error", err)
	}

	l.Info("register_success", "status", 201, "userID", user.ID)
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "user registered successfully",
		"user":    viewOf(&user),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	user, err := h.Repo.UserByEmail(ctx, req.Email)
	if err != nil {
		// unknown email and wrong password answer identically
		l.Warn("login_failed", "status", 401, "reason", "invalid email or password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid email or password"})
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "status", 401, "reason", "invalid email or password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid email or password"})
	}

	tkn, err := h.Tokens.Issue(user.ID)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot create token", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "cannot create token"})
	}

	event := map[string]interface{}{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	}
	if err := h.Producer.PublishEvent(ctx, events.TopicUserEvents, fmt.Sprint(user.ID), event); err != nil {
		l.Error("publish_failed", "topic", events.TopicUserEvents, "error", err)
	}

	l.Info("login_success", "userID", user.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "login successfully",
		"user":    viewOf(user),
		"token":   tkn,
	})
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_update_profile")

	userID, ok := mwauth.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": mwauth.MsgUnauthorized})
	}

	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	user, err := h.Repo.UserByID(ctx, userID)
	if err != nil {
		l.Error("profile_update_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "internal error"})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Password != "" {
		pwHash, err := hash.HashPassword(req.Password)
		if err != nil {
			l.Error("profile_update_failed", "status", 401, "reason", "cannot hash the password", "error", err)
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": msgHashingError})
		}
		user.PasswordHash = pwHash
	}

	if err := h.Repo.UpdateUser(ctx, user); err != nil {
		l.Error("profile_update_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "internal error"})
	}

	l.Info("profile_updated", "userID", user.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "profile updated successfully",
		"user":    viewOf(user),
	})
}

// Probe answers for the client-side route guards: reaching the handler at
// all means the gates in front of it passed.
func (h *AuthHandler) Probe(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
