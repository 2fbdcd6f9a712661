package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sivaharine/pet-Adoption/internal/config"
	"github.com/sivaharine/pet-Adoption/internal/repository"
	"github.com/sivaharine/pet-Adoption/internal/utils"
)

// AuthHandler bundles dependencies for registration, login and profile
// endpoints.
type AuthHandler struct {
	Cfg       config.Config
	Users     *repository.UserRepo
	Favorites *repository.FavoriteRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, f *repository.FavoriteRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Favorites: f}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
type authResp struct {
	User  userPart  `json:"user"`
	Token tokenPart `json:"token"`
}

// profileResp is the authenticated user's own record.  The password hash
// never leaves the repository layer; favorites carries the ids of every
// pet the user has liked.
type profileResp struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Favorites []uint64  `json:"favorites"`
	CreatedAt time.Time `json:"created_at"`
}

// Register: create user and return a session token immediately.  A
// duplicate email yields 409 so clients can prompt for login instead.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	token, err := utils.NewSessionToken(h.Cfg.JWTSecret, uid, h.Cfg.TokenTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusCreated, authResp{
		User:  userPart{ID: uid, Name: req.Name, Email: req.Email},
		Token: tokenPart{Token: token.Token, Expires: token.Exp},
	})
}

// Login: verify credentials and return a fresh session token.  Unknown
// email and wrong password deliberately produce the same response so the
// endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, h.Cfg.TokenTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:  userPart{ID: u.ID, Name: u.Name, Email: u.Email},
		Token: tokenPart{Token: token.Token, Expires: token.Exp},
	})
}

// Profile: return the authenticated user's record without the password
// hash, plus the ids of their favorited pets.
func (h *AuthHandler) Profile(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	favs, err := h.Favorites.ListIDs(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, profileResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Favorites: favs,
		CreatedAt: u.CreatedAt,
	})
}
