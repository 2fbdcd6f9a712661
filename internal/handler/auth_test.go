package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sivaharine/pet-Adoption/internal/config"
	"github.com/sivaharine/pet-Adoption/internal/repository"
	"github.com/sivaharine/pet-Adoption/internal/utils"
)

var testCfg = config.Config{
	Env:           "test",
	JWTSecret:     "test-secret",
	TokenTTLHours: 24,
	BcryptCost:    4,
}

func newAuthEnv(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAuthHandler(testCfg, repository.NewUserRepo(db), repository.NewFavoriteRepo(db)), mock
}

// jsonCtx builds an echo context carrying a JSON body.
func jsonCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Success(t *testing.T) {
	h, mock := newAuthEnv(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(5, 1))

	c, rec := jsonCtx(http.MethodPost, "/v1/users/register",
		`{"name":"Alice","email":"Alice@X.com","password":"hunter2"}`)
	require.NoError(t, h.Register(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `"token"`)
	require.Contains(t, body, `"alice@x.com"`)
	require.NotContains(t, body, "password")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_TokenIsValid(t *testing.T) {
	h, mock := newAuthEnv(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(5, 1))

	c, rec := jsonCtx(http.MethodPost, "/v1/users/register",
		`{"name":"Alice","email":"alice@x.com","password":"hunter2"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token struct {
			Token string `json:"token"`
		} `json:"token"`
	}
	decodeJSON(t, rec, &resp)
	uid, err := utils.ParseSessionToken(testCfg.JWTSecret, resp.Token.Token)
	require.NoError(t, err)
	require.Equal(t, uint64(5), uid)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h, mock := newAuthEnv(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errDuplicate{})

	c, rec := jsonCtx(http.MethodPost, "/v1/users/register",
		`{"name":"Alice","email":"alice@x.com","password":"hunter2"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InsertFailure(t *testing.T) {
	h, mock := newAuthEnv(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(sqlmock.ErrCancelled)

	c, rec := jsonCtx(http.MethodPost, "/v1/users/register",
		`{"name":"Alice","email":"alice@x.com","password":"hunter2"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// errDuplicate mimics the text of a MySQL duplicate-key error.
type errDuplicate struct{}

func (errDuplicate) Error() string {
	return "Error 1062 (23000): Duplicate entry 'alice@x.com' for key 'users.email'"
}

func TestRegister_MissingFields(t *testing.T) {
	h, _ := newAuthEnv(t)
	for _, body := range []string{
		`{}`,
		`{"name":"Alice"}`,
		`{"name":"Alice","email":"alice@x.com"}`,
		`{"email":"alice@x.com","password":"hunter2"}`,
	} {
		c, rec := jsonCtx(http.MethodPost, "/v1/users/register", body)
		require.NoError(t, h.Register(c))
		require.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
	}
}

func TestLogin_DoesNotEnumerateAccounts(t *testing.T) {
	hash, err := utils.HashPassword("correct-password", 4)
	require.NoError(t, err)

	// Unknown email.
	h1, mock1 := newAuthEnv(t)
	mock1.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WillReturnError(sql.ErrNoRows)
	c1, rec1 := jsonCtx(http.MethodPost, "/v1/users/login",
		`{"email":"ghost@x.com","password":"whatever"}`)
	require.NoError(t, h1.Login(c1))

	// Known email, wrong password.
	h2, mock2 := newAuthEnv(t)
	mock2.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WillReturnRows(authUserRow(5, "alice@x.com", hash))
	c2, rec2 := jsonCtx(http.MethodPost, "/v1/users/login",
		`{"email":"alice@x.com","password":"wrong-password"}`)
	require.NoError(t, h2.Login(c2))

	// Both failures must be indistinguishable to the caller.
	require.Equal(t, http.StatusUnauthorized, rec1.Code)
	require.Equal(t, http.StatusUnauthorized, rec2.Code)
	require.JSONEq(t, rec1.Body.String(), rec2.Body.String())
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("correct-password", 4)
	require.NoError(t, err)

	h, mock := newAuthEnv(t)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email=").
		WillReturnRows(authUserRow(5, "alice@x.com", hash))

	c, rec := jsonCtx(http.MethodPost, "/v1/users/login",
		`{"email":"alice@x.com","password":"correct-password"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token struct {
			Token string `json:"token"`
		} `json:"token"`
	}
	decodeJSON(t, rec, &resp)
	uid, err := utils.ParseSessionToken(testCfg.JWTSecret, resp.Token.Token)
	require.NoError(t, err)
	require.Equal(t, uint64(5), uid)
}

func TestProfile_OmitsPasswordHash(t *testing.T) {
	h, mock := newAuthEnv(t)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id=").
		WillReturnRows(authUserRow(5, "alice@x.com", "super-secret-hash"))
	mock.ExpectQuery("SELECT pet_id FROM favorites").
		WillReturnRows(sqlmock.NewRows([]string{"pet_id"}).AddRow(7))

	c, rec := jsonCtx(http.MethodGet, "/v1/users/profile", "")
	c.Set("user_id", uint64(5))
	require.NoError(t, h.Profile(c))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "super-secret-hash")
	require.Contains(t, rec.Body.String(), `"favorites":[7]`)
}

func TestProfile_Unauthenticated(t *testing.T) {
	h, _ := newAuthEnv(t)
	c, rec := jsonCtx(http.MethodGet, "/v1/users/profile", "")
	require.NoError(t, h.Profile(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func authUserRow(id uint64, email, hash string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(id, "Alice", email, hash, now, now)
}
