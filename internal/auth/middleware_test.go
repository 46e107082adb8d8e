package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type recordingSyncer struct {
	userID string
	email  string
	name   string
}

func (r *recordingSyncer) SyncFromJWT(ctx context.Context, userID, email, name string) error {
	r.userID = userID
	r.email = email
	r.name = name
	return nil
}

func newAuthedRequest(t *testing.T, v *JWTValidator, userID string) *http.Request {
	t.Helper()
	token, err := v.Sign(&Claims{
		UserID: userID,
		Email:  "vol@example.com",
		Name:   "Test Volunteer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestMiddleware_Authenticate(t *testing.T) {
	v := NewJWTValidator([]byte("test-key"))
	syncer := &recordingSyncer{}
	m := NewMiddleware(v, syncer)
	e := echo.New()

	req := newAuthedRequest(t, v, "usr_123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *Claims
	next := func(c echo.Context) error {
		seen = GetClaims(c)
		return c.NoContent(http.StatusOK)
	}

	if err := m.Authenticate(next)(c); err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if seen == nil || seen.UserID != "usr_123" {
		t.Fatalf("claims not propagated to handler: %+v", seen)
	}
	if syncer.userID != "usr_123" || syncer.email != "vol@example.com" {
		t.Errorf("syncer not invoked with token identity: %+v", syncer)
	}
}

func TestMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewMiddleware(NewJWTValidator([]byte("test-key")), nil)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler should not run without a token")
		return nil
	})(c)
	if err == nil {
		t.Fatal("expected error for missing header")
	}
	httpErr := err.(*echo.HTTPError)
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
}

func TestMiddleware_Authenticate_NotBearer(t *testing.T) {
	v := NewJWTValidator([]byte("test-key"))
	m := NewMiddleware(v, nil)
	e := echo.New()

	token, err := v.Sign(&Claims{UserID: "usr_123"})
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	// a valid token in the wrong scheme is still rejected
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler should not run without a bearer token")
		return nil
	})(c)
	if err == nil {
		t.Fatal("expected error for non-bearer scheme")
	}
	httpErr := err.(*echo.HTTPError)
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
}

func TestMiddleware_Authenticate_BadToken(t *testing.T) {
	m := NewMiddleware(NewJWTValidator([]byte("test-key")), nil)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	if err == nil {
		t.Fatal("expected error for malformed token")
	}
	httpErr := err.(*echo.HTTPError)
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if _, err := RequireAuth(c); err == nil {
		t.Fatal("expected error without claims in context")
	}

	SetClaimsForTest(c, &Claims{UserID: "usr_123"})
	userID, err := RequireAuth(c)
	if err != nil {
		t.Fatalf("RequireAuth() error = %v", err)
	}
	if userID != "usr_123" {
		t.Errorf("userID = %s, want usr_123", userID)
	}
}
