package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func invoke(auth echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, auth(next)(c)
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":    float64(7),
		"cargo": "Director",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	c, err := invoke(Auth(testSecret), "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got := c.Get("id"); got != 7 {
		t.Fatalf("expected id 7 in context, got %v", got)
	}
	if got := c.Get("cargo"); got != "Director" {
		t.Fatalf("expected cargo Director in context, got %v", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invoke(Auth(testSecret), "")
	assertUnauthorized(t, err)
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := invoke(Auth(testSecret), "Token abc")
	assertUnauthorized(t, err)
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"id":  float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := invoke(Auth(testSecret), "Bearer "+token)
	assertUnauthorized(t, err)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"id":  float64(1),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	_, err := invoke(Auth(testSecret), "Bearer "+token)
	assertUnauthorized(t, err)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}
