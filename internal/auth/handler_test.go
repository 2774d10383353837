package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ubermelon/shop-backend/internal/session"
)

func makeAppWithAuthHandler(t *testing.T, handler *Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(session.Middleware(session.NewMemoryStore(0), []byte("test-secret")))
	handler.RegisterRoutes(app)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string, cookie *http.Cookie) (*http.Response, *http.Cookie) {
	t.Helper()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST /login failed: %v", err)
	}
	for _, ck := range res.Cookies() {
		if ck.Name == session.CookieName {
			return res, ck
		}
	}
	return res, cookie
}

func TestLoginLogoutFlow(t *testing.T) {
	handler := NewHandler(NewService(testIdentity(t)))
	app := makeAppWithAuthHandler(t, handler)

	res, ck := postLogin(t, app, `{"email":"ada@example.com","password":"analytical"}`, nil)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for valid login, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Login successful!") {
		t.Fatalf("expected login confirmation, got %s", string(body))
	}

	req := httptest.NewRequest("GET", "/logout", nil)
	req.AddCookie(ck)
	res2, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET /logout failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for logout, got %d", res2.StatusCode)
	}

	// second logout on the same session is an error
	req3 := httptest.NewRequest("GET", "/logout", nil)
	req3.AddCookie(ck)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for logout while anonymous, got %d", res3.StatusCode)
	}
}

func TestLoginRouteErrors(t *testing.T) {
	handler := NewHandler(NewService(testIdentity(t)))
	app := makeAppWithAuthHandler(t, handler)

	res, _ := postLogin(t, app, `{"email":"nobody@example.com","password":"x"}`, nil)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "No customer with that email found") {
		t.Fatalf("unexpected body for unknown email: %s", string(body))
	}

	res2, _ := postLogin(t, app, `{"email":"ada@example.com","password":"wrong"}`, nil)
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", res2.StatusCode)
	}
	body2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(body2), "Incorrect password") {
		t.Fatalf("unexpected body for wrong password: %s", string(body2))
	}
}
