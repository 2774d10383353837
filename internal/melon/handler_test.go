package melon

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestMelonRoutes(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository(seedMelons(t))))
	app := fiber.New()
	handler.RegisterRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/melons", nil))
	if err != nil {
		t.Fatalf("GET /melons failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for /melons, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Muskmelon") || !strings.Contains(string(body), "Crenshaw") {
		t.Fatalf("expected full catalog in response, got %s", string(body))
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/melon/casaba", nil))
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for known melon, got %d", res2.StatusCode)
	}
	body2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(body2), "Casaba") {
		t.Fatalf("expected melon detail, got %s", string(body2))
	}

	res3, _ := app.Test(httptest.NewRequest("GET", "/melon/durian", nil))
	if res3.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown melon, got %d", res3.StatusCode)
	}
}
