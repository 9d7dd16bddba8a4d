package bot

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newWebhookApp(env *testEnv) *fiber.App {
	app := fiber.New()
	handler := NewWebhookHandler(env.bot)
	app.Post("/webhook", handler.HandleUpdate)
	app.Get("/health", handler.HandleHealth)
	return app
}

func TestWebhook_DispatchesUpdate(t *testing.T) {
	env := newTestEnv(t)
	app := newWebhookApp(env)

	body := `{"update_id":1,"message":{"message_id":1,"chat":{"id":111},"text":"58500"}}`
	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("webhook phải trả về 200, nhận được %d", resp.StatusCode)
	}

	if got := env.lastText(t); !strings.Contains(got, "نرخ تبدیل") {
		t.Errorf("update qua webhook phải được xử lý như polling, nhận được %q", got)
	}
}

func TestWebhook_BadBodyStillReturns200(t *testing.T) {
	env := newTestEnv(t)
	app := newWebhookApp(env)

	req := httptest.NewRequest("POST", "/webhook", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	// Trả khác 200 thì Telegram retry mãi cùng một update hỏng
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("body hỏng vẫn phải trả về 200, nhận được %d", resp.StatusCode)
	}
}

func TestWebhook_Health(t *testing.T) {
	env := newTestEnv(t)
	app := newWebhookApp(env)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("app.Test trả về lỗi: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("health check phải trả về 200, nhận được %d", resp.StatusCode)
	}
}
