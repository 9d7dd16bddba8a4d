package bot

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/telegram"
	"github.com/amirsalamaty/camera-pricer-bot/internal/utility"
)

// WebhookHandler nhận update từ Telegram qua HTTP thay vì long polling
type WebhookHandler struct {
	bot *Bot
}

// NewWebhookHandler tạo mới WebhookHandler
func NewWebhookHandler(b *Bot) *WebhookHandler {
	return &WebhookHandler{bot: b}
}

// HandleUpdate nhận một update từ Telegram.
// Luôn trả 200 ngay — Telegram sẽ retry update khi nhận status khác,
// còn lỗi xử lý phía trong là việc của bot, không phải của transport.
func (h *WebhookHandler) HandleUpdate(c fiber.Ctx) error {
	log := logger.GetAppLogger()

	var update telegram.Update
	if err := json.Unmarshal(c.Body(), &update); err != nil {
		log.WithError(err).Warn("📱 [WEBHOOK] Body không parse được, bỏ qua update")
		return c.SendStatus(fiber.StatusOK)
	}

	ctx := c.UserContext()
	utility.GoProtect(func() {
		h.bot.HandleUpdate(ctx, update)
	})

	return c.SendStatus(fiber.StatusOK)
}

// HandleHealth là health check endpoint
func (h *WebhookHandler) HandleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
