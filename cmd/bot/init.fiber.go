package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/amirsalamaty/camera-pricer-bot/internal/bot"
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber cho webhook mode với các middleware cần thiết
func InitFiberApp(handler *bot.WebhookHandler, webhookPath string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "Camera Pricer Bot",
		ServerHeader:  "Camera Pricer Bot",
		StrictRouting: true, // /foo và /foo/ là khác nhau
		CaseSensitive: true, // /Foo và /foo là khác nhau

		BodyLimit:    1 * 1024 * 1024, // Update từ Telegram luôn nhỏ, 1MB là quá đủ
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			logger.GetAppLogger().WithFields(map[string]interface{}{
				"code":    code,
				"message": message,
				"path":    c.Path(),
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    code,
				"message": message,
				"status":  "error",
			})
		},
	})

	// Request ID Middleware - Tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// Recover Middleware - Panic trong handler không được làm sập server
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"panic": e,
				"path":  c.Path(),
			}).Error("Panic recovered")
		},
	}))

	// Path webhook chứa bot token — Telegram khuyến nghị như vậy để
	// request lạ không giả được update
	app.Post(webhookPath, handler.HandleUpdate)
	app.Get("/health", handler.HandleHealth)

	return app
}
