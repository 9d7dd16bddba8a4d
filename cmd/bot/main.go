package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/amirsalamaty/camera-pricer-bot/internal/auth"
	"github.com/amirsalamaty/camera-pricer-bot/internal/bot"
	"github.com/amirsalamaty/camera-pricer-bot/internal/catalog"
	"github.com/amirsalamaty/camera-pricer-bot/internal/global"
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/session"
	"github.com/amirsalamaty/camera-pricer-bot/internal/settings"
	"github.com/amirsalamaty/camera-pricer-bot/internal/telegram"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// runPolling chạy bot ở long polling mode (mặc định)
func runPolling(ctx context.Context, b *bot.Bot, tg *telegram.Client) {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	// Webhook cũ (nếu có từ lần chạy trước) phải gỡ trước khi getUpdates hoạt động
	if err := tg.DeleteWebhook(ctx); err != nil {
		log.WithError(err).Warn("📱 [TELEGRAM] Không gỡ được webhook cũ")
	}

	poller := telegram.NewPoller(tg, b.HandleUpdate, cfg.PollTimeout, cfg.PollInterval, cfg.ReconnectDelay)
	log.Info("Starting long polling...")
	poller.Run(ctx)
}

// runWebhook chạy bot ở webhook mode: đăng ký webhook rồi chạy Fiber server
func runWebhook(ctx context.Context, b *bot.Bot, tg *telegram.Client) {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	webhookPath := "/webhook/" + cfg.TelegramBotToken
	if err := tg.SetWebhook(ctx, cfg.WebhookURL+webhookPath); err != nil {
		log.Fatalf("Failed to set webhook: %v", err)
	}
	log.WithField("url", cfg.WebhookURL+webhookPath).Info("Webhook registered")

	app := InitFiberApp(bot.NewWebhookHandler(b), webhookPath)

	// Server dừng khi nhận signal — gỡ webhook để lần chạy polling sau không bị kẹt
	go func() {
		<-ctx.Done()
		if err := tg.DeleteWebhook(context.Background()); err != nil {
			log.WithError(err).Warn("📱 [TELEGRAM] Không gỡ được webhook khi shutdown")
		}
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error shutting down Fiber server")
		}
	}()

	log.WithField("address", cfg.Address).Info("Starting Fiber server...")
	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục và file store
	st := InitGlobal()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData(st)

	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	// Khởi tạo transport và các service
	tg := telegram.NewClient(cfg.TelegramBotToken)
	authSvc := auth.NewService(st, cfg.AdminIDs())
	catalogSvc := catalog.NewService(st)
	settingsSvc := settings.NewService(st)
	b := bot.NewBot(cfg, tg, session.NewStore(), authSvc, catalogSvc, settingsSvc)

	// Context hủy khi nhận SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Xác thực token với Telegram trước khi vào vòng lặp chính
	me, err := tg.GetMe(ctx)
	if err != nil {
		log.Fatalf("Failed to verify bot token: %v", err)
	}
	log.WithFields(map[string]interface{}{
		"botId":    me.ID,
		"username": me.Username,
	}).Info("📱 [TELEGRAM] Bot token verified")

	// Thông báo khởi động cho admin
	b.SendStartupMessage(ctx)

	// WEBHOOK_URL có giá trị thì chạy webhook mode, không thì long polling
	if cfg.WebhookURL != "" {
		runWebhook(ctx, b, tg)
		return
	}
	runPolling(ctx, b, tg)
}
