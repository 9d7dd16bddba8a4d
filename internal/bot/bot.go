// Package bot chứa toàn bộ logic hội thoại: route command, xử lý callback từ
// inline keyboard và diễn giải free text theo trạng thái đang chờ của requester.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirsalamaty/camera-pricer-bot/config"
	"github.com/amirsalamaty/camera-pricer-bot/internal/auth"
	"github.com/amirsalamaty/camera-pricer-bot/internal/catalog"
	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/session"
	"github.com/amirsalamaty/camera-pricer-bot/internal/settings"
	"github.com/amirsalamaty/camera-pricer-bot/internal/telegram"
)

// Bot gom các service và transport lại thành một đơn vị xử lý update.
// Mọi dependency được inject qua NewBot để test được không cần Telegram thật.
type Bot struct {
	cfg         *config.Configuration
	tg          *telegram.Client
	sessions    *session.Store
	authSvc     *auth.Service
	catalogSvc  *catalog.Service
	settingsSvc *settings.Service
}

// NewBot tạo bot với đầy đủ dependencies
func NewBot(cfg *config.Configuration, tg *telegram.Client, sessions *session.Store,
	authSvc *auth.Service, catalogSvc *catalog.Service, settingsSvc *settings.Service) *Bot {
	return &Bot{
		cfg:         cfg,
		tg:          tg,
		sessions:    sessions,
		authSvc:     authSvc,
		catalogSvc:  catalogSvc,
		settingsSvc: settingsSvc,
	}
}

// HandleUpdate phân loại và xử lý một update inbound.
// Đây là entry point chung cho cả polling lẫn webhook mode.
func (b *Bot) HandleUpdate(ctx context.Context, update telegram.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Text != "":
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage route một tin nhắn text: command, nút menu, hoặc free text
func (b *Bot) handleMessage(ctx context.Context, msg *telegram.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if strings.HasPrefix(text, "/") {
		// Command mới hủy flow đang chờ — flow bỏ dở không được phép nuốt
		// một con số không liên quan gửi sau đó
		b.sessions.Clear(chatID)
		b.handleCommand(ctx, msg, text)
		return
	}

	if b.isMenuButton(text) {
		b.handleMenuButton(ctx, msg, text)
		return
	}

	b.handleFreeText(ctx, msg, text)
}

// reply gửi một tin nhắn Markdown trả lời lại message gốc
func (b *Bot) reply(ctx context.Context, msg *telegram.Message, text string) {
	b.send(ctx, telegram.SendMessageParams{
		ChatID:           msg.Chat.ID,
		Text:             text,
		ParseMode:        "Markdown",
		ReplyToMessageID: msg.MessageID,
	})
}

// replyWithKeyboard gửi tin nhắn trả lời kèm bàn phím (inline hoặc reply keyboard)
func (b *Bot) replyWithKeyboard(ctx context.Context, msg *telegram.Message, text string, markup interface{}) {
	b.send(ctx, telegram.SendMessageParams{
		ChatID:           msg.Chat.ID,
		Text:             text,
		ParseMode:        "Markdown",
		ReplyToMessageID: msg.MessageID,
		ReplyMarkup:      markup,
	})
}

// send gửi một message, lỗi transport chỉ log — không có retry per-request
func (b *Bot) send(ctx context.Context, params telegram.SendMessageParams) {
	if err := b.tg.SendMessage(ctx, params); err != nil {
		logger.GetAppLogger().WithError(err).WithField("chatId", params.ChatID).
			Error("🤖 [BOT] Không gửi được message")
	}
}

// denyAccess trả lời người dùng không được phép, kèm chat id để gửi cho admin
func (b *Bot) denyAccess(ctx context.Context, msg *telegram.Message) {
	logger.GetAppLogger().WithField("chatId", msg.Chat.ID).Warn("🤖 [BOT] Truy cập không được phép")
	b.reply(ctx, msg, fmt.Sprintf(common.MsgAccessDeniedFmt, msg.Chat.ID))
}

// SendStartupMessage gửi thông báo khởi động cho tất cả admin.
// Gửi thất bại cho một admin không chặn các admin còn lại.
func (b *Bot) SendStartupMessage(ctx context.Context) {
	log := logger.GetAppLogger()
	users := b.authSvc.Load()
	c := b.catalogSvc.Load()

	text := fmt.Sprintf(
		"🤖 *Bot Started Successfully!*\n\n⏰ Time: `%s`\n📦 Products: %d\n👥 Users: %d\n\n✅ Bot is now online and ready!",
		time.Now().Format("2006-01-02 15:04:05"), len(c), len(users.Allowed),
	)

	for _, adminID := range users.Admins {
		if err := b.tg.SendMessage(ctx, telegram.SendMessageParams{
			ChatID:    adminID,
			Text:      text,
			ParseMode: "Markdown",
		}); err != nil {
			log.WithError(err).WithField("adminId", adminID).Error("🤖 [BOT] Không gửi được thông báo khởi động")
			continue
		}
		log.WithField("adminId", adminID).Info("🤖 [BOT] Đã gửi thông báo khởi động")
	}
}
