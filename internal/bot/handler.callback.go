package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/session"
	"github.com/amirsalamaty/camera-pricer-bot/internal/telegram"
	"github.com/amirsalamaty/camera-pricer-bot/internal/utility"
)

// handleCallback xử lý mọi callback từ inline keyboard.
// Toàn bộ inline button nằm trong các panel admin nên chặn quyền ở một chỗ.
func (b *Bot) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	if !b.authSvc.IsAdmin(chatID) {
		b.answerCallback(ctx, cb.ID, common.MsgCallbackDenied)
		return
	}

	// Ack trước để nút hết trạng thái loading, kể cả khi xử lý phía sau chậm
	b.answerCallback(ctx, cb.ID, "")

	data := cb.Data
	switch {
	case data == cbAddProduct:
		b.sessions.Set(chatID, session.PendingOp{Step: session.StepAddingProduct})
		b.editPanel(ctx, cb, "➕ *افزودن محصول*\n\nنام و قیمت را با `|` جدا کنید:\nمثال: `R5 BODY | 2500`", nil)

	case data == cbEditProduct:
		c := b.catalogSvc.Load()
		if len(c) == 0 {
			b.editPanel(ctx, cb, common.MsgNoProducts, nil)
			return
		}
		kb := productPickKeyboard(c, cbPrefixEdit, "")
		b.editPanel(ctx, cb, "✏️ *ویرایش محصول*\nمحصول مورد نظر را انتخاب کنید:", &kb)

	case data == cbDeleteProduct:
		c := b.catalogSvc.Load()
		if len(c) == 0 {
			b.editPanel(ctx, cb, common.MsgNoProducts, nil)
			return
		}
		kb := productPickKeyboard(c, cbPrefixDel, "🗑️ ")
		b.editPanel(ctx, cb, "🗑️ *حذف محصول*\nمحصول مورد نظر را انتخاب کنید:", &kb)

	case data == cbManageUsers:
		b.showManageUsers(ctx, cb)

	case data == cbAdvancedSettings:
		kb := settingsKeyboard()
		b.editPanel(ctx, cb, "⚙️ *تنظیمات پیشرفته*\nیک گزینه انتخاب کنید:", &kb)

	case data == cbSetDirham:
		b.sessions.Set(chatID, session.PendingOp{Step: session.StepSettingDirham})
		cfg := b.settingsSvc.Load()
		b.editPanel(ctx, cb, fmt.Sprintf("💵 نرخ درهم فعلی: `%s`\n\nنرخ جدید را ارسال کنید:",
			utility.FormatFloat(cfg.DirhamRate)), nil)

	case data == cbSetMarkup:
		b.sessions.Set(chatID, session.PendingOp{Step: session.StepSettingMarkup})
		cfg := b.settingsSvc.Load()
		b.editPanel(ctx, cb, fmt.Sprintf("💰 مارکاپ پایه فعلی: `%s` تومان\n\nمقدار جدید را ارسال کنید:",
			utility.FormatThousands(cfg.BaseMarkup)), nil)

	case data == cbSetPercentages:
		b.sessions.Set(chatID, session.PendingOp{Step: session.StepSettingPercentages})
		cfg := b.settingsSvc.Load()
		b.editPanel(ctx, cb, fmt.Sprintf("📊 درصدهای فعلی: `%s`\n\nلیست جدید را با کاما جدا کنید:\nمثال: `3, 4, 5, 6, 10`",
			formatPercentages(cfg.Percentages)), nil)

	case data == cbResetDefaults:
		kb := resetConfirmKeyboard()
		b.editPanel(ctx, cb, "⚠️ *هشدار!*\n\nتمام محصولات و تنظیمات به حالت پیش‌فرض برمی‌گردند.\nادامه می‌دهید؟", &kb)

	case data == cbConfirmReset:
		b.doReset(ctx, cb)

	case data == cbBackAdmin:
		b.sessions.Clear(chatID)
		kb := adminKeyboard()
		b.editPanel(ctx, cb, "👑 *پنل مدیریت*\nیک گزینه انتخاب کنید:", &kb)

	case data == cbBackMain:
		b.sessions.Clear(chatID)
		b.editPanel(ctx, cb, "🏠 به منوی اصلی بازگشتید.", nil)

	case strings.HasPrefix(data, cbPrefixDel):
		b.doDeleteProduct(ctx, cb, strings.TrimPrefix(data, cbPrefixDel))

	case strings.HasPrefix(data, cbPrefixEdit):
		b.startEditProduct(ctx, cb, strings.TrimPrefix(data, cbPrefixEdit))

	default:
		logger.GetAppLogger().WithField("data", data).Warn("🤖 [BOT] Callback data không nhận dạng được")
	}
}

// startEditProduct bắt đầu flow sửa giá cho một sản phẩm đã chọn
func (b *Bot) startEditProduct(ctx context.Context, cb *telegram.CallbackQuery, name string) {
	chatID := cb.Message.Chat.ID
	price, ok := b.catalogSvc.Get(name)
	if !ok {
		b.editPanel(ctx, cb, fmt.Sprintf(common.MsgProductNotFoundFmt, name), nil)
		return
	}

	b.sessions.Set(chatID, session.PendingOp{Step: session.StepEditingProduct, Product: name})
	b.editPanel(ctx, cb, fmt.Sprintf("✏️ *%s*\nقیمت فعلی: $%s\n\nقیمت جدید را ارسال کنید:",
		name, utility.FormatThousands(price)), nil)
}

// doDeleteProduct xóa sản phẩm ngay khi nút được bấm (danh sách đã hiện tên)
func (b *Bot) doDeleteProduct(ctx context.Context, cb *telegram.CallbackQuery, name string) {
	chatID := cb.Message.Chat.ID
	if err := b.catalogSvc.Delete(name); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			b.editPanel(ctx, cb, fmt.Sprintf(common.MsgProductNotFoundFmt, name), nil)
			return
		}
		b.editPanel(ctx, cb, common.MsgSaveFailed, nil)
		return
	}

	logger.LogAdminAction("product_delete", chatID, map[string]interface{}{"product": name})
	b.editPanel(ctx, cb, fmt.Sprintf("✅ محصول *%s* حذف شد.", name), nil)
}

// showManageUsers hiển thị راهنمای quản lý người dùng kèm danh sách hiện tại
func (b *Bot) showManageUsers(ctx context.Context, cb *telegram.CallbackQuery) {
	users := b.authSvc.Load()

	var sb strings.Builder
	sb.WriteString("👥 *مدیریت کاربران*\n\n")
	fmt.Fprintf(&sb, "👑 ادمین‌ها: %d\n👤 کاربران مجاز: %d\n\n", len(users.Admins), len(users.Allowed))
	sb.WriteString("*دستورات:*\n`/adduser [ID]` - افزودن کاربر\n`/removeuser [ID]` - حذف کاربر\n`/users` - لیست کامل")

	kb := telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{{Text: "🔙 بازگشت", CallbackData: cbBackAdmin}},
		},
	}
	b.editPanel(ctx, cb, sb.String(), &kb)
}

// doReset ghi đè cả ba record về mặc định sau khi admin xác nhận
func (b *Bot) doReset(ctx context.Context, cb *telegram.CallbackQuery) {
	chatID := cb.Message.Chat.ID

	if err := b.catalogSvc.Reset(); err != nil {
		b.editPanel(ctx, cb, common.MsgSaveFailed, nil)
		return
	}
	if err := b.settingsSvc.Reset(); err != nil {
		b.editPanel(ctx, cb, common.MsgSaveFailed, nil)
		return
	}

	logger.LogAdminAction("reset_defaults", chatID, nil)
	b.editPanel(ctx, cb, "✅ تمام محصولات و تنظیمات به حالت پیش‌فرض بازگشت.", nil)
}

// editPanel sửa message của panel tại chỗ thay vì gửi message mới —
// giữ hội thoại gọn khi admin điều hướng qua lại giữa các menu
func (b *Bot) editPanel(ctx context.Context, cb *telegram.CallbackQuery, text string, markup *telegram.InlineKeyboardMarkup) {
	err := b.tg.EditMessageText(ctx, telegram.EditMessageTextParams{
		ChatID:      cb.Message.Chat.ID,
		MessageID:   cb.Message.MessageID,
		Text:        text,
		ParseMode:   "Markdown",
		ReplyMarkup: markup,
	})
	if err != nil {
		logger.GetAppLogger().WithError(err).WithField("chatId", cb.Message.Chat.ID).
			Error("🤖 [BOT] Không edit được panel message")
	}
}

// answerCallback ack một callback query, lỗi chỉ log
func (b *Bot) answerCallback(ctx context.Context, callbackID, text string) {
	if err := b.tg.AnswerCallbackQuery(ctx, callbackID, text); err != nil {
		logger.GetAppLogger().WithError(err).Error("🤖 [BOT] Không answer được callback query")
	}
}
