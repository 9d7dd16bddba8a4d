package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/pricing"
	"github.com/amirsalamaty/camera-pricer-bot/internal/session"
	"github.com/amirsalamaty/camera-pricer-bot/internal/telegram"
	"github.com/amirsalamaty/camera-pricer-bot/internal/utility"
)

// isMenuButton kiểm tra text có phải là một nút của menu chính không
func (b *Bot) isMenuButton(text string) bool {
	switch text {
	case common.BtnProducts, common.BtnCalculate, common.BtnSettings, common.BtnStats, common.BtnHelp:
		return true
	}
	return false
}

// handleMenuButton xử lý các nút menu chính.
// Nút menu tương đương command: cũng hủy flow đang chờ.
func (b *Bot) handleMenuButton(ctx context.Context, msg *telegram.Message, text string) {
	chatID := msg.Chat.ID
	if !b.authSvc.IsAllowed(chatID) {
		b.denyAccess(ctx, msg)
		return
	}
	b.sessions.Clear(chatID)

	switch text {
	case common.BtnProducts:
		b.cmdProducts(ctx, msg)
	case common.BtnCalculate:
		b.sessions.Set(chatID, session.PendingOp{Step: session.StepWaitingRate})
		b.reply(ctx, msg, common.MsgSendRatePrompt)
	case common.BtnSettings:
		b.cmdSettings(ctx, msg)
	case common.BtnStats:
		b.cmdStats(ctx, msg)
	case common.BtnHelp:
		b.cmdHelp(ctx, msg)
	}
}

// handleFreeText diễn giải text tự do theo trạng thái đang chờ của requester.
// Không có flow đang chờ thì text dạng số được hiểu là tỷ giá — tính bảng giá luôn.
func (b *Bot) handleFreeText(ctx context.Context, msg *telegram.Message, text string) {
	chatID := msg.Chat.ID
	if !b.authSvc.IsAllowed(chatID) {
		b.denyAccess(ctx, msg)
		return
	}

	op := b.sessions.Get(chatID)
	switch op.Step {
	case session.StepAddingProduct:
		b.finishAddProduct(ctx, msg, text)
	case session.StepEditingProduct:
		b.finishEditProduct(ctx, msg, op.Product, text)
	case session.StepSettingDirham:
		b.finishSetDirham(ctx, msg, text)
	case session.StepSettingMarkup:
		b.finishSetMarkup(ctx, msg, text)
	case session.StepSettingPercentages:
		b.finishSetPercentages(ctx, msg, text)
	default:
		// StepNone và StepWaitingRate cùng một nhánh: số là tỷ giá, còn lại là
		// message không hiểu được
		if rate, err := utility.ParseNumber(text); err == nil {
			b.sessions.Clear(chatID)
			b.sendPriceTable(ctx, msg, rate)
			return
		}
		if op.Step == session.StepWaitingRate {
			b.reply(ctx, msg, common.MsgRateMustBeNumber)
			return
		}
		b.replyWithKeyboard(ctx, msg, common.MsgInvalidMessage, mainKeyboard())
	}
}

// sendPriceTable tính bảng giá với một tỷ giá và gửi (cắt chunk nếu dài)
func (b *Bot) sendPriceTable(ctx context.Context, msg *telegram.Message, rate float64) {
	chatID := msg.Chat.ID
	c := b.catalogSvc.Load()
	cfg := b.settingsSvc.Load()

	quotes, err := pricing.Quote(c, cfg, rate)
	if err != nil {
		b.reply(ctx, msg, common.MsgNoProducts)
		return
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"chatId":   chatID,
		"rate":     rate,
		"products": len(quotes),
	}).Info("🤖 [BOT] Tính bảng giá")

	chunks := pricing.RenderChunks(quotes, cfg, rate, time.Now())
	if err := b.tg.SendChunks(ctx, chatID, chunks, "Markdown"); err != nil {
		logger.GetAppLogger().WithError(err).WithField("chatId", chatID).
			Error("🤖 [BOT] Không gửi được bảng giá")
	}
}

// finishAddProduct hoàn tất flow thêm sản phẩm: input dạng "tên | giá"
func (b *Bot) finishAddProduct(ctx context.Context, msg *telegram.Message, text string) {
	chatID := msg.Chat.ID
	if !b.authSvc.IsAdmin(chatID) {
		b.sessions.Clear(chatID)
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}

	parts := strings.Split(text, "|")
	if len(parts) != 2 {
		// Session giữ nguyên — người dùng được gửi lại đúng format
		b.reply(ctx, msg, common.MsgInvalidPipeFormat)
		return
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		b.reply(ctx, msg, common.MsgInvalidPipeFormat)
		return
	}

	price, err := utility.ParseNumber(parts[1])
	if err != nil {
		b.reply(ctx, msg, common.MsgPriceMustBeNumber)
		return
	}

	b.sessions.Clear(chatID)
	if err := b.catalogSvc.Add(name, price); err != nil {
		b.reply(ctx, msg, common.MsgSaveFailed)
		return
	}

	logger.LogAdminAction("product_add", chatID, map[string]interface{}{"product": name, "price": price})
	b.reply(ctx, msg, fmt.Sprintf("✅ محصول اضافه شد:\n*%s* → $%s", name, utility.FormatThousands(price)))
}

// finishEditProduct hoàn tất flow sửa giá: input là giá mới cho sản phẩm đã chọn
func (b *Bot) finishEditProduct(ctx context.Context, msg *telegram.Message, product, text string) {
	chatID := msg.Chat.ID
	if !b.authSvc.IsAdmin(chatID) {
		b.sessions.Clear(chatID)
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}

	price, err := utility.ParseNumber(text)
	if err != nil {
		b.reply(ctx, msg, common.MsgPriceMustBeNumber)
		return
	}

	b.sessions.Clear(chatID)
	oldPrice, err := b.catalogSvc.Edit(product, price)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			b.reply(ctx, msg, fmt.Sprintf(common.MsgProductNotFoundFmt, product))
			return
		}
		b.reply(ctx, msg, common.MsgSaveFailed)
		return
	}

	logger.LogAdminAction("product_edit", chatID, map[string]interface{}{
		"product":  product,
		"oldPrice": oldPrice,
		"newPrice": price,
	})
	b.reply(ctx, msg, fmt.Sprintf("✅ قیمت بروزرسانی شد:\n*%s*: $%s → $%s",
		product, utility.FormatThousands(oldPrice), utility.FormatThousands(price)))
}

// finishSetDirham hoàn tất flow đổi tỷ giá dirham
func (b *Bot) finishSetDirham(ctx context.Context, msg *telegram.Message, text string) {
	chatID := msg.Chat.ID
	if !b.authSvc.IsAdmin(chatID) {
		b.sessions.Clear(chatID)
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}

	rate, err := utility.ParseNumber(text)
	if err != nil {
		b.reply(ctx, msg, common.MsgRateMustBeNumber)
		return
	}

	b.sessions.Clear(chatID)
	if err := b.settingsSvc.SetDirhamRate(rate); err != nil {
		b.reply(ctx, msg, common.MsgSaveFailed)
		return
	}

	logger.LogAdminAction("settings_dirham", chatID, map[string]interface{}{"dirhamRate": rate})
	b.reply(ctx, msg, fmt.Sprintf("✅ نرخ درهم به `%s` تغییر کرد.", utility.FormatFloat(rate)))
}

// finishSetMarkup hoàn tất flow đổi markup cơ bản
func (b *Bot) finishSetMarkup(ctx context.Context, msg *telegram.Message, text string) {
	chatID := msg.Chat.ID
	if !b.authSvc.IsAdmin(chatID) {
		b.sessions.Clear(chatID)
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}

	markup, err := utility.ParseNumber(text)
	if err != nil {
		b.reply(ctx, msg, common.MsgMarkupMustBeNumber)
		return
	}

	b.sessions.Clear(chatID)
	if err := b.settingsSvc.SetBaseMarkup(markup); err != nil {
		b.reply(ctx, msg, common.MsgSaveFailed)
		return
	}

	logger.LogAdminAction("settings_markup", chatID, map[string]interface{}{"baseMarkup": markup})
	b.reply(ctx, msg, fmt.Sprintf("✅ مارکاپ پایه به `%s` تومان تغییر کرد.", utility.FormatThousands(markup)))
}

// finishSetPercentages hoàn tất flow đổi danh sách phần trăm: input "3, 4, 5, 6, 10"
func (b *Bot) finishSetPercentages(ctx context.Context, msg *telegram.Message, text string) {
	chatID := msg.Chat.ID
	if !b.authSvc.IsAdmin(chatID) {
		b.sessions.Clear(chatID)
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}

	percentages, err := utility.ParsePercentList(text)
	if err != nil {
		b.reply(ctx, msg, common.MsgInvalidPercentList)
		return
	}

	b.sessions.Clear(chatID)
	if err := b.settingsSvc.SetPercentages(percentages); err != nil {
		b.reply(ctx, msg, common.MsgSaveFailed)
		return
	}

	logger.LogAdminAction("settings_percentages", chatID, map[string]interface{}{"percentages": percentages})
	b.reply(ctx, msg, fmt.Sprintf("✅ درصدها به `%s` تغییر کرد.", formatPercentages(percentages)))
}
