package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/telegram"
	"github.com/amirsalamaty/camera-pricer-bot/internal/utility"
)

// handleCommand route các slash command.
// Kiểm tra quyền được thực hiện trong từng handler — mỗi command có mức quyền riêng.
func (b *Bot) handleCommand(ctx context.Context, msg *telegram.Message, text string) {
	parts := strings.Fields(text)
	cmd := strings.ToLower(parts[0])

	// Telegram cho phép dạng /cmd@botname trong group
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}

	switch cmd {
	case "/start":
		b.cmdStart(ctx, msg)
	case "/help":
		b.cmdHelp(ctx, msg)
	case "/products":
		b.cmdProducts(ctx, msg)
	case "/settings":
		b.cmdSettings(ctx, msg)
	case "/stats":
		b.cmdStats(ctx, msg)
	case "/admin":
		b.cmdAdmin(ctx, msg)
	case "/users":
		b.cmdUsers(ctx, msg)
	case "/adduser":
		b.cmdAddUser(ctx, msg, text)
	case "/removeuser":
		b.cmdRemoveUser(ctx, msg, text)
	case "/addproduct":
		b.cmdAddProduct(ctx, msg, text)
	case "/delproduct":
		b.cmdDelProduct(ctx, msg, text)
	default:
		// Command lạ đối xử như free text — giữ hành vi cũ của bot
		b.handleFreeText(ctx, msg, text)
	}
}

// cmdStart gửi lời chào kèm menu chính
func (b *Bot) cmdStart(ctx context.Context, msg *telegram.Message) {
	chatID := msg.Chat.ID
	if !b.authSvc.IsAllowed(chatID) {
		b.denyAccess(ctx, msg)
		return
	}

	level := "👤 سطح: کاربر عادی"
	if b.authSvc.IsAdmin(chatID) {
		level = "👑 سطح: ادمین"
	}

	welcome := fmt.Sprintf(
		"🎉 *خوش آمدید به ربات قیمت‌گذاری دوربین!*\n\n👤 کاربر: `%d`\n%s\n\n📌 *دستورات سریع:*\n• برای محاسبه قیمت، نرخ دلار را ارسال کنید\n• از دکمه‌های زیر استفاده کنید\n\n⏰ آخرین بروزرسانی: %s",
		chatID, level, time.Now().Format("2006-01-02 15:04"),
	)
	b.replyWithKeyboard(ctx, msg, welcome, mainKeyboard())
}

// cmdHelp gửi راهنمای دستورات
func (b *Bot) cmdHelp(ctx context.Context, msg *telegram.Message) {
	if !b.authSvc.IsAllowed(msg.Chat.ID) {
		return
	}

	help := "📖 *راهنمای کامل ربات*\n\n" +
		"*🔢 محاسبه قیمت:*\nفقط نرخ دلار را ارسال کنید (مثلاً: 58500)\n\n" +
		"*📋 دستورات:*\n/start - شروع مجدد\n/help - راهنما\n/products - لیست محصولات\n/settings - تنظیمات\n/stats - آمار\n\n" +
		"*👑 دستورات ادمین:*\n/admin - پنل مدیریت\n/adduser [ID] - افزودن کاربر\n/removeuser [ID] - حذف کاربر\n/addproduct [نام] [قیمت] - افزودن محصول\n/delproduct [نام] - حذف محصول\n\n" +
		"*📊 فرمول محاسبه:*\n`(قیمت_دلار × ۳.۶۷ × نرخ_تبدیل) + ۲۰,۰۰۰,۰۰۰`"
	b.reply(ctx, msg, help)
}

// cmdProducts liệt kê danh sách sản phẩm
func (b *Bot) cmdProducts(ctx context.Context, msg *telegram.Message) {
	if !b.authSvc.IsAllowed(msg.Chat.ID) {
		return
	}

	c := b.catalogSvc.Load()
	if len(c) == 0 {
		b.reply(ctx, msg, common.MsgNoProducts)
		return
	}

	var sb strings.Builder
	sb.WriteString("📦 *لیست محصولات:*\n\n")
	for i, name := range c.Names() {
		fmt.Fprintf(&sb, "%d. *%s* → $%s\n", i+1, name, utility.FormatThousands(c[name]))
	}
	fmt.Fprintf(&sb, "\n📊 تعداد کل: %d محصول", len(c))
	b.reply(ctx, msg, sb.String())
}

// cmdSettings hiển thị cài đặt hiện tại; admin thấy thêm bàn phím chỉnh sửa
func (b *Bot) cmdSettings(ctx context.Context, msg *telegram.Message) {
	chatID := msg.Chat.ID
	if !b.authSvc.IsAllowed(chatID) {
		return
	}

	cfg := b.settingsSvc.Load()
	text := fmt.Sprintf(
		"⚙️ *تنظیمات فعلی:*\n\n💵 نرخ درهم: `%s`\n💰 مارکاپ پایه: `%s` تومان\n📊 درصدها: `%s`\n🔢 گرد کردن: `%d` رقم",
		utility.FormatFloat(cfg.DirhamRate),
		utility.FormatThousands(cfg.BaseMarkup),
		formatPercentages(cfg.Percentages),
		abs(cfg.RoundTo),
	)

	if b.authSvc.IsAdmin(chatID) {
		b.replyWithKeyboard(ctx, msg, text, settingsKeyboard())
		return
	}
	b.reply(ctx, msg, text)
}

// cmdStats hiển thị thống kê bot
func (b *Bot) cmdStats(ctx context.Context, msg *telegram.Message) {
	if !b.authSvc.IsAllowed(msg.Chat.ID) {
		return
	}

	c := b.catalogSvc.Load()
	users := b.authSvc.Load()
	text := fmt.Sprintf(
		"📈 *آمار ربات:*\n\n📦 تعداد محصولات: %d\n👥 کاربران مجاز: %d\n👑 ادمین‌ها: %d\n⏰ زمان سرور: %s",
		len(c), len(users.Allowed), len(users.Admins), time.Now().Format("2006-01-02 15:04:05"),
	)
	b.reply(ctx, msg, text)
}

// cmdAdmin mở panel quản trị
func (b *Bot) cmdAdmin(ctx context.Context, msg *telegram.Message) {
	if !b.authSvc.IsAdmin(msg.Chat.ID) {
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}
	b.replyWithKeyboard(ctx, msg, "👑 *پنل مدیریت*\nیک گزینه انتخاب کنید:", adminKeyboard())
}

// cmdUsers liệt kê người dùng (chỉ admin)
func (b *Bot) cmdUsers(ctx context.Context, msg *telegram.Message) {
	if !b.authSvc.IsAdmin(msg.Chat.ID) {
		return
	}

	users := b.authSvc.Load()
	var sb strings.Builder
	sb.WriteString("👥 *لیست کاربران:*\n\n👑 *ادمین‌ها:*\n")
	for _, id := range users.Admins {
		fmt.Fprintf(&sb, "  • `%d`\n", id)
	}
	sb.WriteString("\n👤 *کاربران عادی:*\n")
	for _, id := range users.Allowed {
		if !users.IsAdmin(id) {
			fmt.Fprintf(&sb, "  • `%d`\n", id)
		}
	}
	b.reply(ctx, msg, sb.String())
}

// cmdAddUser xử lý "/adduser [ID]"
func (b *Bot) cmdAddUser(ctx context.Context, msg *telegram.Message, text string) {
	if !b.authSvc.IsAdmin(msg.Chat.ID) {
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}

	parts := strings.Fields(text)
	if len(parts) < 2 {
		b.reply(ctx, msg, "❌ فرمت صحیح: `/adduser [ID]`")
		return
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		b.reply(ctx, msg, common.MsgIDMustBeNumber)
		return
	}

	if err := b.authSvc.AddUser(id); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			b.reply(ctx, msg, common.MsgUserAlreadyAdded)
			return
		}
		b.reply(ctx, msg, common.MsgSaveFailed)
		return
	}

	logger.LogAdminAction("user_add", msg.Chat.ID, map[string]interface{}{"userId": id})
	b.reply(ctx, msg, fmt.Sprintf("✅ کاربر `%d` با موفقیت اضافه شد.", id))
}

// cmdRemoveUser xử lý "/removeuser [ID]".
// Chat id đang là admin bị từ chối cứng — danh sách giữ nguyên.
func (b *Bot) cmdRemoveUser(ctx context.Context, msg *telegram.Message, text string) {
	if !b.authSvc.IsAdmin(msg.Chat.ID) {
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}

	parts := strings.Fields(text)
	if len(parts) < 2 {
		b.reply(ctx, msg, "❌ فرمت صحیح: `/removeuser [ID]`")
		return
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		b.reply(ctx, msg, common.MsgIDMustBeNumber)
		return
	}

	if err := b.authSvc.RemoveUser(id); err != nil {
		switch {
		case errors.Is(err, common.ErrIsAdmin):
			b.reply(ctx, msg, common.MsgCannotRemoveAdmin)
		case errors.Is(err, common.ErrNotFound):
			b.reply(ctx, msg, common.MsgUserNotInList)
		default:
			b.reply(ctx, msg, common.MsgSaveFailed)
		}
		return
	}

	logger.LogAdminAction("user_remove", msg.Chat.ID, map[string]interface{}{"userId": id})
	b.reply(ctx, msg, fmt.Sprintf("✅ کاربر `%d` حذف شد.", id))
}

// cmdAddProduct xử lý "/addproduct [نام] [قیمت]".
// Tên sản phẩm dùng "_" thay khoảng trắng trong command.
func (b *Bot) cmdAddProduct(ctx context.Context, msg *telegram.Message, text string) {
	if !b.authSvc.IsAdmin(msg.Chat.ID) {
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}

	parts := strings.SplitN(text, " ", 3)
	if len(parts) < 3 {
		b.reply(ctx, msg, "❌ فرمت صحیح: `/addproduct [نام] [قیمت]`\nمثال: `/addproduct R5_BODY 2500`")
		return
	}

	name := strings.ReplaceAll(parts[1], "_", " ")
	price, err := utility.ParseNumber(parts[2])
	if err != nil {
		b.reply(ctx, msg, common.MsgPriceMustBeNumber)
		return
	}

	if err := b.catalogSvc.Add(name, price); err != nil {
		b.reply(ctx, msg, common.MsgSaveFailed)
		return
	}

	logger.LogAdminAction("product_add", msg.Chat.ID, map[string]interface{}{"product": name, "price": price})
	b.reply(ctx, msg, fmt.Sprintf("✅ محصول اضافه شد:\n*%s* → $%s", name, utility.FormatThousands(price)))
}

// cmdDelProduct xử lý "/delproduct [نام]"
func (b *Bot) cmdDelProduct(ctx context.Context, msg *telegram.Message, text string) {
	if !b.authSvc.IsAdmin(msg.Chat.ID) {
		b.reply(ctx, msg, common.MsgAdminsOnly)
		return
	}

	parts := strings.SplitN(text, " ", 2)
	if len(parts) < 2 {
		b.reply(ctx, msg, "❌ فرمت صحیح: `/delproduct [نام]`")
		return
	}

	name := strings.ReplaceAll(strings.TrimSpace(parts[1]), "_", " ")
	if err := b.catalogSvc.Delete(name); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			b.reply(ctx, msg, fmt.Sprintf(common.MsgProductNotFoundFmt, name))
			return
		}
		b.reply(ctx, msg, common.MsgSaveFailed)
		return
	}

	logger.LogAdminAction("product_delete", msg.Chat.ID, map[string]interface{}{"product": name})
	b.reply(ctx, msg, fmt.Sprintf("✅ محصول *%s* حذف شد.", name))
}

// formatPercentages format danh sách phần trăm cho hiển thị ("3%, 4%, 5%")
func formatPercentages(percentages []float64) string {
	parts := make([]string, 0, len(percentages))
	for _, p := range percentages {
		parts = append(parts, fmt.Sprintf("%d%%", int(p*100)))
	}
	return strings.Join(parts, ", ")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
