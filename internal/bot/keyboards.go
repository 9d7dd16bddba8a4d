package bot

import (
	"github.com/amirsalamaty/camera-pricer-bot/internal/catalog"
	"github.com/amirsalamaty/camera-pricer-bot/internal/common"
	"github.com/amirsalamaty/camera-pricer-bot/internal/telegram"
)

// Callback data của các inline button
const (
	cbAddProduct       = "add_product"
	cbEditProduct      = "edit_product"
	cbDeleteProduct    = "delete_product"
	cbManageUsers      = "manage_users"
	cbAdvancedSettings = "advanced_settings"
	cbResetDefaults    = "reset_defaults"
	cbConfirmReset     = "confirm_reset"
	cbSetDirham        = "set_dirham"
	cbSetMarkup        = "set_markup"
	cbSetPercentages   = "set_percentages"
	cbBackAdmin        = "back_admin"
	cbBackMain         = "back_main"

	// Prefix cho callback mang tên sản phẩm
	cbPrefixEdit = "edit_"
	cbPrefixDel  = "del_"
)

// mainKeyboard là menu chính (reply keyboard) cho mọi người dùng được phép
func mainKeyboard() telegram.ReplyKeyboardMarkup {
	return telegram.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]telegram.KeyboardButton{
			{{Text: common.BtnProducts}, {Text: common.BtnCalculate}},
			{{Text: common.BtnSettings}, {Text: common.BtnStats}},
			{{Text: common.BtnHelp}},
		},
	}
}

// adminKeyboard là panel quản trị (inline keyboard)
func adminKeyboard() telegram.InlineKeyboardMarkup {
	return telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{
				{Text: "➕ افزودن محصول", CallbackData: cbAddProduct},
				{Text: "✏️ ویرایش محصول", CallbackData: cbEditProduct},
			},
			{
				{Text: "🗑️ حذف محصول", CallbackData: cbDeleteProduct},
				{Text: "👥 مدیریت کاربران", CallbackData: cbManageUsers},
			},
			{
				{Text: "⚙️ تنظیمات پیشرفته", CallbackData: cbAdvancedSettings},
				{Text: "🔄 ریست به پیش‌فرض", CallbackData: cbResetDefaults},
			},
		},
	}
}

// settingsKeyboard là menu tùy chỉnh cài đặt tính giá (inline keyboard)
func settingsKeyboard() telegram.InlineKeyboardMarkup {
	return telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{{Text: "💵 تغییر نرخ درهم", CallbackData: cbSetDirham}},
			{{Text: "📊 تغییر درصدها", CallbackData: cbSetPercentages}},
			{{Text: "💰 تغییر مارکاپ پایه", CallbackData: cbSetMarkup}},
			{{Text: "🔙 بازگشت", CallbackData: cbBackMain}},
		},
	}
}

// productPickKeyboard dựng bàn phím chọn sản phẩm, mỗi nút mang prefix + tên sản phẩm.
// labelPrefix thêm trước tên hiển thị (ví dụ "🗑️ " cho danh sách xóa).
func productPickKeyboard(c catalog.Catalog, callbackPrefix, labelPrefix string) telegram.InlineKeyboardMarkup {
	var rows [][]telegram.InlineKeyboardButton
	var row []telegram.InlineKeyboardButton
	for _, name := range c.Names() {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         labelPrefix + name,
			CallbackData: callbackPrefix + name,
		})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []telegram.InlineKeyboardButton{
		{Text: "🔙 بازگشت", CallbackData: cbBackAdmin},
	})
	return telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// resetConfirmKeyboard là bàn phím xác nhận reset toàn bộ về mặc định
func resetConfirmKeyboard() telegram.InlineKeyboardMarkup {
	return telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{
				{Text: "✅ بله، ریست شود", CallbackData: cbConfirmReset},
				{Text: "❌ خیر", CallbackData: cbBackAdmin},
			},
		},
	}
}
