package common

// Các message trả về cho người dùng. Bot chạy một locale cố định (tiếng Ba Tư),
// giữ nguyên format Markdown của Telegram (dấu ` và * có ý nghĩa).
const (
	// Access control
	MsgAccessDeniedFmt = "⛔ شما اجازه دسترسی ندارید.\n🆔 آیدی شما: `%d`\nاین آیدی را به ادمین ارسال کنید."
	MsgAdminsOnly      = "⛔ فقط ادمین‌ها دسترسی دارند."
	MsgCallbackDenied  = "⛔ دسترسی ندارید!"

	// Validation
	MsgPriceMustBeNumber  = "❌ قیمت باید عدد باشد."
	MsgRateMustBeNumber   = "❌ نرخ باید عدد باشد."
	MsgMarkupMustBeNumber = "❌ مارکاپ باید عدد باشد."
	MsgIDMustBeNumber     = "❌ آیدی باید عدد باشد."
	MsgInvalidPipeFormat  = "❌ فرمت نادرست. از `|` برای جدا کردن استفاده کنید."
	MsgInvalidPercentList = "❌ فرمت نادرست. مثال: `3, 4, 5, 6, 10`"
	MsgInvalidMessage     = "❌ پیام نامعتبر.\n\n• برای محاسبه قیمت، نرخ دلار را ارسال کنید\n• یا از منوی زیر استفاده کنید:"

	// Catalog
	MsgNoProducts         = "📭 هیچ محصولی ثبت نشده است."
	MsgProductNotFoundFmt = "⚠️ محصول '%s' یافت نشد."

	// Users
	MsgUserAlreadyAdded  = "⚠️ این کاربر قبلاً اضافه شده است."
	MsgCannotRemoveAdmin = "⚠️ نمی‌توانید ادمین را حذف کنید."
	MsgUserNotInList     = "⚠️ این کاربر در لیست نیست."

	// Storage — save thất bại phải báo cho người dùng, không trả lời thành công
	MsgSaveFailed = "❌ خطا در ذخیره‌سازی داده. دوباره تلاش کنید."

	// Prompts
	MsgSendRatePrompt = "💵 لطفاً نرخ دلار را ارسال کنید:\n(مثال: 58500)"
)

// Nhãn các nút menu chính (reply keyboard)
const (
	BtnProducts  = "📊 لیست محصولات"
	BtnCalculate = "💰 محاسبه قیمت"
	BtnSettings  = "⚙️ تنظیمات"
	BtnStats     = "📈 آمار"
	BtnHelp      = "❓ راهنما"
)
