package telegram

import "encoding/json"

// Các kiểu dữ liệu của Telegram Bot API — chỉ khai báo các field bot thực sự dùng.

// Update là một sự kiện inbound từ Telegram
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

// Message là một tin nhắn (command hoặc free text)
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text,omitempty"`
}

// Chat định danh cuộc hội thoại
type Chat struct {
	ID int64 `json:"id"`
}

// User là người gửi
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}

// CallbackQuery là sự kiện bấm inline button
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    *User    `json:"from,omitempty"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data,omitempty"`
}

// InlineKeyboardButton là một nút inline (callback hoặc URL)
type InlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
	URL          string `json:"url,omitempty"`
}

// InlineKeyboardMarkup là bàn phím inline gắn vào message
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// KeyboardButton là một nút của reply keyboard
type KeyboardButton struct {
	Text string `json:"text"`
}

// ReplyKeyboardMarkup là bàn phím menu thay thế bàn phím hệ thống
type ReplyKeyboardMarkup struct {
	Keyboard       [][]KeyboardButton `json:"keyboard"`
	ResizeKeyboard bool               `json:"resize_keyboard,omitempty"`
}

// SendMessageParams là tham số của sendMessage
type SendMessageParams struct {
	ChatID           int64       `json:"chat_id"`
	Text             string      `json:"text"`
	ParseMode        string      `json:"parse_mode,omitempty"`
	ReplyToMessageID int64       `json:"reply_to_message_id,omitempty"`
	ReplyMarkup      interface{} `json:"reply_markup,omitempty"` // InlineKeyboardMarkup hoặc ReplyKeyboardMarkup
}

// EditMessageTextParams là tham số của editMessageText
type EditMessageTextParams struct {
	ChatID      int64                 `json:"chat_id"`
	MessageID   int64                 `json:"message_id"`
	Text        string                `json:"text"`
	ParseMode   string                `json:"parse_mode,omitempty"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// apiResponse là envelope chung của mọi response từ Bot API
type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
}
