// Package telegram là client mỏng cho Telegram Bot API.
// Mọi method đều là một POST JSON tới https://api.telegram.org/bot<token>/<method>;
// response non-200 được đọc lại body để log lỗi chi tiết.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
)

const defaultBaseURL = "https://api.telegram.org"

// Client gọi Telegram Bot API cho một bot token.
// pollHTTP là client riêng không giới hạn timeout cho long polling —
// timeout của getUpdates do context quyết định.
type Client struct {
	token    string
	baseURL  string
	http     *http.Client
	pollHTTP *http.Client
}

// NewClient tạo client với token của bot
func NewClient(token string) *Client {
	return &Client{
		token:    token,
		baseURL:  defaultBaseURL,
		http:     &http.Client{Timeout: 10 * time.Second},
		pollHTTP: &http.Client{},
	}
}

// NewClientWithBaseURL tạo client trỏ tới một base URL khác (dùng cho test)
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// call gọi một method của Bot API với payload JSON, unmarshal result vào out (nếu khác nil)
func (c *Client) call(ctx context.Context, method string, payload interface{}, out interface{}) error {
	return c.callWith(ctx, c.http, method, payload, out)
}

func (c *Client) callWith(ctx context.Context, httpClient *http.Client, method string, payload interface{}, out interface{}) error {
	log := logger.GetAppLogger()
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		log.WithError(err).WithField("method", method).Error("📱 [TELEGRAM] Lỗi khi gọi Telegram API")
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var apiResp apiResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"method":     method,
			"statusCode": resp.StatusCode,
		}).Error("📱 [TELEGRAM] Response không parse được")
		return fmt.Errorf("telegram API returned unparsable response (status %d)", resp.StatusCode)
	}

	if !apiResp.OK {
		log.WithFields(map[string]interface{}{
			"method":      method,
			"statusCode":  resp.StatusCode,
			"errorCode":   apiResp.ErrorCode,
			"description": apiResp.Description,
		}).Error("📱 [TELEGRAM] Telegram API trả về lỗi")
		return fmt.Errorf("telegram API error %d: %s", apiResp.ErrorCode, apiResp.Description)
	}

	if out != nil && len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("failed to parse %s result: %w", method, err)
		}
	}

	return nil
}

// GetMe trả về thông tin bot — dùng để kiểm tra kết nối lúc khởi động
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var me User
	if err := c.call(ctx, "getMe", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// SendMessage gửi một tin nhắn
func (c *Client) SendMessage(ctx context.Context, params SendMessageParams) error {
	return c.call(ctx, "sendMessage", params, nil)
}

// SendChunks gửi một text dài thành nhiều tin nhắn liên tiếp
func (c *Client) SendChunks(ctx context.Context, chatID int64, chunks []string, parseMode string) error {
	for _, chunk := range chunks {
		if err := c.SendMessage(ctx, SendMessageParams{
			ChatID:    chatID,
			Text:      chunk,
			ParseMode: parseMode,
		}); err != nil {
			return err
		}
	}
	return nil
}

// EditMessageText sửa nội dung (và bàn phím inline) của một tin nhắn đã gửi
func (c *Client) EditMessageText(ctx context.Context, params EditMessageTextParams) error {
	return c.call(ctx, "editMessageText", params, nil)
}

// DeleteMessage xóa một tin nhắn
func (c *Client) DeleteMessage(ctx context.Context, chatID, messageID int64) error {
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
	}
	return c.call(ctx, "deleteMessage", payload, nil)
}

// AnswerCallbackQuery xác nhận một callback query (kèm text toast nếu có)
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID, text string) error {
	payload := map[string]interface{}{
		"callback_query_id": callbackID,
	}
	if text != "" {
		payload["text"] = text
	}
	return c.call(ctx, "answerCallbackQuery", payload, nil)
}

// GetUpdates long-poll các update mới kể từ offset.
// Timeout tính bằng giây — đây là long polling phía server của Telegram.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout int) ([]Update, error) {
	payload := map[string]interface{}{
		"offset":  offset,
		"timeout": timeout,
	}

	// Request timeout phải lớn hơn long-poll timeout phía server
	reqCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout+15)*time.Second)
	defer cancel()

	var updates []Update
	if err := c.callWith(reqCtx, c.pollHTTP, "getUpdates", payload, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SetWebhook đăng ký URL webhook nhận update
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	return c.call(ctx, "setWebhook", map[string]interface{}{"url": url}, nil)
}

// DeleteWebhook hủy webhook — bắt buộc trước khi chuyển về long polling,
// vì Telegram từ chối getUpdates khi webhook còn đăng ký
func (c *Client) DeleteWebhook(ctx context.Context) error {
	return c.call(ctx, "deleteWebhook", nil, nil)
}
