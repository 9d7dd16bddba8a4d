package telegram

import (
	"context"
	"time"

	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
	"github.com/amirsalamaty/camera-pricer-bot/internal/utility"
)

// UpdateHandler xử lý một update inbound
type UpdateHandler func(ctx context.Context, update Update)

// Poller chạy vòng lặp long polling và dispatch từng update một cách tuần tự.
// Lỗi polling không làm chết process: log, ngủ reconnectDelay rồi poll tiếp —
// đây là retry duy nhất của hệ thống, không có retry per-request.
type Poller struct {
	client         *Client
	handler        UpdateHandler
	pollTimeout    int           // Long-poll timeout (giây)
	pollInterval   time.Duration // Khoảng nghỉ giữa hai lần poll
	reconnectDelay time.Duration // Thời gian chờ sau lỗi trước khi poll lại
}

// NewPoller tạo poller với handler xử lý update
func NewPoller(client *Client, handler UpdateHandler, pollTimeout, pollInterval, reconnectDelay int) *Poller {
	return &Poller{
		client:         client,
		handler:        handler,
		pollTimeout:    pollTimeout,
		pollInterval:   time.Duration(pollInterval) * time.Second,
		reconnectDelay: time.Duration(reconnectDelay) * time.Second,
	}
}

// Run chạy vòng lặp polling cho đến khi context bị cancel.
// Mỗi update được xử lý xong mới lấy update tiếp theo — một luồng xử lý duy nhất,
// nên không có race trên session hay record store trong phạm vi một update.
func (p *Poller) Run(ctx context.Context) {
	log := logger.GetAppLogger()
	var offset int64

	log.WithField("pollTimeout", p.pollTimeout).Info("🤖 [BOT] Bắt đầu long polling")

	for {
		select {
		case <-ctx.Done():
			log.Info("🤖 [BOT] Polling dừng (context cancelled)")
			return
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.WithError(err).Error("🤖 [BOT] Lỗi polling, thử kết nối lại")
			select {
			case <-time.After(p.reconnectDelay):
			case <-ctx.Done():
				return
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			u := update
			// Panic trong handler không được làm chết vòng lặp polling
			utility.GoProtect(func() {
				p.handler(ctx, u)
			})
		}

		if len(updates) == 0 && p.pollInterval > 0 {
			select {
			case <-time.After(p.pollInterval):
			case <-ctx.Done():
				return
			}
		}
	}
}
