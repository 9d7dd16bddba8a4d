package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AdminAction mô tả một hành động admin cần audit
type AdminAction struct {
	Action    string                 `json:"action"`     // Tên hành động (ví dụ: "product_add", "user_remove")
	ChatID    int64                  `json:"chat_id"`    // Chat id của admin thực hiện
	Details   map[string]interface{} `json:"details"`    // Chi tiết bổ sung
	Timestamp time.Time              `json:"timestamp"`  // Thời gian
}

// LogAdminAction ghi một hành động admin vào audit log.
// Mọi mutation (sản phẩm, cài đặt, người dùng) đều đi qua đây ngoài app log.
func LogAdminAction(action string, chatID int64, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AdminAction{
		Action:    action,
		ChatID:    chatID,
		Details:   details,
		Timestamp: time.Now(),
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":    audit.Action,
		"chat_id":   audit.ChatID,
		"details":   audit.Details,
		"timestamp": audit.Timestamp,
	}).Info("Audit log")
}
