package global

import (
	"github.com/amirsalamaty/camera-pricer-bot/config"

	"github.com/go-playground/validator/v10"
)

// Các biến toàn cục

// ServerConfig chứa cấu hình bot đọc từ env, được gán một lần lúc khởi động
var ServerConfig *config.Configuration

// Validate là validator instance dùng chung cho toàn ứng dụng
var Validate *validator.Validate
