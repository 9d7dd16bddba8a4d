package main

import (
	"github.com/sirupsen/logrus"

	"github.com/amirsalamaty/camera-pricer-bot/config"
	"github.com/amirsalamaty/camera-pricer-bot/internal/global"
	"github.com/amirsalamaty/camera-pricer-bot/internal/store"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() *store.FileStore {
	initValidator() // Khởi tạo validator
	initConfig()    // Khởi tạo cấu hình bot
	return initStore()
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình bot
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}

	// Validate cấu hình sau khi parse — format TELEGRAM_CHAT_IDS sai phải chặn ngay lúc khởi động
	if err := global.Validate.Struct(global.ServerConfig); err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}

	if len(global.ServerConfig.AdminIDs()) == 0 {
		logrus.Warn("TELEGRAM_CHAT_IDS trống — bot khởi động không có admin mặc định")
	}

	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình bot
}

// Hàm khởi tạo file store
func initStore() *store.FileStore {
	st, err := store.NewFileStore(global.ServerConfig.DataDir)
	if err != nil {
		logrus.Fatalf("Failed to initialize file store: %v", err) // Ghi log lỗi nếu không tạo được thư mục dữ liệu
	}
	logrus.WithField("dir", st.Dir()).Info("Initialized file store")
	return st
}
