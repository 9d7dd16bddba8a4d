package main

import (
	"github.com/sirupsen/logrus"

	"github.com/amirsalamaty/camera-pricer-bot/internal/auth"
	"github.com/amirsalamaty/camera-pricer-bot/internal/catalog"
	"github.com/amirsalamaty/camera-pricer-bot/internal/global"
	"github.com/amirsalamaty/camera-pricer-bot/internal/settings"
	"github.com/amirsalamaty/camera-pricer-bot/internal/store"
)

// InitDefaultData seed các record file còn thiếu với dữ liệu mặc định.
// File đã tồn tại thì giữ nguyên — seed chỉ chạy cho lần khởi động đầu tiên.
func InitDefaultData(st *store.FileStore) {
	if !st.Exists(store.RecordProducts) {
		if err := st.Save(store.RecordProducts, catalog.Defaults()); err != nil {
			logrus.Fatalf("Failed to seed default products: %v", err)
		}
		logrus.Info("Seeded default products")
	}

	if !st.Exists(store.RecordSettings) {
		if err := st.Save(store.RecordSettings, settings.Defaults()); err != nil {
			logrus.Fatalf("Failed to seed default settings: %v", err)
		}
		logrus.Info("Seeded default settings")
	}

	if !st.Exists(store.RecordUsers) {
		if err := st.Save(store.RecordUsers, auth.Defaults(global.ServerConfig.AdminIDs())); err != nil {
			logrus.Fatalf("Failed to seed default users: %v", err)
		}
		logrus.Info("Seeded default users")
	}
}
