package utility

import (
	"github.com/amirsalamaty/camera-pricer-bot/internal/logger"
)

// GoProtect chạy một function với recover, để panic trong handler
// không làm crash cả bot.
func GoProtect(f func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetAppLogger().WithField("panic", r).Error("Recovered from panic")
		}
	}()
	f()
}
