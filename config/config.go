package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy bot.
// Token Telegram là bắt buộc — thiếu token thì process không được phép khởi động.
type Configuration struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`            // Bot token từ BotFather
	TelegramChatIDs  string `env:"TELEGRAM_CHAT_IDS" validate:"chat_ids"`  // Danh sách admin chat IDs phân cách bằng dấu phẩy, ví dụ: "123456789,987654321"
	DataDir          string `env:"DATA_DIR" envDefault:"./data"`           // Thư mục chứa các file JSON (products, settings, users)
	Address          string `env:"ADDRESS" envDefault:":8443"`             // Địa chỉ HTTP server (chỉ dùng ở webhook mode)
	WebhookURL       string `env:"WEBHOOK_URL"`                            // URL công khai cho webhook; rỗng = long polling
	PollTimeout      int    `env:"POLL_TIMEOUT" envDefault:"60"`           // Timeout long polling (giây)
	PollInterval     int    `env:"POLL_INTERVAL" envDefault:"1"`           // Khoảng nghỉ giữa các lần poll (giây)
	ReconnectDelay   int    `env:"RECONNECT_DELAY" envDefault:"5"`         // Thời gian chờ trước khi reconnect sau lỗi polling (giây)
}

// AdminIDs parse TELEGRAM_CHAT_IDS thành danh sách chat id.
// Phần tử không parse được sẽ bị bỏ qua (không fatal — bot vẫn chạy được, chỉ không có admin mặc định).
func (c *Configuration) AdminIDs() []int64 {
	var ids []int64
	for _, part := range strings.Split(c.TelegramChatIDs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			fmt.Printf("Bỏ qua chat id không hợp lệ trong TELEGRAM_CHAT_IDS: %q\n", part)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) và environment variables.
// File env không tồn tại thì không fatal — biến môi trường của process vẫn được dùng.
// Trả về nil khi thiếu biến bắt buộc (TELEGRAM_BOT_TOKEN).
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
			fmt.Printf("Không load được file env tại %s: %v (dùng environment variables)\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
