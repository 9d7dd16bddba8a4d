package utility

// ChunkText chia một chuỗi thành các đoạn tối đa limit ký tự (rune).
// Telegram giới hạn độ dài message, nên message dài phải được gửi thành
// nhiều phần liên tiếp. Cắt tại ranh giới rune bất kỳ — không cắt theo dòng.
func ChunkText(text string, limit int) []string {
	if limit <= 0 || text == "" {
		return []string{text}
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/limit+1)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
