// Package telegram - Test client qua fake Bot API server.
package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeAPI là fake Bot API server, ghi lại các request nhận được
type fakeAPI struct {
	mu       sync.Mutex
	requests []fakeRequest
	respond  func(method string) (int, string)
}

type fakeRequest struct {
	Method string
	Body   map[string]interface{}
}

func newFakeAPI() (*fakeAPI, *httptest.Server) {
	f := &fakeAPI{
		respond: func(string) (int, string) {
			return http.StatusOK, `{"ok":true,"result":{}}`
		},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		method := parts[len(parts)-1]

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.requests = append(f.requests, fakeRequest{Method: method, Body: body})
		f.mu.Unlock()

		code, resp := f.respond(method)
		w.WriteHeader(code)
		w.Write([]byte(resp))
	}))
	return f, srv
}

func (f *fakeAPI) calls(method string) []fakeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []fakeRequest
	for _, req := range f.requests {
		if req.Method == method {
			out = append(out, req)
		}
	}
	return out
}

func TestSendMessage(t *testing.T) {
	fake, srv := newFakeAPI()
	defer srv.Close()

	client := NewClientWithBaseURL("test-token", srv.URL)
	err := client.SendMessage(context.Background(), SendMessageParams{
		ChatID:    123,
		Text:      "xin chào",
		ParseMode: "Markdown",
	})
	assert.NoError(t, err)

	calls := fake.calls("sendMessage")
	assert.Len(t, calls, 1)
	assert.Equal(t, float64(123), calls[0].Body["chat_id"])
	assert.Equal(t, "xin chào", calls[0].Body["text"])
	assert.Equal(t, "Markdown", calls[0].Body["parse_mode"])
}

func TestSendMessage_APIError(t *testing.T) {
	fake, srv := newFakeAPI()
	defer srv.Close()
	fake.respond = func(string) (int, string) {
		return http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`
	}

	client := NewClientWithBaseURL("test-token", srv.URL)
	err := client.SendMessage(context.Background(), SendMessageParams{ChatID: 999, Text: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSendChunks_OneRequestPerChunk(t *testing.T) {
	fake, srv := newFakeAPI()
	defer srv.Close()

	client := NewClientWithBaseURL("test-token", srv.URL)
	err := client.SendChunks(context.Background(), 123, []string{"phần một", "phần hai", "phần ba"}, "Markdown")
	assert.NoError(t, err)

	calls := fake.calls("sendMessage")
	assert.Len(t, calls, 3)
	assert.Equal(t, "phần một", calls[0].Body["text"])
	assert.Equal(t, "phần ba", calls[2].Body["text"])
}

func TestGetMe(t *testing.T) {
	fake, srv := newFakeAPI()
	defer srv.Close()
	fake.respond = func(string) (int, string) {
		return http.StatusOK, `{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"Pricer","username":"camera_pricer_bot"}}`
	}

	client := NewClientWithBaseURL("test-token", srv.URL)
	me, err := client.GetMe(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), me.ID)
	assert.Equal(t, "camera_pricer_bot", me.Username)
}

func TestDeleteMessage(t *testing.T) {
	fake, srv := newFakeAPI()
	defer srv.Close()

	client := NewClientWithBaseURL("test-token", srv.URL)
	err := client.DeleteMessage(context.Background(), 123, 7)
	assert.NoError(t, err)

	calls := fake.calls("deleteMessage")
	assert.Len(t, calls, 1)
	assert.Equal(t, float64(123), calls[0].Body["chat_id"])
	assert.Equal(t, float64(7), calls[0].Body["message_id"])
}

func TestAnswerCallbackQuery(t *testing.T) {
	fake, srv := newFakeAPI()
	defer srv.Close()

	client := NewClientWithBaseURL("test-token", srv.URL)
	err := client.AnswerCallbackQuery(context.Background(), "cb1", "đã nhận")
	assert.NoError(t, err)

	calls := fake.calls("answerCallbackQuery")
	assert.Len(t, calls, 1)
	assert.Equal(t, "cb1", calls[0].Body["callback_query_id"])
	assert.Equal(t, "đã nhận", calls[0].Body["text"])
}

func TestGetUpdates(t *testing.T) {
	fake, srv := newFakeAPI()
	defer srv.Close()
	fake.respond = func(method string) (int, string) {
		if method == "getUpdates" {
			return http.StatusOK, `{"ok":true,"result":[{"update_id":10,"message":{"message_id":1,"chat":{"id":123},"text":"58500"}}]}`
		}
		return http.StatusOK, `{"ok":true,"result":{}}`
	}

	client := NewClientWithBaseURL("test-token", srv.URL)
	updates, err := client.GetUpdates(context.Background(), 5, 0)
	assert.NoError(t, err)
	assert.Len(t, updates, 1)
	assert.Equal(t, int64(10), updates[0].UpdateID)
	assert.Equal(t, "58500", updates[0].Message.Text)

	calls := fake.calls("getUpdates")
	assert.Len(t, calls, 1)
	assert.Equal(t, float64(5), calls[0].Body["offset"])
}
