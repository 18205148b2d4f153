package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elvis-fintech/busyedge/internal/domain/entities"
)

const testToken = "123456:test-token"

type fakeTelegram struct {
	sendOK   bool
	getMe    atomic.Int32
	sends    atomic.Int32
	lastText atomic.Value
	lastChat atomic.Value
}

func (f *fakeTelegram) handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		f.getMe.Add(1)
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"BusyEdge","username":"busyedge_bot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		f.sends.Add(1)
		_ = r.ParseForm()
		f.lastText.Store(r.FormValue("text"))
		f.lastChat.Store(r.FormValue("chat_id"))
		if !f.sendOK {
			_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1718000000,"chat":{"id":42,"type":"private"},"text":"ok"}}`))
	default:
		http.NotFound(w, r)
	}
}

func newTestNotifier(t *testing.T, fake *fakeTelegram, chatID string) *Notifier {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(srv.Close)

	return NewNotifier(Config{
		BotToken:    testToken,
		ChatID:      chatID,
		APIEndpoint: srv.URL + "/bot%s/%s",
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	})
}

func TestNotifier_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no token", Config{ChatID: "42"}},
		{"no chat", Config{BotToken: testToken}},
		{"blank", Config{BotToken: "  ", ChatID: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotifier(tt.cfg)
			assert.False(t, n.Configured())
			assert.Equal(t, entities.DeliveryTelegramNotConfigured, n.Notify(context.Background(), "hello"))
		})
	}
}

func TestNotifier_Sent(t *testing.T) {
	fake := &fakeTelegram{sendOK: true}
	n := newTestNotifier(t, fake, "42")

	status := n.Notify(context.Background(), "BusyEdge price alert")
	assert.Equal(t, entities.DeliverySent, status)

	status = n.Notify(context.Background(), "second")
	assert.Equal(t, entities.DeliverySent, status)

	assert.Equal(t, int32(1), fake.getMe.Load(), "bot is created once")
	assert.Equal(t, int32(2), fake.sends.Load())
	assert.Equal(t, "second", fake.lastText.Load())
	assert.Equal(t, "42", fake.lastChat.Load())
}

func TestNotifier_ChannelUsername(t *testing.T) {
	fake := &fakeTelegram{sendOK: true}
	n := newTestNotifier(t, fake, "@busyedge_alerts")

	assert.Equal(t, entities.DeliverySent, n.Notify(context.Background(), "hi"))
	assert.Equal(t, "@busyedge_alerts", fake.lastChat.Load())
}

func TestNotifier_SendFailedAfterRetries(t *testing.T) {
	fake := &fakeTelegram{sendOK: false}
	n := newTestNotifier(t, fake, "42")

	status := n.Notify(context.Background(), "hello")

	assert.Equal(t, entities.DeliverySendFailed, status)
	assert.Equal(t, int32(3), fake.sends.Load())
}

func TestNotifier_InvalidChatIDIsNotRetried(t *testing.T) {
	fake := &fakeTelegram{sendOK: true}
	n := newTestNotifier(t, fake, "not-a-number")

	status := n.Notify(context.Background(), "hello")

	assert.Equal(t, entities.DeliverySendFailed, status)
	assert.Equal(t, int32(0), fake.sends.Load())
}

func TestNotifier_UnreachableAPI(t *testing.T) {
	n := NewNotifier(Config{
		BotToken:    testToken,
		ChatID:      "42",
		APIEndpoint: "http://127.0.0.1:1/bot%s/%s",
		Timeout:     200 * time.Millisecond,
		MaxAttempts: 2,
		RetryDelay:  time.Millisecond,
	})

	assert.Equal(t, entities.DeliverySendFailed, n.Notify(context.Background(), "hello"))
}
