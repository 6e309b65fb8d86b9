package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("hub did not reach %d clients in time", want)
}

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub(nopLogger{})
	stopCh := make(chan struct{})
	defer close(stopCh)
	go hub.Run(stopCh)

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	waitForClients(t, hub, 1)

	hub.Publish("booking_request_created", map[string]interface{}{"id": 42})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "booking_request_created", msg.Type)
	assert.False(t, msg.Timestamp.IsZero())

	payload, ok := msg.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 42, payload["id"])
}

func TestHub_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	hub := NewHub(nopLogger{})
	stopCh := make(chan struct{})
	defer close(stopCh)
	go hub.Run(stopCh)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish("calendar_config_updated", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked the caller")
	}
}

func TestHub_StopDisconnectsClients(t *testing.T) {
	hub := NewHub(nopLogger{})
	stopCh := make(chan struct{})
	go hub.Run(stopCh)

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	waitForClients(t, hub, 1)

	close(stopCh)
	waitForClients(t, hub, 0)
}
