package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func hubHandler(h *Hub) http.Handler {
	return http.HandlerFunc(h.ServeWS)
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	srv := httptest.NewServer(hubHandler(hub))
	defer srv.Close()

	a := dial(t, srv)
	defer a.Close()
	b := dial(t, srv)
	defer b.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 10*time.Millisecond)

	hub.Publish("seizure", "deleted", 4)

	for _, c := range []*websocket.Conn{a, b} {
		var evt Event
		c.SetReadDeadline(time.Now().Add(2 * time.Second))
		require.NoError(t, c.ReadJSON(&evt))
		assert.Equal(t, "seizure", evt.Kind)
		assert.Equal(t, "deleted", evt.Action)
		assert.Equal(t, 4, evt.ID)
		assert.False(t, evt.At.IsZero())
	}

	cancel()
	<-done
	assert.Equal(t, 0, hub.Clients())
}

func TestHubForgetsDepartedClients(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hubHandler(hub))
	defer srv.Close()

	c := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)
	c.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestPublishDropsWhenFull(t *testing.T) {
	hub := NewHub(nil)
	for i := 0; i < cap(hub.broadcast)+10; i++ {
		hub.Publish("inspection", "updated", i)
	}
	assert.Len(t, hub.broadcast, cap(hub.broadcast))
}
