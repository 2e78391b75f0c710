package operator

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
)

const newBlockJSON = `{"jsonrpc":"2.0","id":1,"result":{"query":"tm.event='NewBlock'","data":{"type":"tendermint/event/NewBlock","value":{"block":{"header":{"height":"42","time":"2026-01-02T03:04:05Z"}}}}}}`

func TestParseNewBlock(t *testing.T) {
	ev, ok, err := parseNewBlock([]byte(newBlockJSON))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(42), ev.Height)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), ev.Time.UTC())

	_, ok, err = parseNewBlock([]byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = parseNewBlock([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32603,"message":"already subscribed"}}`))
	assert.Error(t, err)

	_, _, err = parseNewBlock([]byte(`not json`))
	assert.Error(t, err)
}

func TestBlockWatcherDeliversBlocks(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var req subscribeRequest
		if err := conn.ReadJSON(&req); err != nil || req.Method != "subscribe" {
			return
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(newBlockJSON))

		// hold the connection until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/websocket"
	watcher := NewBlockWatcher(url, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := make(chan BlockEvent, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- watcher.Run(ctx, func(ev BlockEvent) {
			select {
			case events <- ev:
			default:
			}
		})
	}()

	select {
	case ev := <-events:
		assert.Equal(t, int64(42), ev.Height)
	case <-ctx.Done():
		t.Fatal("no block event received")
	}

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
