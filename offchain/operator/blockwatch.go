package operator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

const newBlockQuery = "tm.event='NewBlock'"

// BlockEvent is the height and time of a committed block
type BlockEvent struct {
	Height int64
	Time   time.Time
}

type subscribeRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      int               `json:"id"`
	Method  string            `json:"method"`
	Params  map[string]string `json:"params"`
}

type newBlockMessage struct {
	Result struct {
		Data struct {
			Value struct {
				Block struct {
					Header struct {
						Height string    `json:"height"`
						Time   time.Time `json:"time"`
					} `json:"header"`
				} `json:"block"`
			} `json:"value"`
		} `json:"data"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// parseNewBlock extracts the block header from a subscription message. The
// subscription acknowledgement carries no block and returns ok=false.
func parseNewBlock(data []byte) (BlockEvent, bool, error) {
	var msg newBlockMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return BlockEvent{}, false, fmt.Errorf("decode block message: %w", err)
	}
	if msg.Error != nil {
		return BlockEvent{}, false, fmt.Errorf("subscription error %d: %s", msg.Error.Code, msg.Error.Message)
	}
	header := msg.Result.Data.Value.Block.Header
	if header.Height == "" {
		return BlockEvent{}, false, nil
	}
	height, err := strconv.ParseInt(header.Height, 10, 64)
	if err != nil {
		return BlockEvent{}, false, fmt.Errorf("parse block height %q: %w", header.Height, err)
	}
	return BlockEvent{Height: height, Time: header.Time}, true, nil
}

// BlockWatcher follows NewBlock events of a CometBFT node over websocket
type BlockWatcher struct {
	url            string
	dialer         *websocket.Dialer
	reconnectDelay time.Duration
}

// NewBlockWatcher creates a watcher for the websocket endpoint url,
// e.g. ws://localhost:26657/websocket
func NewBlockWatcher(url string, reconnectDelay time.Duration) *BlockWatcher {
	if reconnectDelay <= 0 {
		reconnectDelay = 5 * time.Second
	}
	return &BlockWatcher{
		url: url,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		reconnectDelay: reconnectDelay,
	}
}

// Run delivers block events to onBlock until ctx is done, reconnecting
// after connection errors
func (w *BlockWatcher) Run(ctx context.Context, onBlock func(BlockEvent)) error {
	for {
		err := w.watch(ctx, onBlock)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("[ERROR] block watcher: %v; reconnecting in %v", err, w.reconnectDelay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.reconnectDelay):
		}
	}
}

func (w *BlockWatcher) watch(ctx context.Context, onBlock func(BlockEvent)) error {
	conn, _, err := w.dialer.DialContext(ctx, w.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", w.url, err)
	}
	defer conn.Close()

	// Unblock ReadMessage when ctx is cancelled
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			_ = conn.Close()
		case <-done:
		}
	}()

	req := subscribeRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "subscribe",
		Params:  map[string]string{"query": newBlockQuery},
	}
	if err := conn.WriteJSON(req); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	log.Printf("[INFO] block watcher subscribed to %s", w.url)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		event, ok, err := parseNewBlock(data)
		if err != nil {
			return err
		}
		if ok {
			onBlock(event)
		}
	}
}
