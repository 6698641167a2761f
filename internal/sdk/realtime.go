package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
)

// eventBuffer bounds the channel between the transport reader and the
// consumer. When the consumer lags behind a burst, events beyond the buffer
// are dropped and counted rather than blocking the read loop.
const eventBuffer = 256

type realtimeService struct {
	client *restClient
	log    *logger.Logger
}

func (s *realtimeService) Subscribe(ctx context.Context, req SubscribeRequest) (<-chan Event, error) {
	conn, err := s.dial(ctx, "/stock")
	if err != nil {
		return nil, err
	}

	sub := map[string]string{"event": "subscribe", "channel": req.Channel, "symbol": req.Symbol}
	if err = conn.WriteJSON(sub); err != nil {
		conn.Close()
		return nil, fmt.Errorf("send subscribe: %w", err)
	}

	return s.pump(ctx, conn), nil
}

func (s *realtimeService) Notifications(ctx context.Context, acc Account) (<-chan Event, error) {
	conn, err := s.dial(ctx, "/notifications")
	if err != nil {
		return nil, err
	}

	listen := map[string]string{"event": "listen", "account": acc.AccountID}
	if err = conn.WriteJSON(listen); err != nil {
		conn.Close()
		return nil, fmt.Errorf("send listen: %w", err)
	}

	return s.pump(ctx, conn), nil
}

func (s *realtimeService) dial(ctx context.Context, suffix string) (*websocket.Conn, error) {
	token := s.client.sessionToken()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	url := strings.TrimRight(s.client.streamURL, "/") + suffix
	header := http.Header{"Authorization": {"Bearer " + token}}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return conn, nil
}

// pump moves messages from the websocket onto a bounded channel until the
// context is cancelled or the transport closes. The channel is closed in
// either case; cancellation also sends a close frame so the venue sees a
// clean shutdown.
func (s *realtimeService) pump(ctx context.Context, conn *websocket.Conn) <-chan Event {
	ch := make(chan Event, eventBuffer)

	go func() {
		<-ctx.Done()
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	go func() {
		defer close(ch)

		var dropped int
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					s.log.Warn().Err(err).Msg("realtime read ended")
				}
				if dropped > 0 {
					s.log.Warn().Int("dropped", dropped).Msg("events dropped while consumer lagged")
				}
				return
			}

			ev := parseEvent(raw)
			select {
			case ch <- ev:
			default:
				dropped++
			}
		}
	}()

	return ch
}

// parseEvent decodes one wire message. Non-JSON payloads are wrapped so
// every emitted line stays independently parseable.
func parseEvent(raw []byte) Event {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return Event{Kind: "message", Data: map[string]any{"raw": string(raw)}}
	}

	kind := "message"
	if v, ok := data["event"].(string); ok && v != "" {
		kind = v
		delete(data, "event")
	}
	return Event{Kind: kind, Data: data}
}
