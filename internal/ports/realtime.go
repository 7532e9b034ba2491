package ports

import (
	"context"
	"encoding/json"
)

type RealtimeEvent struct {
	Name string
	Data json.RawMessage
}

// RealtimeConn is one open duplex transport. Receive blocks until an event
// arrives or the connection fails; Close unblocks it.
type RealtimeConn interface {
	Emit(ctx context.Context, event string, payload any) error
	Receive() (RealtimeEvent, error)
	Close() error
}

type RealtimeDialer interface {
	Dial(ctx context.Context) (RealtimeConn, error)
}
