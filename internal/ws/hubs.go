package ws

import (
	"context"

	"go.uber.org/zap"
)

type Hubs struct {
	Messages *MessageHub
}

func NewHubs(log *zap.Logger) *Hubs {
	return &Hubs{
		Messages: NewMessageHub(log.Named("messages")),
	}
}

// Run blocks until ctx is cancelled.
func (h *Hubs) Run(ctx context.Context) {
	h.Messages.Run(ctx)
}
