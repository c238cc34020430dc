package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/blockdrop/pkg/clients"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/messages"
)

type BroadcastMessageWorker struct {
	clientManager        *clients.ClientManager
	broadcastMessageChan <-chan *messages.Message
}

type NewBroadcastMessageWorkerOptions struct {
	ClientManager        *clients.ClientManager
	BroadcastMessageChan <-chan *messages.Message
}

// NewBroadcastMessageWorker creates a new BroadcastMessageWorker.
// The worker fans messages out to every subscriber of the live feed.
func NewBroadcastMessageWorker(opts NewBroadcastMessageWorkerOptions) *BroadcastMessageWorker {
	return &BroadcastMessageWorker{
		clientManager:        opts.ClientManager,
		broadcastMessageChan: opts.BroadcastMessageChan,
	}
}

func (w *BroadcastMessageWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-w.broadcastMessageChan:
			if !ok {
				return
			}
			if err := w.broadcast(msg); err != nil {
				log.Error("Failed to broadcast %s message: %v", msg.Type, err)
			}
		}
	}
}

func (w *BroadcastMessageWorker) broadcast(msg *messages.Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %v", err)
	}

	dropped := w.clientManager.Broadcast(b)
	for _, client := range dropped {
		log.Warn("Dropped slow client %d (%s)", client.ID, client.RemoteAddr)
	}
	log.Trace("Broadcast %s message to %d clients", msg.Type, w.clientManager.Count())

	return nil
}
