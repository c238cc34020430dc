package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/clients"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"nhooyr.io/websocket"
)

const writeTimeout = 5 * time.Second

// HandleLiveHighScores upgrades the request to a websocket that receives the
// current list followed by every accepted high score.
func HandleLiveHighScores(store *highscores.Store, clientManager *clients.ClientManager, allowOrigin string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acceptOptions := &websocket.AcceptOptions{}
		if allowOrigin == "*" {
			acceptOptions.InsecureSkipVerify = true
		} else {
			acceptOptions.OriginPatterns = []string{allowOrigin}
		}

		conn, err := websocket.Accept(w, r, acceptOptions)
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		defer conn.Close(websocket.StatusInternalError, "")

		client, err := clientManager.AddClient(r.RemoteAddr)
		if err != nil {
			log.Error("Failed to add client: %v", err)
			conn.Close(websocket.StatusTryAgainLater, "too many clients")
			return
		}
		defer clientManager.RemoveClient(client.ID)
		log.Debug("Client %d subscribed from %s", client.ID, client.RemoteAddr)

		// incoming messages are discarded, ctx is done once the client goes away
		ctx := conn.CloseRead(r.Context())

		if err := writeHello(ctx, conn, store); err != nil {
			log.Error("Failed to greet client %d: %v", client.ID, err)
			return
		}

		for {
			select {
			case <-ctx.Done():
				log.Debug("Client %d unsubscribed", client.ID)
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case b, ok := <-client.Send:
				if !ok {
					conn.Close(websocket.StatusPolicyViolation, "client too slow")
					return
				}
				if err := write(ctx, conn, b); err != nil {
					log.Debug("Failed to write to client %d: %v", client.ID, err)
					return
				}
			}
		}
	}
}

func writeHello(ctx context.Context, conn *websocket.Conn, store *highscores.Store) error {
	list, err := store.List(ctx)
	if err != nil {
		return err
	}
	msg, err := messages.NewMessage(messages.MessageTypeServerHello, &messages.ServerHello{HighScores: list})
	if err != nil {
		return err
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return write(ctx, conn, b)
}

func write(ctx context.Context, conn *websocket.Conn, b []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, b)
}
