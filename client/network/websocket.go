package network

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/queue"
	"github.com/gorilla/websocket"
)

// LiveClient subscribes to the live high score feed of the score service.
type LiveClient struct {
	serverAddr   string
	messageQueue queue.Queue
	lock         sync.Mutex
	conn         *websocket.Conn
}

// NewLiveClient creates a new LiveClient. Received messages are written to messageQueue.
func NewLiveClient(serverAddr string, messageQueue queue.Queue) *LiveClient {
	return &LiveClient{
		serverAddr:   serverAddr,
		messageQueue: messageQueue,
	}
}

// Connect establishes a connection to the live feed.
func (c *LiveClient) Connect(ctx context.Context) error {
	log.Info("Connecting to live high scores at %s", c.serverAddr)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.serverAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}

	c.lock.Lock()
	c.conn = conn
	c.lock.Unlock()
	return nil
}

// HandleMessages reads messages until the connection is closed or ctx is done.
func (c *LiveClient) HandleMessages(ctx context.Context) error {
	c.lock.Lock()
	conn := c.conn
	c.lock.Unlock()
	if conn == nil {
		return fmt.Errorf("not connected")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		c.Close()
	}()

	for {
		_, b, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("Error reading live high scores from %s: %v", c.serverAddr, err)
				return err
			}
			log.Trace("Live high scores closed by %s", c.serverAddr)
			return &ErrConnectionClosedByServer{}
		}

		if err := c.handleMessage(b); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
	}
}

// handleMessage processes a received message.
func (c *LiveClient) handleMessage(b []byte) error {
	msg := &messages.Message{}
	if err := json.Unmarshal(b, msg); err != nil {
		return fmt.Errorf("failed to deserialize message: %v", err)
	}
	log.Trace("Received live message of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerHello:
		hello := &messages.ServerHello{}
		if err := json.Unmarshal(msg.Payload, hello); err != nil {
			return fmt.Errorf("failed to deserialize server hello message: %v", err)
		}
		if err := c.messageQueue.Enqueue(hello); err != nil {
			return fmt.Errorf("failed to enqueue message: %v", err)
		}
	case messages.MessageTypeServerHighScore:
		highScore := &messages.ServerHighScore{}
		if err := json.Unmarshal(msg.Payload, highScore); err != nil {
			return fmt.Errorf("failed to deserialize server high score message: %v", err)
		}
		if err := c.messageQueue.Enqueue(highScore); err != nil {
			return fmt.Errorf("failed to enqueue message: %v", err)
		}
	default:
		return fmt.Errorf("received unexpected message type from server: %s", msg.Type)
	}

	return nil
}

// Close closes the connection.
func (c *LiveClient) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
