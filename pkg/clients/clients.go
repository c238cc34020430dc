package clients

import (
	"fmt"
	"sync"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
	// ClientSendBufferSize is the number of messages buffered for a client before it is dropped
	ClientSendBufferSize = 16
)

// Client represents a subscriber of the live high score feed
type Client struct {
	ID         uint32
	RemoteAddr string
	// Send receives the messages to write to the client. It is closed when the client is removed.
	Send chan []byte
}

// ClientManager manages connected clients
type ClientManager struct {
	clients     map[uint32]*Client
	clientsLock sync.RWMutex
	nextID      uint32
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[uint32]*Client),
		nextID:  1,
	}
}

// GetClients returns a list of all connected clients
func (cm *ClientManager) GetClients() []*Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]*Client, 0, len(cm.clients))
	for _, client := range cm.clients {
		clients = append(clients, client)
	}
	return clients
}

// Count returns the number of connected clients
func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}

// AddClient adds a new client to the manager
func (cm *ClientManager) AddClient(remoteAddr string) (*Client, error) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()
	clientID, err := cm.GenerateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	client := &Client{
		ID:         clientID,
		RemoteAddr: remoteAddr,
		Send:       make(chan []byte, ClientSendBufferSize),
	}
	cm.clients[clientID] = client
	return client, nil
}

// RemoveClient removes a client from the manager and closes its send channel.
// Removing a client twice is a no-op.
func (cm *ClientManager) RemoveClient(clientID uint32) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	if client, exists := cm.clients[clientID]; exists {
		delete(cm.clients, clientID)
		close(client.Send)
	}
}

// Broadcast queues b for every client. Clients whose buffer is full are removed
// and returned.
func (cm *ClientManager) Broadcast(b []byte) []*Client {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	dropped := make([]*Client, 0)
	for id, client := range cm.clients {
		select {
		case client.Send <- b:
		default:
			delete(cm.clients, id)
			close(client.Send)
			dropped = append(dropped, client)
		}
	}
	return dropped
}

// GenerateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) GenerateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := cm.nextID
		if _, ok := cm.clients[id]; !ok && id != 0 {
			cm.nextID++
			return id, nil
		}
		cm.nextID++
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
