package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientManager_AddRemove(t *testing.T) {
	cm := NewClientManager()

	a, err := cm.AddClient("127.0.0.1:1000")
	require.NoError(t, err)
	b, err := cm.AddClient("127.0.0.1:1001")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, cm.Count())
	assert.Contains(t, cm.clients, a.ID)
	assert.Same(t, b, cm.clients[b.ID])

	cm.RemoveClient(a.ID)
	cm.RemoveClient(a.ID)

	assert.NotContains(t, cm.clients, a.ID)
	assert.Len(t, cm.GetClients(), 1)
	_, ok := <-a.Send
	assert.False(t, ok, "send channel is closed")
}

func TestClientManager_Broadcast(t *testing.T) {
	cm := NewClientManager()
	fast, err := cm.AddClient("fast")
	require.NoError(t, err)
	slow, err := cm.AddClient("slow")
	require.NoError(t, err)

	for i := 0; i < ClientSendBufferSize; i++ {
		dropped := cm.Broadcast([]byte("update"))
		require.Empty(t, dropped)
		<-fast.Send
	}

	dropped := cm.Broadcast([]byte("one too many"))

	require.Len(t, dropped, 1)
	assert.Equal(t, slow.ID, dropped[0].ID)
	assert.NotContains(t, cm.clients, slow.ID)
	assert.Equal(t, []byte("one too many"), <-fast.Send)
}

func TestClientManager_GenerateUniqueID(t *testing.T) {
	cm := NewClientManager()
	cm.clients[1] = &Client{ID: 1}
	cm.clients[2] = &Client{ID: 2}

	id, err := cm.GenerateUniqueID(ClientIDMaxRetries)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), id)

	cm.nextID = 1
	_, err = cm.GenerateUniqueID(2)
	assert.Error(t, err)
}
