package ws_chat

import (
	"context"
	"fmt"
	"sync"
	"testing"

	infra_memory_registry "github.com/gibberish-game/core/internal/infra/memory/registry"
	"github.com/gibberish-game/core/internal/model"
	"github.com/gibberish-game/core/internal/questions"
	usecase_room "github.com/gibberish-game/core/internal/usecase/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedQnA() []model.QnA {
	qna := make([]model.QnA, model.RoundsPerGame)
	for i := range qna {
		qna[i] = model.QnA{
			Question: fmt.Sprintf("gibberish %d", i),
			Answer:   fmt.Sprintf("answer %d", i),
		}
	}
	return qna
}

// ongoingHub returns a hub over a room mid-round, plus one subscribed
// client per nickname. Pumps are not started; tests read the send
// channels directly.
func ongoingHub(t *testing.T, nicknames ...string) (*Hub, []*Client) {
	t.Helper()
	ctx := context.Background()

	registry := infra_memory_registry.New()
	room := model.NewRoom("room-1", fixedQnA())
	require.NoError(t, registry.Save(ctx, room))

	usecase := usecase_room.New(registry, questions.NewBank(), nil)
	for _, n := range nicknames {
		_, err := usecase.JoinRoom(ctx, "room-1", n)
		require.NoError(t, err)
	}
	_, err := usecase.StartGame(ctx, "room-1")
	require.NoError(t, err)
	_, err = usecase.BeginRound(ctx, "room-1")
	require.NoError(t, err)

	hub := NewHub(usecase)
	clients := make([]*Client, 0, len(nicknames))
	for _, n := range nicknames {
		client := &Client{
			hub:        hub,
			send:       make(chan ChatMessage, 16),
			roomID:     "room-1",
			senderName: n,
		}
		hub.RegisterClient(client)
		clients = append(clients, client)
	}
	return hub, clients
}

func TestBroadcastReachesRoomOnly(t *testing.T) {
	hub, clients := ongoingHub(t, "sasuke", "sakura")

	other := &Client{hub: hub, send: make(chan ChatMessage, 16), roomID: "room-2", senderName: "stranger"}
	hub.RegisterClient(other)

	hub.Broadcast("room-1", "sasuke", "hello")

	for _, client := range clients {
		msg := <-client.send
		assert.Equal(t, ChatMessage{SenderName: "sasuke", Message: "hello"}, msg)
	}
	assert.Empty(t, other.send)
}

func TestAnnounceHasNoSender(t *testing.T) {
	_, clients := ongoingHub(t, "sasuke")

	clients[0].hub.Announce("room-1", "Round 1!")

	msg := <-clients[0].send
	assert.Empty(t, msg.SenderName)
	assert.Equal(t, "Round 1!", msg.Message)
}

func TestHandleInboundRoutesChat(t *testing.T) {
	hub, clients := ongoingHub(t, "sasuke", "sakura")

	hub.HandleInbound(clients[0], inbound{Type: "message", Message: "just chatting"})

	for _, client := range clients {
		msg := <-client.send
		assert.Equal(t, ChatMessage{SenderName: "sasuke", Message: "just chatting"}, msg)
	}
}

func TestHandleInboundWinningGuess(t *testing.T) {
	hub, clients := ongoingHub(t, "sasuke", "sakura")

	hub.HandleInbound(clients[0], inbound{Type: "message", Message: "Answer 0"})

	for _, client := range clients {
		msg := <-client.send
		assert.Empty(t, msg.SenderName)
		assert.Contains(t, msg.Message, "sasuke guessed it: answer 0")
	}

	// The round is over; the same guess is plain chat now.
	hub.HandleInbound(clients[1], inbound{Type: "message", Message: "answer 0"})
	msg := <-clients[0].send
	assert.Equal(t, "sakura", msg.SenderName)
}

// Two subscribers race the same correct guess; every subscriber must see
// exactly one winner announcement and one chat line.
func TestHandleInboundRace(t *testing.T) {
	hub, clients := ongoingHub(t, "sasuke", "sakura")

	var wg sync.WaitGroup
	for _, client := range clients {
		wg.Add(1)
		go func(client *Client) {
			defer wg.Done()
			hub.HandleInbound(client, inbound{Type: "message", Message: "answer 0"})
		}(client)
	}
	wg.Wait()

	for _, client := range clients {
		announcements := 0
		for i := 0; i < 2; i++ {
			msg := <-client.send
			if msg.SenderName == "" {
				announcements++
			}
		}
		assert.Equal(t, 1, announcements)
	}
}
