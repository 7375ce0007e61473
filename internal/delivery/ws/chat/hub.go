package ws_chat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gibberish-game/core/internal/model"
	usecase_room "github.com/gibberish-game/core/internal/usecase/room"
)

// ChatMessage is one chat-channel item. An empty senderName marks a
// system announcement and is rendered distinctly by clients.
type ChatMessage struct {
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
}

type inbound struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId"`
	SenderName string `json:"senderName"`
	Message    string `json:"message"`
}

// Hub fans chat out to room subscribers. Inbound text is gated through
// the room before broadcast: the winning guess of an ongoing round
// becomes an announcement instead of the player's own chat line. The
// hub never judges correctness itself.
type Hub struct {
	mu sync.RWMutex

	// Sets of subscribed clients per room.
	rooms map[string]map[*Client]bool

	usecase *usecase_room.Usecase
	logger  *slog.Logger
}

func NewHub(usecase *usecase_room.Usecase) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]bool),
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.roomID]; !ok {
		h.rooms[client.roomID] = make(map[*Client]bool)
	}
	h.rooms[client.roomID][client] = true

	h.logger.Info("client registered", "room_id", client.roomID, "sender", client.senderName)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[client.roomID]; ok {
		if room[client] {
			delete(room, client)
			close(client.send)
		}
		if len(room) == 0 {
			delete(h.rooms, client.roomID)
		}
	}
	h.logger.Info("client unregistered", "room_id", client.roomID)
}

// Broadcast relays a player's chat line to every subscriber of the room.
func (h *Hub) Broadcast(roomID, senderName, text string) {
	h.send(roomID, ChatMessage{SenderName: senderName, Message: text})
}

// Announce pushes a system message with no sender attribution.
func (h *Hub) Announce(roomID, text string) {
	h.send(roomID, ChatMessage{Message: text})
}

// send may drop slow clients, so it takes the write lock.
func (h *Hub) send(roomID string, message ChatMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.rooms[roomID]; ok {
		for client := range clients {
			select {
			case client.send <- message:
			default:
				close(client.send)
				delete(h.rooms[roomID], client)
			}
		}
	}
}

// HandleInbound routes one chat line from a client. The room decides
// atomically whether it wins the ongoing round; the hub only turns that
// decision into the right kind of outbound message.
func (h *Hub) HandleInbound(client *Client, msg inbound) {
	if msg.Message == "" {
		return
	}

	res, err := h.usecase.SubmitGuess(context.Background(), client.roomID, client.senderName, msg.Message)
	if err != nil {
		h.logger.Error("failed to gate chat message", "room_id", client.roomID, "error", err)
		return
	}

	if res.Won {
		h.Announce(client.roomID, fmt.Sprintf("%s guessed it: %s (+%d)", client.senderName, res.Answer, model.WinningGuessScore))
		return
	}

	h.Broadcast(client.roomID, client.senderName, msg.Message)
}
