package ws_chat

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan ChatMessage
	roomID     string
	senderName string
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.conn.Close()
	}()

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			break
		}

		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.logger.Warn("dropping malformed chat frame", "room_id", client.roomID)
			continue
		}
		if msg.Type != "message" {
			continue
		}

		h.HandleInbound(client, msg)
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.conn.Close()

	for message := range client.send {
		if err := client.conn.WriteJSON(message); err != nil {
			break
		}
	}
}
