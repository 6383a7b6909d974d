package websocket

import (
	"log"
	"sync"

	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Message)

// Push hands a freshly created message to the hub without blocking the
// sending request when no hub goroutine is draining the channel.
func Push(msg *models.Message) {
	select {
	case Broadcast <- msg:
	default:
	}
}

// RunHub delivers each new message to its receiver's connection, if any.
// Clients without an open socket pick the message up on their next poll.
func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			clientsMu.RLock()
			conn, ok := clients[message.ReceiverID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(message); err != nil {
				log.Printf("Error sending message to client %s: %v", message.ReceiverID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, message.ReceiverID)
				clientsMu.Unlock()
			}
		}
	}
}
