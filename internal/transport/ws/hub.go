package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Owner dashboard message types
const (
	MsgAnswersReceived  MessageType = "answers_received"
	MsgSurveyScored     MessageType = "survey_scored"
	MsgNotEnoughAnswers MessageType = "not_enough_answers"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages the owner dashboard connections, one set per survey key.
// Owners watch answers arrive and results update while a survey is
// collecting responses.
type Hub struct {
	// survey key -> connections
	ownerConns map[string]map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one owner dashboard WebSocket connection
type Connection struct {
	SurveyKey string
	OwnerID   string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast to a survey's dashboards
type BroadcastMessage struct {
	SurveyKey string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		ownerConns: make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.ownerConns[conn.SurveyKey] == nil {
				h.ownerConns[conn.SurveyKey] = make(map[*Connection]struct{})
			}
			h.ownerConns[conn.SurveyKey][conn] = struct{}{}
			log.Printf("Owner %s connected to survey %s dashboard", conn.OwnerID, conn.SurveyKey)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.ownerConns[conn.SurveyKey]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					log.Printf("Owner %s disconnected from survey %s dashboard", conn.OwnerID, conn.SurveyKey)
				}
				if len(conns) == 0 {
					delete(h.ownerConns, conn.SurveyKey)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.ownerConns[msg.SurveyKey] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToOwner sends a message to a survey's dashboards
// (implements service.Broadcaster)
func (h *Hub) BroadcastToOwner(surveyKey string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SurveyKey: surveyKey,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
