package ws

import "sync"

type topicMessage struct {
	Topic string
	Data  []byte
}

// Hub maintains the set of subscribed clients grouped by topic
// ("menu", "orders") and fans broadcast messages out to them.
type Hub struct {
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan topicMessage

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan topicMessage, 256),
	}
}

// Run owns the room registry. Call it once, as a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.topic] == nil {
				h.rooms[client.topic] = make(map[*Client]bool)
			}
			h.rooms[client.topic][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.topic]; ok {
				if _, ok := room[client]; ok {
					delete(room, client)
					close(client.send)
					if len(room) == 0 {
						delete(h.rooms, client.topic)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.rooms[message.Topic] {
				select {
				case client.send <- message.Data:
				default:
					// Slow consumer, drop it.
					delete(h.rooms[message.Topic], client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues a message for every client subscribed to the topic.
func (h *Hub) Broadcast(topic string, message []byte) {
	h.broadcast <- topicMessage{Topic: topic, Data: message}
}

// ClientCount reports the number of clients subscribed to a topic.
func (h *Hub) ClientCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[topic])
}
