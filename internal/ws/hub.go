package ws

import (
	"encoding/json"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Message сообщение, рассылаемое подписчикам
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub широковещательный концентратор WebSocket-подключений
// Подписчики только читают: входящие сообщения клиентов игнорируются
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     Logger

	mu sync.RWMutex
}

// NewHub создает новый концентратор
func NewHub(logger Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run запускает основной цикл концентратора
// Завершается закрытием stopCh
func (h *Hub) Run(stopCh <-chan struct{}) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("ws: client connected, %d total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("ws: client disconnected, %d total", total)

		case data := <-h.broadcast:
			h.broadcastData(data)

		case <-stopCh:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Publish рассылает событие всем подключённым клиентам
// Реализует notify.Notifier; отправка не блокирует вызывающую сторону
func (h *Hub) Publish(event string, payload interface{}) {
	msg := Message{
		Type:      event,
		Data:      payload,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("ws: failed to marshal event %s: %v", event, err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("ws: broadcast buffer full, event %s dropped", event)
	}
}

// broadcastData отправляет данные всем клиентам
// Клиент с переполненным буфером отключается
func (h *Hub) broadcastData(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// ClientCount возвращает число подключённых клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
