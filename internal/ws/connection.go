package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Максимальное время записи сообщения клиенту
	writeWait = 10 * time.Second

	// Максимальное время ожидания pong от клиента
	pongWait = 60 * time.Second

	// Период отправки ping; должен быть меньше pongWait
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер входящего сообщения
	maxMessageSize = 512

	// Размер буфера исходящих сообщений клиента
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client одно WebSocket-подключение подписчика
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Handler возвращает HTTP-обработчик, переводящий подключение в WebSocket
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws: upgrade failed: %v", err)
			return
		}

		client := &Client{
			hub:  h,
			conn: conn,
			send: make(chan []byte, sendBufferSize),
		}

		h.register <- client

		go client.writePump()
		go client.readPump()
	}
}

// readPump читает входящие сообщения только ради контроля соединения
// Содержимое от клиентов не обрабатывается
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("ws: read error: %v", err)
			}
			return
		}
	}
}

// writePump передает сообщения концентратора в соединение
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
