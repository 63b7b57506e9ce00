package main

import (
	"encoding/json"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Conn manages a single WebSocket client session
type Conn struct {
	ID     string
	Name   string
	ws     *websocket.Conn
	binary bool       // msgpack frames instead of JSON text
	mu     sync.Mutex // protects ws writes and closed
	closed bool
}

// NewConn creates a new connection wrapper
func NewConn(ws *websocket.Conn, binary bool) *Conn {
	return &Conn{
		ID:     uuid.New().String(),
		ws:     ws,
		binary: binary,
	}
}

// encode serializes msg in the connection's wire format
func (c *Conn) encode(msg interface{}) (int, []byte, error) {
	if c.binary {
		data, err := msgpack.Marshal(msg)
		return websocket.BinaryMessage, data, err
	}
	data, err := json.Marshal(msg)
	return websocket.TextMessage, data, err
}

// decode parses an incoming frame in either format
func decode(frameType int, raw []byte, msg *ClientMessage) error {
	if frameType == websocket.BinaryMessage {
		return msgpack.Unmarshal(raw, msg)
	}
	return json.Unmarshal(raw, msg)
}

// Send serializes msg and writes it to the WebSocket
func (c *Conn) Send(msg interface{}) error {
	frameType, data, err := c.encode(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	return c.ws.WriteMessage(frameType, data)
}

// Close marks connection closed
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.ws.Close()
}

// ConnManager manages all active connections
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// Add registers a connection
func (m *ConnManager) Add(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
}

// Remove unregisters a connection
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Get returns a connection by ID
func (m *ConnManager) Get(id string) (*Conn, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.conns[id]
	return c, ok
}

// Count returns the number of active connections
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// Snapshot returns a copy of all current connections, ordered by ID
func (m *ConnManager) Snapshot() []*Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// ReadLoop handles incoming messages for a connection until it disconnects.
// Compact protocol: single-char "t" field for message type.
//   "j" = join, "k" = key, "p" = pause, "f" = faster
// onMessage is called for every well-formed message.
// onDisconnect is called when the connection closes.
func (c *Conn) ReadLoop(
	onMessage func(conn *Conn, msg ClientMessage),
	onDisconnect func(conn *Conn),
) {
	defer func() {
		onDisconnect(c)
		c.Close()
	}()

	for {
		frameType, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error for %s: %v", c.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := decode(frameType, raw, &msg); err != nil {
			log.Printf("bad message from %s: %v", c.ID, err)
			continue
		}

		switch msg.Type {
		case MsgJoin:
			name := msg.Name
			if name == "" {
				name = "Player"
			}
			c.Name = name
		case MsgKey, MsgPause, MsgFaster:
		default:
			log.Printf("unknown message type %q from %s", msg.Type, c.ID)
			continue
		}
		onMessage(c, msg)
	}
}
