package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Tipos de evento que empuja el portal.
const (
	EventDatosActualizados = "datos-actualizados"
	EventSesionExpirada    = "sesion-expirada"
)

// Event es lo único que viaja por el socket: los clientes reaccionan
// recargando datos, nunca reciben los datos en sí.
type Event struct {
	Tipo string    `json:"tipo"`
	Hora time.Time `json:"hora"`
}

type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[clientID]; exists && old != nil {
		_ = old.Close()
	}
	h.connections[clientID] = conn
}

func (h *Hub) Unregister(clientID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[clientID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, clientID)
	}
}

// Broadcast envía el evento a todas las pestañas conectadas. Las conexiones
// que fallan al escribir se dan de baja en el acto.
func (h *Hub) Broadcast(tipo string) {
	event := Event{Tipo: tipo, Hora: time.Now()}

	h.mutex.RLock()
	targets := make(map[string]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		targets[id] = conn
	}
	h.mutex.RUnlock()

	for id, conn := range targets {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
