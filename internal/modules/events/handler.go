package events

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	jwtsvc "gestiondeo/internal/pkg/jwt"
	"gestiondeo/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// El origen ya lo filtra el middleware CORS del router.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws", h.Serve)
}

// Serve valida el token por query string, porque el navegador no puede
// mandar cabeceras en el handshake de WebSocket, y deja la conexión
// registrada hasta que el cliente corte.
func (h *Handler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Unauthorized(c, "token requerido")
		return
	}
	if _, err := h.jwt.ValidateToken(token); err != nil {
		response.Unauthorized(c, "token inválido o expirado")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[events] upgrade fallido: %v", err)
		return
	}

	clientID := uuid.NewString()
	h.hub.Register(clientID, conn)

	// El canal es de solo bajada; leemos únicamente para detectar el cierre.
	go func() {
		defer h.hub.Unregister(clientID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
