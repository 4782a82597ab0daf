package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsServer(t *testing.T, hub *Hub, nextID func() string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(nextID(), conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestBroadcast_LlegaATodasLasPestanas(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	ids := []string{"tab-1", "tab-2"}
	i := 0
	srv := wsServer(t, hub, func() string { id := ids[i]; i++; return id })

	a := dial(t, srv)
	b := dial(t, srv)

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(EventDatosActualizados)

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		var ev Event
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, EventDatosActualizados, ev.Tipo)
		assert.False(t, ev.Hora.IsZero())
	}
}

func TestRegister_ReemplazaLaConexionAnterior(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	srv := wsServer(t, hub, func() string { return "misma-pestana" })

	dial(t, srv)
	dial(t, srv)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
}
