package httpapi

import (
	"net/http"

	"github.com/gorilla/websocket"

	"reloop-backend-go/internal/services"
)

// StatsSocket streams platform stats samples to the client. The first
// sample is pushed immediately so the impact banner renders without
// waiting for the next capture tick.
func (s *Server) StatsSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if sample, err := services.CaptureStats(s.Store); err == nil {
		_ = conn.WriteJSON(sample)
	}
	s.StatsHub.Add(conn)
	defer func() {
		s.StatsHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
