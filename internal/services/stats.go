package services

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"reloop-backend-go/internal/store"
)

// StatsSample is one platform-wide aggregate snapshot. All three
// totals are recomputed from the store on every capture; nothing is
// cached or invalidated.
type StatsSample struct {
	CapturedAt     time.Time `json:"capturedAt"`
	CO2Saved       int       `json:"co2Saved"`
	ActiveListings int       `json:"activeListings"`
	RepairHeroes   int       `json:"repairHeroes"`
}

func CaptureStats(s store.Storage) (StatsSample, error) {
	co2Saved, err := s.TotalCO2Saved()
	if err != nil {
		return StatsSample{}, err
	}
	activeListings, err := s.TotalActiveListings()
	if err != nil {
		return StatsSample{}, err
	}
	repairHeroes, err := s.TotalRepairHeroes()
	if err != nil {
		return StatsSample{}, err
	}
	return StatsSample{
		CapturedAt:     time.Now().UTC(),
		CO2Saved:       co2Saved,
		ActiveListings: activeListings,
		RepairHeroes:   repairHeroes,
	}, nil
}

// StatsHub fans stats samples out to websocket subscribers so the
// impact banner can update without polling.
type StatsHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	ch      chan StatsSample
}

func NewStatsHub() *StatsHub {
	return &StatsHub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan StatsSample, 16),
	}
}

func (h *StatsHub) Run(ctx context.Context) {
	for {
		select {
		case sample := <-h.ch:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.WriteJSON(sample)
			}
			h.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

func (h *StatsHub) Broadcast(sample StatsSample) {
	select {
	case h.ch <- sample:
	default:
	}
}

func (h *StatsHub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *StatsHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}
