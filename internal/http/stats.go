package httpapi

import (
	"net/http"

	"reloop-backend-go/internal/services"
)

type statsResponse struct {
	CO2Saved       int `json:"co2Saved"`
	ActiveListings int `json:"activeListings"`
	RepairHeroes   int `json:"repairHeroes"`
}

type healthResponse struct {
	Status string                `json:"status"`
	System services.HealthSample `json:"system"`
}

func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	sample, err := services.CaptureStats(s.Store)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	WriteJSON(w, http.StatusOK, statsResponse{
		CO2Saved:       sample.CO2Saved,
		ActiveListings: sample.ActiveListings,
		RepairHeroes:   sample.RepairHeroes,
	})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		System: services.CaptureHealth(s.Config.HealthDiskPath),
	})
}
