package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"reloop-backend-go/internal/config"
	"reloop-backend-go/internal/services"
	"reloop-backend-go/internal/store"
)

type Server struct {
	Store    store.Storage
	Config   config.Config
	StatsHub *services.StatsHub
}

func NewServer(s store.Storage, cfg config.Config, hub *services.StatsHub) *Server {
	return &Server{
		Store:    s,
		Config:   cfg,
		StatsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/users", s.CreateUser)
		api.Get("/users/{userId}", s.GetUser)

		api.Route("/items", func(items chi.Router) {
			items.Get("/", s.ListItems)
			items.Get("/co2-preview", s.CO2Preview)
			items.Post("/", s.CreateItem)
			items.Get("/{itemId}", s.GetItem)
			items.Put("/{itemId}", s.UpdateItem)
			items.Delete("/{itemId}", s.DeleteItem)
		})

		api.Route("/messages", func(messages chi.Router) {
			messages.Get("/user/{userId}", s.UserMessages)
			messages.Get("/conversation", s.Conversation)
			messages.Get("/conversations/{userId}", s.Conversations)
			messages.Post("/", s.SendMessage)
			messages.Put("/{messageId}/read", s.MarkMessageRead)
		})

		api.Route("/repair-tips", func(tips chi.Router) {
			tips.Get("/", s.ListRepairTips)
			tips.Post("/", s.CreateRepairTip)
			tips.Get("/{tipId}", s.GetRepairTip)
		})

		api.Get("/stats", s.Stats)
		api.Get("/health", s.Health)
	})

	r.Get("/ws/stats", s.StatsSocket)
	return r
}
