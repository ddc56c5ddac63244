package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"reloop-backend-go/internal/services"
	"reloop-backend-go/internal/store"
)

type sendMessageRequest struct {
	SenderID   *int   `json:"senderId"`
	ReceiverID *int   `json:"receiverId"`
	ItemID     *int   `json:"itemId"`
	Content    string `json:"content"`
}

func (s *Server) UserMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		WriteServiceError(w, services.ErrBadRequest("Invalid user ID"), "Invalid user ID")
		return
	}
	messages, err := s.Store.GetMessagesForUser(userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	WriteJSON(w, http.StatusOK, messages)
}

func (s *Server) Conversation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	user1ID, err1 := strconv.Atoi(query.Get("user1"))
	user2ID, err2 := strconv.Atoi(query.Get("user2"))
	itemID, err3 := strconv.Atoi(query.Get("item"))
	if err1 != nil || err2 != nil || err3 != nil {
		WriteServiceError(w, services.ErrBadRequest("Invalid user or item IDs"), "Invalid user or item IDs")
		return
	}
	messages, err := s.Store.GetConversation(user1ID, user2ID, itemID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch conversation")
		return
	}
	WriteJSON(w, http.StatusOK, messages)
}

// Conversations returns the user's inbox view: one summary per
// (counterparty, item) thread, newest first.
func (s *Server) Conversations(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		WriteServiceError(w, services.ErrBadRequest("Invalid user ID"), "Invalid user ID")
		return
	}
	messages, err := s.Store.GetMessagesForUser(userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch conversations")
		return
	}
	WriteJSON(w, http.StatusOK, services.GroupConversations(userID, messages))
}

func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid message data")
		return
	}
	validation := &services.ValidationError{}
	if req.SenderID == nil {
		validation.Add("senderId", "senderId is required")
	}
	if req.ReceiverID == nil {
		validation.Add("receiverId", "receiverId is required")
	}
	if req.ItemID == nil {
		validation.Add("itemId", "itemId is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		validation.Add("content", "content is required")
	}
	if err := validation.OrNil(); err != nil {
		WriteServiceError(w, err, "Invalid message data")
		return
	}
	message, err := s.Store.CreateMessage(store.NewMessage{
		SenderID:   *req.SenderID,
		ReceiverID: *req.ReceiverID,
		ItemID:     *req.ItemID,
		Content:    req.Content,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create message")
		return
	}
	WriteJSON(w, http.StatusCreated, message)
}

func (s *Server) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	messageID, err := strconv.Atoi(chi.URLParam(r, "messageId"))
	if err != nil {
		WriteServiceError(w, services.ErrBadRequest("Invalid message ID"), "Invalid message ID")
		return
	}
	marked, err := s.Store.MarkMessageRead(messageID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update message")
		return
	}
	if !marked {
		WriteServiceError(w, services.ErrNotFound("Message not found"), "Failed to update message")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
