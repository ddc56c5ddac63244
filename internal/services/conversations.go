package services

import (
	"sort"
	"time"

	"reloop-backend-go/internal/models"
)

// ConversationSummary is one logical thread in a user's inbox: all
// messages exchanged with one counterparty about one item, collapsed
// to the most recent message.
type ConversationSummary struct {
	UserID      int       `json:"userId"`
	ItemID      int       `json:"itemId"`
	LastMessage string    `json:"lastMessage"`
	Unread      bool      `json:"unread"`
	Timestamp   time.Time `json:"timestamp"`
}

type conversationKey struct {
	counterpartyID int
	itemID         int
}

// GroupConversations reduces a user's flat message list to one summary
// per (counterparty, item) pair. Within a pair the latest message wins;
// identical timestamps fall back to the higher message id so the
// result does not depend on input order. A thread is unread only when
// its latest message is unread and addressed to the viewer; the
// viewer's own sent messages never count. Output is newest-pair-first.
func GroupConversations(viewerID int, messages []models.Message) []ConversationSummary {
	latest := map[conversationKey]models.Message{}
	for _, message := range messages {
		counterpartyID := message.SenderID
		if message.SenderID == viewerID {
			counterpartyID = message.ReceiverID
		}
		key := conversationKey{counterpartyID: counterpartyID, itemID: message.ItemID}
		current, ok := latest[key]
		if !ok || message.Created.After(current.Created) ||
			(message.Created.Equal(current.Created) && message.ID > current.ID) {
			latest[key] = message
		}
	}

	summaries := make([]ConversationSummary, 0, len(latest))
	for key, message := range latest {
		summaries = append(summaries, ConversationSummary{
			UserID:      key.counterpartyID,
			ItemID:      key.itemID,
			LastMessage: message.Content,
			Unread:      !message.Read && message.ReceiverID == viewerID,
			Timestamp:   message.Created,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Timestamp.Equal(summaries[j].Timestamp) {
			if summaries[i].UserID != summaries[j].UserID {
				return summaries[i].UserID < summaries[j].UserID
			}
			return summaries[i].ItemID < summaries[j].ItemID
		}
		return summaries[i].Timestamp.After(summaries[j].Timestamp)
	})
	return summaries
}
