package services

import (
	"testing"
	"time"

	"reloop-backend-go/internal/models"
)

func TestGroupConversationsEmpty(t *testing.T) {
	if got := GroupConversations(1, nil); len(got) != 0 {
		t.Fatalf("empty input produced %d summaries", len(got))
	}
}

func TestGroupConversationsOnePerPair(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	viewer := 1
	messages := []models.Message{
		{ID: 1, SenderID: 2, ReceiverID: viewer, ItemID: 5, Content: "older from bob", Created: base},
		{ID: 2, SenderID: viewer, ReceiverID: 2, ItemID: 5, Content: "reply to bob", Created: base.Add(time.Hour)},
		{ID: 3, SenderID: 3, ReceiverID: viewer, ItemID: 9, Content: "carol about the couch", Read: false, Created: base.Add(2 * time.Hour)},
	}

	summaries := GroupConversations(viewer, messages)
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2 (one per (counterparty,item) pair)", len(summaries))
	}

	// Newest pair first.
	if summaries[0].UserID != 3 || summaries[0].ItemID != 9 {
		t.Fatalf("first summary = %+v, want carol/item 9", summaries[0])
	}
	if summaries[0].LastMessage != "carol about the couch" {
		t.Fatalf("first summary content = %q", summaries[0].LastMessage)
	}
	if !summaries[0].Unread {
		t.Fatal("latest message to viewer is unread, summary must be unread")
	}

	// Bob's thread collapses to its latest message, which the viewer
	// sent, so it can never be unread for the viewer.
	if summaries[1].UserID != 2 || summaries[1].ItemID != 5 {
		t.Fatalf("second summary = %+v, want bob/item 5", summaries[1])
	}
	if summaries[1].LastMessage != "reply to bob" {
		t.Fatalf("second summary content = %q", summaries[1].LastMessage)
	}
	if summaries[1].Unread {
		t.Fatal("a message the viewer sent must not count as unread")
	}
}

func TestGroupConversationsSameCounterpartyDifferentItems(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	messages := []models.Message{
		{ID: 1, SenderID: 2, ReceiverID: 1, ItemID: 5, Content: "about the lamp", Created: base},
		{ID: 2, SenderID: 2, ReceiverID: 1, ItemID: 7, Content: "about the drill", Created: base.Add(time.Minute)},
	}
	summaries := GroupConversations(1, messages)
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2 (same user, distinct items)", len(summaries))
	}
}

func TestGroupConversationsTieBrokenByHigherID(t *testing.T) {
	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	messages := []models.Message{
		{ID: 7, SenderID: 2, ReceiverID: 1, ItemID: 5, Content: "later id", Created: when},
		{ID: 3, SenderID: 2, ReceiverID: 1, ItemID: 5, Content: "earlier id", Created: when},
	}
	summaries := GroupConversations(1, messages)
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	if summaries[0].LastMessage != "later id" {
		t.Fatalf("tie must go to the higher message id, got %q", summaries[0].LastMessage)
	}
}

func TestGroupConversationsSentOnlyThreadNeverUnread(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	messages := []models.Message{
		{ID: 1, SenderID: 1, ReceiverID: 4, ItemID: 2, Content: "ping", Created: base},
		{ID: 2, SenderID: 1, ReceiverID: 4, ItemID: 2, Content: "ping again", Created: base.Add(time.Hour)},
	}
	summaries := GroupConversations(1, messages)
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	if summaries[0].Unread {
		t.Fatal("thread with only sent messages must read as seen")
	}
	if summaries[0].LastMessage != "ping again" {
		t.Fatalf("latest sent message should summarize the thread, got %q", summaries[0].LastMessage)
	}
}

func TestGroupConversationsInputOrderIndependent(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	forward := []models.Message{
		{ID: 1, SenderID: 2, ReceiverID: 1, ItemID: 5, Content: "first", Created: base},
		{ID: 2, SenderID: 2, ReceiverID: 1, ItemID: 5, Content: "second", Created: base.Add(time.Minute)},
	}
	reversed := []models.Message{forward[1], forward[0]}

	a := GroupConversations(1, forward)
	b := GroupConversations(1, reversed)
	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Fatalf("grouping depends on input order: %+v vs %+v", a, b)
	}
}
