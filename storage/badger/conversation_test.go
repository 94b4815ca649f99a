package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/recallit/core"
	"github.com/poiesic/recallit/storage"
)

func TestConversationBasics(t *testing.T) {
	convRepo, commitRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		commitRepo.Close()
		convRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	record := &core.ConversationRecord{
		ContactId:     "contact-001",
		ContactName:   "Sarah Johnson",
		PhoneNumber:   "+15550100",
		Transcript:    "We talked about the dinner reservations for Friday.",
		EmotionalTone: "positive",
		Timestamp:     time.Now().UTC(),
		Duration:      420,
	}

	added, err := convRepo.AddConversations(ctx, record)
	if err != nil {
		t.Fatalf("Failed to add conversation: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(added))
	}
	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added[0].InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := convRepo.GetConversation(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get conversation: %v", err)
	}
	if retrieved.ContactName != "Sarah Johnson" {
		t.Fatalf("Expected 'Sarah Johnson', got '%s'", retrieved.ContactName)
	}
	if retrieved.Duration != 420 {
		t.Fatalf("Expected duration 420, got %d", retrieved.Duration)
	}
}

func TestConversationRecentOrder(t *testing.T) {
	convRepo, commitRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { commitRepo.Close(); convRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	records := []*core.ConversationRecord{
		{Transcript: "Conversation 1", Timestamp: now.Add(-3 * time.Hour)},
		{Transcript: "Conversation 2", Timestamp: now.Add(-2 * time.Hour)},
		{Transcript: "Conversation 3", Timestamp: now.Add(-1 * time.Hour)},
		{Transcript: "Conversation 4", Timestamp: now},
	}
	if _, err := convRepo.AddConversations(ctx, records...); err != nil {
		t.Fatalf("Failed to add conversations: %v", err)
	}

	results, err := convRepo.GetConversations(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get conversations: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(results))
	}
	if results[0].Transcript != "Conversation 4" {
		t.Errorf("Expected 'Conversation 4' first, got '%s'", results[0].Transcript)
	}
	if results[1].Transcript != "Conversation 3" {
		t.Errorf("Expected 'Conversation 3' second, got '%s'", results[1].Transcript)
	}

	all, err := convRepo.GetConversations(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get all conversations: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(all))
	}
}

func TestConversationDateRange(t *testing.T) {
	convRepo, commitRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { commitRepo.Close(); convRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	records := []*core.ConversationRecord{
		{Transcript: "Old", Timestamp: now.Add(-48 * time.Hour)},
		{Transcript: "Yesterday", Timestamp: now.Add(-24 * time.Hour)},
		{Transcript: "Recent", Timestamp: now.Add(-1 * time.Hour)},
	}
	if _, err := convRepo.AddConversations(ctx, records...); err != nil {
		t.Fatalf("Failed to add conversations: %v", err)
	}

	results, err := convRepo.GetConversationsByDateRange(ctx, now.Add(-30*time.Hour), now)
	if err != nil {
		t.Fatalf("Failed to get conversations by date range: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(results))
	}
}

func TestConversationUpdate(t *testing.T) {
	convRepo, commitRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { commitRepo.Close(); convRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	added, err := convRepo.AddConversations(ctx, &core.ConversationRecord{
		Transcript: "Original transcript",
		Timestamp:  now.Add(-2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Failed to add conversation: %v", err)
	}

	added[0].Transcript = "Corrected transcript"
	added[0].Timestamp = now.Add(-1 * time.Hour)
	if _, err := convRepo.UpdateConversations(ctx, added[0]); err != nil {
		t.Fatalf("Failed to update conversation: %v", err)
	}

	retrieved, err := convRepo.GetConversation(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get conversation: %v", err)
	}
	if retrieved.Transcript != "Corrected transcript" {
		t.Errorf("Expected updated transcript, got '%s'", retrieved.Transcript)
	}
	if retrieved.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set")
	}

	// The date index must follow the new timestamp.
	results, err := convRepo.GetConversationsByDateRange(ctx, now.Add(-90*time.Minute), now)
	if err != nil {
		t.Fatalf("Failed to get conversations by date range: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 record in the new range, got %d", len(results))
	}
}

func TestConversationDelete(t *testing.T) {
	convRepo, commitRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { commitRepo.Close(); convRepo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := convRepo.AddConversations(ctx, &core.ConversationRecord{
		Transcript: "To be deleted",
		Timestamp:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Failed to add conversation: %v", err)
	}

	if err := convRepo.DeleteConversations(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete conversation: %v", err)
	}

	if _, err := convRepo.GetConversation(ctx, added[0].Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
