package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/poiesic/recallit"
	"github.com/poiesic/recallit/core"
)

var dbPath = flag.String("db", "./recall_db", "path to BadgerDB database directory")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

type seedConversation struct {
	contactId     string
	contactName   string
	phoneNumber   string
	transcript    string
	emotionalTone string
	daysAgo       int
	duration      int64
}

type seedCommitment struct {
	contactId    string
	text         string
	category     string
	priority     core.Priority
	status       core.CommitmentStatus
	whoCommitted core.Committer
	daysAgo      int
	dueInDays    int
}

var conversations = []seedConversation{
	{
		contactId:     "contact-001",
		contactName:   "Sarah Johnson",
		phoneNumber:   "+15550100",
		transcript:    "We talked about the dinner reservations for Friday. Sarah wants the table by the window and asked me to confirm with the restaurant before Thursday.",
		emotionalTone: "positive",
		daysAgo:       2,
		duration:      420,
	},
	{
		contactId:     "contact-002",
		contactName:   "Miguel Alvarez",
		phoneNumber:   "+15550101",
		transcript:    "Miguel walked me through the quarterly budget numbers. The marketing spend came in under plan and we agreed to revisit the forecast next month.",
		emotionalTone: "neutral",
		daysAgo:       5,
		duration:      1260,
	},
	{
		contactId:     "contact-003",
		contactName:   "Priya Patel",
		phoneNumber:   "+15550102",
		transcript:    "Priya called about the book club. She recommended three novels and promised to send the reading schedule once everyone has voted.",
		emotionalTone: "positive",
		daysAgo:       12,
		duration:      600,
	},
	{
		contactId:     "contact-001",
		contactName:   "Sarah Johnson",
		phoneNumber:   "+15550100",
		transcript:    "Quick follow-up with Sarah about the weekend plans. She is bringing the camping gear and I am handling the groceries and the firewood.",
		emotionalTone: "positive",
		daysAgo:       20,
		duration:      300,
	},
	{
		contactId:     "contact-004",
		contactName:   "Daniel Okafor",
		phoneNumber:   "+15550103",
		transcript:    "Daniel sounded stressed about the apartment lease renewal. The landlord raised the rent and he wants advice before signing anything.",
		emotionalTone: "anxious",
		daysAgo:       40,
		duration:      900,
	},
}

var commitments = []seedCommitment{
	{
		contactId:    "contact-001",
		text:         "Confirm the dinner reservation with the restaurant",
		category:     "personal",
		priority:     core.PriorityHigh,
		status:       core.StatusPending,
		whoCommitted: core.CommitterUser,
		daysAgo:      2,
		dueInDays:    2,
	},
	{
		contactId:    "contact-002",
		text:         "Send the revised budget forecast spreadsheet",
		category:     "work",
		priority:     core.PriorityMedium,
		status:       core.StatusPending,
		whoCommitted: core.CommitterContact,
		daysAgo:      5,
		dueInDays:    10,
	},
	{
		contactId:    "contact-003",
		text:         "Vote on the book club reading list",
		category:     "personal",
		priority:     core.PriorityLow,
		status:       core.StatusCompleted,
		whoCommitted: core.CommitterUser,
		daysAgo:      12,
		dueInDays:    -3,
	},
	{
		contactId:    "contact-004",
		text:         "Review the lease renewal terms with Daniel",
		category:     "personal",
		priority:     core.PriorityHigh,
		status:       core.StatusOverdue,
		whoCommitted: core.CommitterUser,
		daysAgo:      40,
		dueInDays:    -7,
	},
}

func main() {
	db, err := recallit.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	convRecords := make([]*core.ConversationRecord, 0, len(conversations))
	timestamps := make(map[string]time.Time)
	for _, seed := range conversations {
		timestamp := now.AddDate(0, 0, -seed.daysAgo)
		timestamps[seed.contactId] = timestamp
		convRecords = append(convRecords, &core.ConversationRecord{
			ContactId:     seed.contactId,
			ContactName:   seed.contactName,
			PhoneNumber:   seed.phoneNumber,
			Transcript:    seed.transcript,
			EmotionalTone: seed.emotionalTone,
			Timestamp:     timestamp,
			Duration:      seed.duration,
		})
	}
	added, err := db.ConversationRepository().AddConversations(ctx, convRecords...)
	if err != nil {
		panic(err)
	}

	conversationIds := make(map[string]core.ID)
	for _, record := range added {
		conversationIds[record.ContactId] = record.Id
	}

	commitRecords := make([]*core.CommitmentRecord, 0, len(commitments))
	for _, seed := range commitments {
		commitRecords = append(commitRecords, &core.CommitmentRecord{
			ConversationId: conversationIds[seed.contactId],
			ContactId:      seed.contactId,
			Text:           seed.text,
			Category:       seed.category,
			Priority:       seed.priority,
			Status:         seed.status,
			WhoCommitted:   seed.whoCommitted,
			DueDate:        now.AddDate(0, 0, seed.dueInDays),
			Timestamp:      now.AddDate(0, 0, -seed.daysAgo),
		})
	}
	if _, err := db.CommitmentRepository().AddCommitments(ctx, commitRecords...); err != nil {
		panic(err)
	}

	// Cached analyses are in-memory only; seed one so the insight path has
	// content the first time a search service is built over this database.
	db.AnalysisCache().Put(&core.AnalysisRecord{
		ConversationId:      conversationIds["contact-001"],
		Transcript:          conversations[0].transcript,
		KeyTopics:           []string{"dinner plans", "reservations"},
		ActionItems:         []string{"confirm reservation before Thursday"},
		FollowUpSuggestions: []string{"ask about the window table"},
		Timestamp:           timestamps["contact-001"],
	})

	slog.Info("seed complete",
		"conversations", len(added),
		"commitments", len(commitRecords),
		"analyses", db.AnalysisCache().Len())
}
