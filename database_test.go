package recallit

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/recallit/core"
	"github.com/poiesic/recallit/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseLifecycle(t *testing.T) {
	db, err := NewDatabase("", WithInMemory())
	require.NoError(t, err)

	ctx := context.Background()
	now := time.Now().UTC()

	added, err := db.ConversationRepository().AddConversations(ctx, &core.ConversationRecord{
		ContactId:   "contact-001",
		ContactName: "Sarah Johnson",
		Transcript:  "We set up the dinner reservations Saturday.",
		Timestamp:   now.Add(-time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, added, 1)

	_, err = db.CommitmentRepository().AddCommitments(ctx, &core.CommitmentRecord{
		ConversationId: added[0].Id,
		ContactId:      "contact-001",
		Text:           "Confirm the reservation",
		Priority:       core.PriorityHigh,
		Status:         core.StatusPending,
		WhoCommitted:   core.CommitterUser,
		Timestamp:      now.Add(-time.Hour),
	})
	require.NoError(t, err)

	db.AnalysisCache().Put(&core.AnalysisRecord{
		ConversationId: added[0].Id,
		Transcript:     added[0].Transcript,
		KeyTopics:      []string{"dinner plans"},
		Timestamp:      now.Add(-time.Hour),
	})

	require.NoError(t, db.Close())
}

func TestDatabaseSearchService(t *testing.T) {
	db, err := NewDatabase("", WithInMemory())
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	_, err = db.ConversationRepository().AddConversations(ctx, &core.ConversationRecord{
		ContactName: "Sarah Johnson",
		Transcript:  "We set up the dinner reservations Saturday.",
		Timestamp:   now.Add(-time.Hour),
	})
	require.NoError(t, err)

	service, err := db.NewSearchService()
	require.NoError(t, err)
	defer service.Close()

	require.NoError(t, service.Initialize(ctx))

	results, err := service.Search(ctx, search.Query{Text: "reservation"})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, core.DocumentTypeConversation, results[0].Type)
	assert.Equal(t, "Sarah Johnson", results[0].Title)
}

func TestDatabaseSearchConfigOption(t *testing.T) {
	config := search.DefaultConfig()
	config.DefaultMaxResults = 5

	db, err := NewDatabase("", WithInMemory(), WithSearchConfig(config))
	require.NoError(t, err)
	defer db.Close()

	service, err := db.NewSearchService()
	require.NoError(t, err)
	defer service.Close()
	assert.NotNil(t, service)
}

func TestDatabaseSettings(t *testing.T) {
	db, err := NewDatabase("", WithInMemory())
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.SettingsRepository().SetSetting(ctx, "key", []byte("value")))

	value, err := db.SettingsRepository().GetSetting(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}
