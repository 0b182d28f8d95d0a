package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/testhelpers"
	"github.com/foliocraft/backend/internal/types"
)

func TestContactMessageStored(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	analytics := service.NewAnalyticsService(db)
	svc := service.NewMessageService(db, analytics)
	owner, _ := testhelpers.CreateTestUser(t, db)

	msg, err := svc.Create(context.Background(), owner.ID, &types.ContactRequest{
		VisitorEmail: strPtr("visitor@example.com"),
		Message:      "I'd like to hire you",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, msg.UserID)
	assert.False(t, msg.SentAt.IsZero())

	// The contact counts against the owner's interaction totals.
	stats, err := analytics.Get(context.Background(), owner.ID, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, asFloat(stats.Interactions["contact"]))
}

func TestContactUnknownUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewMessageService(db, service.NewAnalyticsService(db))

	_, err := svc.Create(context.Background(), uuid.New(), &types.ContactRequest{Message: "hello?"})
	require.Error(t, err)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestMessagesInboxOwnerOnly(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewMessageService(db, service.NewAnalyticsService(db))
	owner, _ := testhelpers.CreateTestUser(t, db)
	intruder, _ := testhelpers.CreateTestUser(t, db)

	_, err := svc.Create(context.Background(), owner.ID, &types.ContactRequest{Message: "first"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), owner.ID, &types.ContactRequest{Message: "second"})
	require.NoError(t, err)

	messages, err := svc.ListByOwner(context.Background(), owner.ID, owner.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	_, err = svc.ListByOwner(context.Background(), intruder.ID, owner.ID)
	require.Error(t, err)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindForbidden, appErr.Kind)
}
