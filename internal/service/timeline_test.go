package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/testhelpers"
	"github.com/foliocraft/backend/internal/types"
)

func mustDate(t *testing.T, s string) types.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return types.Date{Time: parsed}
}

func TestTimelineCreateOngoing(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewTimelineService(db)
	owner, _ := testhelpers.CreateTestUser(t, db)

	entry, err := svc.Create(context.Background(), owner.ID, owner.ID, &types.CreateTimelineEntryRequest{
		Title:     "Current Role",
		StartDate: mustDate(t, "2023-04-01"),
	})
	require.NoError(t, err)
	assert.Nil(t, entry.EndDate)
}

func TestTimelineReversedDatesAccepted(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewTimelineService(db)
	owner, _ := testhelpers.CreateTestUser(t, db)

	end := mustDate(t, "2020-01-01")
	entry, err := svc.Create(context.Background(), owner.ID, owner.ID, &types.CreateTimelineEntryRequest{
		Title:     "Odd Entry",
		StartDate: mustDate(t, "2021-06-01"),
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.NotNil(t, entry.EndDate)
	assert.True(t, entry.EndDate.Before(entry.StartDate))
}

func TestTimelineUpdateEndDateStates(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewTimelineService(db)
	owner, _ := testhelpers.CreateTestUser(t, db)

	end := mustDate(t, "2022-12-31")
	entry, err := svc.Create(context.Background(), owner.ID, owner.ID, &types.CreateTimelineEntryRequest{
		Title:     "Past Role",
		StartDate: mustDate(t, "2020-01-01"),
		EndDate:   &end,
	})
	require.NoError(t, err)

	// An update that omits end_date leaves the stored value.
	var omitted types.UpdateTimelineEntryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Past Role (updated)"}`), &omitted))
	updated, err := svc.Update(context.Background(), owner.ID, entry.ID, &omitted)
	require.NoError(t, err)
	assert.Equal(t, "Past Role (updated)", updated.Title)
	require.NotNil(t, updated.EndDate)

	// An explicit null clears it, marking the entry ongoing again.
	var cleared types.UpdateTimelineEntryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"end_date":null}`), &cleared))
	updated, err = svc.Update(context.Background(), owner.ID, entry.ID, &cleared)
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)

	// A concrete date sets it back.
	var set types.UpdateTimelineEntryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"end_date":"2023-06-30"}`), &set))
	updated, err = svc.Update(context.Background(), owner.ID, entry.ID, &set)
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2023-06-30", updated.EndDate.Format("2006-01-02"))
}
