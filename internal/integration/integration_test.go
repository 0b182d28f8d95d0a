package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliocraft/backend/internal/models"
	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/testhelpers"
	"github.com/foliocraft/backend/internal/types"
)

// These tests run against a real PostgreSQL container and cover behavior
// the in-memory store cannot: JSONB round-trips and concurrent writes.

func TestPostgresJSONRoundTrip(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)
	owner, _ := testhelpers.CreateTestUser(t, db)

	profiles := service.NewProfileService(db)
	links := map[string]string{
		"github":   "https://github.com/ada",
		"linkedin": "https://linkedin.com/in/ada",
	}
	_, err := profiles.UpdateProfile(context.Background(), owner.ID, owner.ID, &types.UpdateProfileRequest{
		SocialLinks: &links,
	})
	require.NoError(t, err)

	var profile models.Profile
	require.NoError(t, db.First(&profile, "user_id = ?", owner.ID).Error)
	assert.Equal(t, links["github"], profile.SocialLinks["github"])
	assert.Equal(t, links["linkedin"], profile.SocialLinks["linkedin"])

	projects := service.NewProjectService(db)
	created, err := projects.Create(context.Background(), owner.ID, owner.ID, &types.CreateProjectRequest{
		Title:  "JSONB Project",
		Images: []string{"/uploads/project/a.png", "/uploads/project/b.png"},
	})
	require.NoError(t, err)

	fetched, err := projects.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Images, fetched.Images)
}

func TestPostgresConcurrentVisits(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)
	owner, _ := testhelpers.CreateTestUser(t, db)
	analytics := service.NewAnalyticsService(db)

	const visitors = 10
	var wg sync.WaitGroup
	errs := make(chan error, visitors)
	for i := 0; i < visitors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- analytics.RecordVisit(context.Background(), owner.ID)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	snapshot, err := analytics.Get(context.Background(), owner.ID, owner.ID)
	require.NoError(t, err)
	// Every visit lands even when the first reads race on row creation.
	assert.Equal(t, int64(visitors), snapshot.VisitCount)

	var count int64
	db.Model(&models.Analytics{}).Where("user_id = ?", owner.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPostgresDuplicateEmailConstraint(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)
	auth := testhelpers.NewAuthService(db)

	_, _, err := auth.Register(context.Background(), "First", "unique@example.com", "secret-pass")
	require.NoError(t, err)

	_, _, err = auth.Register(context.Background(), "Second", "unique@example.com", "secret-pass")
	require.Error(t, err)
}
