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

func TestGetPortfolioUnknownUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)

	_, err := svc.GetPortfolio(context.Background(), uuid.New())
	require.Error(t, err)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestGetPortfolioAggregates(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	profiles := service.NewProfileService(db)
	projects := service.NewProjectService(db)
	skills := service.NewSkillService(db)
	owner, _ := testhelpers.CreateTestUser(t, db)

	_, err := projects.Create(context.Background(), owner.ID, owner.ID, &types.CreateProjectRequest{Title: "One"})
	require.NoError(t, err)
	_, err = projects.Create(context.Background(), owner.ID, owner.ID, &types.CreateProjectRequest{Title: "Two"})
	require.NoError(t, err)

	proficiency := 80
	_, err = skills.Create(context.Background(), owner.ID, owner.ID, &types.CreateSkillRequest{Name: "Go", Proficiency: &proficiency})
	require.NoError(t, err)

	view, err := profiles.GetPortfolio(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, view.User.ID)
	assert.Len(t, view.Projects, 2)
	assert.Len(t, view.Skills, 1)
	assert.Empty(t, view.Testimonials)
	// Settings are absent until the first explicit write.
	assert.Nil(t, view.Settings)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	owner, _ := testhelpers.CreateTestUser(t, db)

	first, err := svc.UpdateProfile(context.Background(), owner.ID, owner.ID, &types.UpdateProfileRequest{
		Bio:   strPtr("Engineer and painter"),
		Phone: strPtr("+1-555-0100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineer and painter", first.Bio)

	links := map[string]string{"github": "https://github.com/ada"}
	second, err := svc.UpdateProfile(context.Background(), owner.ID, owner.ID, &types.UpdateProfileRequest{
		SocialLinks: &links,
	})
	require.NoError(t, err)
	// The earlier fields survive an update that does not mention them.
	assert.Equal(t, "Engineer and painter", second.Bio)
	assert.Equal(t, "+1-555-0100", second.Phone)
	assert.Equal(t, "https://github.com/ada", second.SocialLinks["github"])
}

func TestUpdateProfileOtherUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	owner, _ := testhelpers.CreateTestUser(t, db)
	intruder, _ := testhelpers.CreateTestUser(t, db)

	_, err := svc.UpdateProfile(context.Background(), intruder.ID, owner.ID, &types.UpdateProfileRequest{Bio: strPtr("defaced")})
	require.Error(t, err)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindForbidden, appErr.Kind)
}

func TestUpsertSettings(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewProfileService(db)
	owner, _ := testhelpers.CreateTestUser(t, db)

	scheme := map[string]string{"primary": "#112233"}
	created, err := svc.UpsertSettings(context.Background(), owner.ID, owner.ID, &types.UpsertSettingsRequest{
		ColorScheme: &scheme,
		TemplateID:  strPtr("modern"),
	})
	require.NoError(t, err)
	assert.Equal(t, "modern", created.TemplateID)
	assert.Equal(t, "#112233", created.ColorScheme["primary"])

	updated, err := svc.UpsertSettings(context.Background(), owner.ID, owner.ID, &types.UpsertSettingsRequest{
		Font: strPtr("Inter"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Inter", updated.Font)
	assert.Equal(t, "modern", updated.TemplateID)
	assert.Equal(t, created.ID, updated.ID)
}
