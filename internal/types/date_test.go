package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliocraft/backend/internal/types"
)

func TestDateUnmarshal(t *testing.T) {
	var d types.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &d))
	assert.Equal(t, "2024-03-15", d.Format("2006-01-02"))

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T10:30:00Z"`), &d))
	assert.Equal(t, "2024-03-15", d.Format("2006-01-02"))

	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240315`), &d))
}

func TestNullableDateStates(t *testing.T) {
	type payload struct {
		EndDate types.NullableDate `json:"end_date"`
	}

	var omitted payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &omitted))
	assert.False(t, omitted.EndDate.Present)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"end_date":null}`), &null))
	assert.True(t, null.EndDate.Present)
	assert.False(t, null.EndDate.Valid)

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"end_date":"2022-12-31"}`), &set))
	assert.True(t, set.EndDate.Present)
	assert.True(t, set.EndDate.Valid)
	assert.Equal(t, "2022-12-31", set.EndDate.Time.Format("2006-01-02"))
}

func TestUpdateTimelineEntryUpdates(t *testing.T) {
	var req types.UpdateTimelineEntryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","end_date":null}`), &req))

	updates := req.Updates()
	assert.Equal(t, "New", updates["title"])
	value, present := updates["end_date"]
	require.True(t, present)
	assert.Nil(t, value)
	_, present = updates["description"]
	assert.False(t, present)
}

func TestUpdateProjectUpdatesOnlySetFields(t *testing.T) {
	var req types.UpdateProjectRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":""}`), &req))

	updates := req.Updates()
	// An explicit empty string is a real write, not an omission.
	value, present := updates["description"]
	require.True(t, present)
	assert.Equal(t, "", value)
	_, present = updates["title"]
	assert.False(t, present)
}
