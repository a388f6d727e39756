package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeActivitiesOrdersAcrossCategories(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	t1 := base.Add(3 * time.Hour)
	t2 := base.Add(2 * time.Hour)
	t3 := base.Add(1 * time.Hour)

	approvals := []Activity{{Type: ActivityToRApproved, Title: "a", Timestamp: t2}}
	mobilisations := []Activity{{Type: ActivityAssignmentMobilised, Title: "m", Timestamp: t1}}
	risks := []Activity{{Type: ActivityRiskRaised, Title: "r", Timestamp: t3}}

	merged := MergeActivities(20, approvals, mobilisations, risks)
	require.Len(t, merged, 3)
	assert.Equal(t, "m", merged[0].Title)
	assert.Equal(t, "a", merged[1].Title)
	assert.Equal(t, "r", merged[2].Title)
}

func TestMergeActivitiesTruncates(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var list []Activity
	for i := 0; i < 30; i++ {
		list = append(list, Activity{Title: "x", Timestamp: base.Add(time.Duration(i) * time.Minute)})
	}
	merged := MergeActivities(20, list)
	require.Len(t, merged, 20)
	// Newest first after truncation.
	assert.True(t, merged[0].Timestamp.After(merged[19].Timestamp))
}

func TestMergeActivitiesStableOnTies(t *testing.T) {
	ts := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	first := []Activity{{Title: "first", Timestamp: ts}}
	second := []Activity{{Title: "second", Timestamp: ts}}

	merged := MergeActivities(20, first, second)
	require.Len(t, merged, 2)
	assert.Equal(t, "first", merged[0].Title)
	assert.Equal(t, "second", merged[1].Title)
}

func TestMergeActivitiesEmpty(t *testing.T) {
	merged := MergeActivities(20)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
