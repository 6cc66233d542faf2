package ai

import (
	"context"
	"testing"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []models.Mentor {
	return []models.Mentor{
		{ID: "m1", Name: "Sarah Chen", Skills: []string{"React", "TypeScript"}},
		{ID: "m2", Name: "James Rodriguez", Skills: []string{"Python", "Machine Learning"}},
		{ID: "m3", Name: "Tom Becker", Skills: []string{"JavaScript", "Node.js"}},
	}
}

func TestMergeMatches_RanksAndFillsMissing(t *testing.T) {
	matches := []MentorMatch{
		{ID: "m2", Score: 90, Reason: "Strong Python background"},
		{ID: "m3", Score: 40, Reason: "Some overlap via JavaScript"},
	}

	merged := MergeMatches(catalog(), matches)

	require.Len(t, merged, 3)
	assert.Equal(t, "m2", merged[0].ID)
	assert.Equal(t, 90, merged[0].MatchScore)
	assert.Equal(t, "m3", merged[1].ID)
	assert.Equal(t, "m1", merged[2].ID)
	assert.Equal(t, 0, merged[2].MatchScore)
	assert.Equal(t, "No specific match found", merged[2].MatchReason)
}

func TestMergeMatches_StableOnTies(t *testing.T) {
	merged := MergeMatches(catalog(), nil)

	require.Len(t, merged, 3)
	assert.Equal(t, "m1", merged[0].ID)
	assert.Equal(t, "m2", merged[1].ID)
	assert.Equal(t, "m3", merged[2].ID)
}

func TestMergeMatches_DoesNotMutateInput(t *testing.T) {
	mentors := catalog()
	_ = MergeMatches(mentors, []MentorMatch{{ID: "m1", Score: 100, Reason: "exact"}})
	assert.Equal(t, 0, mentors[0].MatchScore)
}

func TestOfflineMatchReturnsCatalogUnscored(t *testing.T) {
	o := NewOfflineCollaborator()

	first, mode, err := o.MatchMentors(context.Background(), "python help", catalog())
	require.NoError(t, err)
	assert.Equal(t, ModeOffline, mode)
	assert.Equal(t, catalog(), first)

	second, _, err := o.MatchMentors(context.Background(), "python help", catalog())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOfflinePredictExecutionIsCanned(t *testing.T) {
	o := NewOfflineCollaborator()

	first, err := o.PredictExecution(context.Background(), "console.log(1)", "javascript")
	require.NoError(t, err)
	assert.Equal(t, ModeOffline, first.Mode)
	assert.NotEmpty(t, first.Output)
	assert.NotEmpty(t, first.Explanation)

	second, err := o.PredictExecution(context.Background(), "totally different code", "python")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOfflineIsNeverAvailable(t *testing.T) {
	assert.False(t, NewOfflineCollaborator().IsAvailable())
}
