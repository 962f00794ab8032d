package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivitySummaryJSON(t *testing.T) {
	subject := 3
	s := ActivitySummary{
		ID:         "0f8fad5b-d9cb-469f-a165-70867728950e",
		FilePath:   "data/hs/trial1.csv",
		Exercise:   "hs",
		Subject:    &subject,
		Acquired:   true,
		Rows:       7972,
		Primitives: 2,
		Deviations: 2,
	}

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.Equal(t, "hs", decoded["exercise"])
	assert.Equal(t, float64(3), decoded["subject"])
	assert.Equal(t, float64(7972), decoded["rows"])
	assert.Equal(t, false, decoded["labeled"])
	assert.True(t, s.Annotated())
}

func TestActivitySummaryOmitsUnknownMetadata(t *testing.T) {
	b, err := json.Marshal(ActivitySummary{ID: "x", FilePath: "a.csv"})
	require.NoError(t, err)

	assert.NotContains(t, string(b), "exercise")
	assert.NotContains(t, string(b), "subject")
	assert.False(t, ActivitySummary{}.Annotated())
}

func TestDatasetSummaryTotalActivities(t *testing.T) {
	tests := []struct {
		name      string
		exercises []ExerciseSummary
		want      int
	}{
		{name: "empty", want: 0},
		{name: "several", exercises: []ExerciseSummary{
			{Name: "emptyone"},
			{Name: "flexstand", Activities: 2},
			{Name: "hs", Activities: 2, Annotated: 1},
		}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DatasetSummary{Root: "data", Exercises: tt.exercises}
			assert.Equal(t, tt.want, s.TotalActivities())
		})
	}
}
