package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unistats/internal/admissions/models"
)

func TestPercentile(t *testing.T) {
	sorted := []float64{80, 90, 100}

	assert.InDelta(t, 100.0/3, Percentile(sorted, 85), 1e-9)
	assert.Equal(t, 0.0, Percentile(sorted, 80), "equal values are not counted as below")
	assert.Equal(t, 0.0, Percentile(sorted, 10))
	assert.Equal(t, 100.0, Percentile(sorted, 100.5))
	assert.Equal(t, 0.0, Percentile(nil, 90))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		v    float64
		want models.Chance
	}{
		{93, models.ChanceHigh},
		{99, models.ChanceHigh},
		{92.99, models.ChanceMedium},
		{91, models.ChanceMedium},
		{89, models.ChanceMedium},
		{88, models.ChanceMedium},
		{87.99, models.ChanceLow},
		{85, models.ChanceLow},
		{80, models.ChanceLow},
		{79.99, models.ChanceReach},
		{75, models.ChanceReach},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(90, 80, tt.v), "v=%v", tt.v)
	}
}

func TestEvaluateAll(t *testing.T) {
	groups := Aggregate([]*models.Record{
		rec("Waterloo", "CS", 95), rec("Waterloo", "CS", 97), rec("Waterloo", "CS", 99),
		rec("Guelph", "Biology", 80), rec("Guelph", "Biology", 84),
		rec("York", "History", 75),
	})
	keys := []models.ProgramKey{
		{School: "Waterloo", Program: "CS"},
		{School: "Guelph", Program: "Biology"},
		{School: "York", Program: "History"},
		{School: "Nowhere", Program: "Nothing"},
	}

	results := EvaluateAll(groups, keys, 90)
	require.Len(t, results, 2, "single-record and unknown groups are skipped")

	assert.Equal(t, "Guelph", results[0].Key.School)
	assert.Equal(t, 100.0, results[0].Percentile)
	assert.Equal(t, models.ChanceHigh, results[0].Chance)
	assert.Equal(t, 2, results[0].DataPoints)

	assert.Equal(t, "Waterloo", results[1].Key.School)
	assert.Equal(t, 0.0, results[1].Percentile)
	assert.Equal(t, models.ChanceReach, results[1].Chance)
	assert.Equal(t, Recommendation(models.ChanceReach), results[1].Recommendation)
}

func TestCandidates(t *testing.T) {
	groups := Aggregate([]*models.Record{
		rec("Waterloo", "CS", 95), rec("Waterloo", "CS", 97), rec("Waterloo", "CS", 99),
		rec("Guelph", "Biology", 80), rec("Guelph", "Biology", 84),
		rec("York", "History", 75),
	})

	all := Candidates(groups, "", 20)
	require.Len(t, all, 2)
	assert.Equal(t, "CS", all[0].Key.Program, "most data points first")

	bySchool := Candidates(groups, "  guelph ", 20)
	require.Len(t, bySchool, 1)
	assert.Equal(t, "Biology", bySchool[0].Key.Program)

	limited := Candidates(groups, "", 1)
	assert.Len(t, limited, 1)
}
