package models

// ProgramKey identifies an aggregation group by exact school and program text.
type ProgramKey struct {
	School  string `json:"school"`
	Program string `json:"program"`
}

// ProgramStats summarizes the averages reported for one (school, program) group.
// Averages is sorted ascending.
type ProgramStats struct {
	Key              ProgramKey
	Count            int
	Averages         []float64
	Mean             float64
	Min              float64
	Max              float64
	ScholarshipCount int
	SuppAppCount     int
}

// Chance is a coarse admission likelihood label.
type Chance string

const (
	ChanceHigh   Chance = "high"
	ChanceMedium Chance = "medium"
	ChanceLow    Chance = "low"
	ChanceReach  Chance = "reach"
)

// ChanceResult is the evaluation of a candidate average against one program.
type ChanceResult struct {
	Key            ProgramKey
	Mean           float64
	Min            float64
	Max            float64
	DataPoints     int
	Chance         Chance
	Percentile     float64
	Recommendation string
}
