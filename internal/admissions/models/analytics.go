package models

// Summary is the dataset-wide analytics view.
// Pointer statistics are nil when no positive averages are present.
type Summary struct {
	TotalRecords int
	Mean         *float64
	Min          *float64
	Max          *float64
	Median       *float64
	StdDev       *float64
	Universities []UniversityStats
	Categories   []CategoryStats
	Distribution []DistributionBucket
	Competitive  []ProgramStats
	Accessible   []ProgramStats
	Scholarships []ScholarshipEntry
	AllSchools   []string
}

// UniversityStats aggregates every record of one school.
type UniversityStats struct {
	School string
	Count  int
	Mean   float64
	Min    float64
	Max    float64
}

// CategoryStats aggregates records whose program falls in a keyword category.
type CategoryStats struct {
	Name  string
	Count int
	Mean  float64
}

// DistributionBucket counts records whose average lies in [Min, Max].
type DistributionBucket struct {
	Label string
	Min   float64
	Max   float64
	Count int
}

// ScholarshipEntry is a single record that reported a scholarship.
type ScholarshipEntry struct {
	Key         ProgramKey
	Average     float64
	Scholarship float64
}

// ProgramListing is one row of the program finder.
type ProgramListing struct {
	Key             ProgramKey
	Mean            float64
	Min             float64
	Max             float64
	Count           int
	HasScholarships bool
	HasSuppApp      bool
}

// ProgramSearch is a filtered, sorted, possibly truncated program finder result.
type ProgramSearch struct {
	Programs     []ProgramListing
	TotalMatches int
	SchoolCount  int
}
