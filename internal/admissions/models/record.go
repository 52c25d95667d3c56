package models

import "math"

// Record is a single admission data point as stored by the ingestion process.
// Optional columns are pointers so a missing value is distinguishable from a zero value.
type Record struct {
	ID              string   `json:"id" db:"id"`
	School          string   `json:"school" db:"school"`
	Program         string   `json:"program" db:"program"`
	OUACCode        *string  `json:"ouac_code,omitempty" db:"ouac_code"`
	Average         *float64 `json:"average,omitempty" db:"average"`
	Decision        *string  `json:"decision,omitempty" db:"decision"`
	ApplicationDate *string  `json:"application_date,omitempty" db:"application_date"`
	DecisionDate    *string  `json:"decision_date,omitempty" db:"decision_date"`
	Group           *string  `json:"group,omitempty" db:"grp"`
	Citizenship     *string  `json:"citizenship,omitempty" db:"citizenship"`
	Province        *string  `json:"province,omitempty" db:"province"`
	HasSuppApp      *bool    `json:"has_supp_app,omitempty" db:"has_supp_app"`
	SuppAppInfo     *string  `json:"supp_app_info,omitempty" db:"supp_app_info"`
	Comments        *string  `json:"comments,omitempty" db:"comments"`
	Scholarship     *float64 `json:"scholarship,omitempty" db:"scholarship"`
}

// AverageValue reports the record's average and whether it is a usable number.
func (r *Record) AverageValue() (float64, bool) {
	if r == nil || r.Average == nil || math.IsNaN(*r.Average) {
		return 0, false
	}
	return *r.Average, true
}

// Code returns the raw OUAC code, or "" when absent.
func (r *Record) Code() string {
	if r == nil || r.OUACCode == nil {
		return ""
	}
	return *r.OUACCode
}

// ScholarshipValue returns the reported scholarship, or 0 when absent.
func (r *Record) ScholarshipValue() float64 {
	if r == nil || r.Scholarship == nil || math.IsNaN(*r.Scholarship) {
		return 0
	}
	return *r.Scholarship
}

// RequiresSuppApp reports whether the record flags a supplementary application.
func (r *Record) RequiresSuppApp() bool {
	return r != nil && r.HasSuppApp != nil && *r.HasSuppApp
}
