package stats

import "unistats/internal/admissions/models"

func rec(school, program string, avg float64) *models.Record {
	return &models.Record{School: school, Program: program, Average: &avg}
}

func withScholarship(r *models.Record, amount float64) *models.Record {
	r.Scholarship = &amount
	return r
}

func withSuppApp(r *models.Record) *models.Record {
	yes := true
	r.HasSuppApp = &yes
	return r
}
