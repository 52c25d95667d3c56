package service

import "unistats/internal/admissions/stats"

func statsFilter() stats.SummaryFilter { return stats.SummaryFilter{} }

func programQuery() stats.ProgramQuery { return stats.ProgramQuery{} }
