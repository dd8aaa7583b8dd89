package dto

type AnalyzeInput struct {
	Samples []float64
	Goal    float64
}

type Summary struct {
	Days          int
	Goal          float64
	Samples       []float64
	Total         float64
	Average       float64
	Max           float64
	Min           float64
	DaysGoalMet   int
	Breakdown     string
	Tier          string
	Headline      string
	Encouragement []string
}

type DayOutput struct {
	Value     float64
	Goal      float64
	Met       bool
	Remaining float64
}
