package dtos

import "openflights/insight/internal/dataset"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type CategoriesResponse struct {
	Options []string `json:"options"`
}

type RoutesResponse struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Routes   []dataset.Route `json:"routes"`
}

type SummaryResponse struct {
	Category string          `json:"category"`
	Summary  dataset.Summary `json:"summary"`
	// MeanDistanceLabel is the mean distance formatted with zero decimals.
	MeanDistanceLabel string `json:"mean_distance_label"`
}

type InsightsResponse struct {
	Category string          `json:"category"`
	Longest  []dataset.Route `json:"longest"`
	Shortest []dataset.Route `json:"shortest"`
}

type UploadResponse struct {
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
}

type EstimateResponse struct {
	Strategy   string  `json:"strategy"`
	DistanceKM int     `json:"distance_km"`
	Minutes    float64 `json:"minutes"`
	Samples    int     `json:"samples,omitempty"`
}
