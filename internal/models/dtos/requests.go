package dtos

// PredictRequest asks the fitted linear model for a duration.
type PredictRequest struct {
	DistanceKM int    `json:"distance_km" validate:"required,min=100,max=10000,step100"`
	Category   string `json:"category"`
}

// EstimateRequest asks the rule-based estimator for a duration.
type EstimateRequest struct {
	DistanceKM int `json:"distance_km" validate:"required,min=100,max=10000,step100"`
}
