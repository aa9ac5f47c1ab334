package entities

import "time"

// StorageHealth is the result of pinging the route database.
type StorageHealth struct {
	Status    string `json:"status"`
	Driver    string `json:"driver"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthReport is the body of GET /healthCheck.
type HealthReport struct {
	Status  string        `json:"status"`
	Storage StorageHealth `json:"storage"`
	UpSince time.Time     `json:"up_since"`
	Uptime  string        `json:"uptime"`
}

// Healthy reports whether the dashboard can serve data.
func (h HealthReport) Healthy() bool {
	return h.Status == "ok"
}
