package model

type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// StatusOf maps a reachability probe to UP or DOWN
func StatusOf(reachable bool) HealthStatus {
	if reachable {
		return StatusUp
	}
	return StatusDown
}

// ComponentHealthStatus is the status of one backing store with driver or pool details
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse is the body of /health
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Cache    ComponentHealthStatus `json:"cache"`
}

// NewHealthResponse is DOWN when the database is not UP or the cache is DOWN.
// A disabled cache reports UNKNOWN and leaves the overall status alone.
func NewHealthResponse(database, cache ComponentHealthStatus) HealthResponse {
	status := StatusUp
	if database.Status != StatusUp || cache.Status == StatusDown {
		status = StatusDown
	}
	return HealthResponse{Status: status, Database: database, Cache: cache}
}
