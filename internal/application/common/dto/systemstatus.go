// Package dto provides common data transfer objects shared across domains.
package dto

// SystemStatus is the liveness report served by the health endpoint.
type SystemStatus struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Version  string `json:"version"`
	Database string `json:"database"`
	// Driver is the configured store (postgres, mysql, sqlite)
	Driver string `json:"driver,omitempty"`
}

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)
