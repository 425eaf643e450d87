package domain

import "time"

type StoredFile struct {
	Name       string
	Size       int64
	ModifiedAt time.Time
}

type UploadResult struct {
	Filename string
	Path     string
	Size     int64
}

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthDegraded  HealthStatus = "degraded"
	HealthUnhealthy HealthStatus = "unhealthy"
)

type HealthReport struct {
	Status     HealthStatus
	VolumePath string
	Accessible bool
	Message    string
	Err        error
}
