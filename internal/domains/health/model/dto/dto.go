package dto

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"   example:"ok"`
	Database string `json:"database" example:"ok"`
}
