package motivation

// Response is returned by POST /get_motivation.
type Response struct {
	Message string `json:"message"`
}

// HealthStatus is returned by GET /health.
type HealthStatus struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Message  string `json:"message"`
}
