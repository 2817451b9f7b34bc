package dto

// APIResponse is the success envelope every endpoint returns.
type APIResponse struct {
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
}

// APIError is the failure envelope.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
