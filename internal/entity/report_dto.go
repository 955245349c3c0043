package entity

type GenerateReportRequest struct {
	Extension string
	Products  []Product
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type UnsupportedFormatResponse struct {
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	Supported []string `json:"supported"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
