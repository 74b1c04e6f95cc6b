package api

// QuoteRequest is the body of POST /quote
type QuoteRequest struct {
	// Model is the registered model name; inferred from the part number when empty
	Model string `json:"model"`

	// PartNumber is the raw dash-delimited part number
	PartNumber string `json:"part_number" binding:"required"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Time    string `json:"time"`
}

// EnginesResponse is returned by GET /engines
type EnginesResponse struct {
	Models []string `json:"models"`
	Count  int      `json:"count"`
}

// ErrorResponse is returned for requests that never reach the engine
type ErrorResponse struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}
