package http

// APIResponse is the envelope every endpoint writes. Status mirrors the
// HTTP status code. On failure Data carries []*AppError or, for request
// validation, []ValidationError.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError describes one request field that failed validation.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"StartDate"`
	Message string                 `json:"message,omitempty" example:"StartDate is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
