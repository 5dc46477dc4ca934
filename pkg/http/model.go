package http

// APIResponse represents standard API response.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// APIResponse400Err represents 400 error response.
type APIResponse400Err struct {
	Status  int               `json:"status" example:"400"`
	Message string            `json:"message" example:"Bad Request"`
	Data    []ValidationError `json:"data,omitempty"`
}

// APIResponse502Err represents 502 error response (upstream failure).
type APIResponse502Err struct {
	Status  int    `json:"status" example:"502"`
	Message string `json:"message" example:"Bad Gateway"`
	Data    string `json:"data,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"date"`
	Message string                 `json:"message,omitempty" example:"Date is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
