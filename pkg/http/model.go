package http

// APIResponse is the envelope every endpoint writes. The transport status
// is always 200; Status carries the application-level outcome.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"itemId"`
	Message string                 `json:"message,omitempty" example:"itemId is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// ListDataResponse carries a result list with its total count.
type ListDataResponse struct {
	Rows  interface{} `json:"rows"`
	Total int64       `json:"total"`
}
