package types

// ApiResponse is the JSON envelope every endpoint responds with.
type ApiResponse struct {
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Token   string            `json:"token,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}
