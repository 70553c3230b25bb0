package response

// APIResponse is the single envelope every endpoint emits: a status plus
// exactly one of data (success) or message (error).
type APIResponse struct {
	Status  string      `json:"status"`            // "success" or "error"
	Data    interface{} `json:"data,omitempty"`    // payload for success
	Message string      `json:"message,omitempty"` // human-readable error detail
}
