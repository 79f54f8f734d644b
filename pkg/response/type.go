package response

// Resp is the error envelope for rejected requests.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// AckResp is the body Telegram expects for an accepted update.
type AckResp struct {
	OK bool `json:"ok"`
}

// StatusResp is the body of the health endpoints.
type StatusResp struct {
	Status string `json:"status"`
}

const (
	StatusOK = "ok"

	MessageUnauthorized = "Unauthorized"
	MessageForbidden    = "Forbidden"
)
