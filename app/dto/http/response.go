package http

type ErrorResponse struct {
	Error string `json:"error"`
}

type MeResponse struct {
	UserID    string `json:"user_id"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
}
