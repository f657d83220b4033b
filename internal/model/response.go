package model

// MessageResponse is a bare {"message": ...} body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProtectedResponse is returned by GET /api/protected.
type ProtectedResponse struct {
	Message   string `json:"message"`
	UserEmail string `json:"user_email"`
}
