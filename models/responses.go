package models

// MessageResponse is the body of every plain acknowledgment and of every
// error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on a successful credential match. No session
// or token is issued; UserID is all the caller gets.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}
