package models

// SignupRequest is the body of POST /signup. All fields are required.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login. Both fields are required.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SearchBusRequest is the body of POST /search-bus.
//
// Fields are pointers so that an absent field reaches the store as SQL NULL
// instead of an empty string. A NULL criterion matches no rows.
type SearchBusRequest struct {
	Source      *string `json:"source"`
	Destination *string `json:"destination"`
	Time        *string `json:"time"`
}
