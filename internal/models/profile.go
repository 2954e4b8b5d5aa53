package models

// Profile is the signed-in officer shown in the sidebar
type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Unit    string `json:"unit,omitempty"`
	Source  string `json:"source"` // "identity" or "password"
}

// LoginRequest carries either an identity token or officer credentials
type LoginRequest struct {
	Credential string `json:"credential,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt int64   `json:"expires_at"`
	Profile   Profile `json:"profile"`
}
