package dto

// TokenRequest stores a GitHub access token
type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// TokenResponse confirms a settings change without echoing the token
type TokenResponse struct {
	Message string `json:"message"`
}
