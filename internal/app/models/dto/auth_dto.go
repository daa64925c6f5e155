package dto

// RegisterRequest represents the payload for creating a new account
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password    string `json:"password" binding:"required,min=8" example:"s3cretPass!"`
	DisplayName string `json:"displayName" binding:"required,min=2,max=80" example:"Maria Silva"`
}

// LoginRequest represents the payload for authenticating
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password string `json:"password" binding:"required" example:"s3cretPass!"`
}

// RefreshTokenRequest represents the payload for rotating a token pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required" example:"c4ca4238-a0b9-3382-8dcc-509a6f75849b"`
}

// TokenResponse carries a freshly issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId" example:"1"`
}
