package dto

// RegisterForm is the multipart registration payload. The avatar and
// cover image arrive as file parts alongside these fields.
type RegisterForm struct {
	FullName string `form:"fullName" binding:"required"`
	Username string `form:"username" binding:"required,min=3,max=30"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

// LoginRequest authenticates by username.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the public user representation.
type UserInfo struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"coverImage,omitempty"`
}

// TokenData is the login response payload.
type TokenData struct {
	Token     string   `json:"token"`
	TokenType string   `json:"tokenType"`
	ExpiresIn int      `json:"expiresIn"`
	User      UserInfo `json:"user"`
}
