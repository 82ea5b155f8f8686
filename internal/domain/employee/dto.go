package employee

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	Employee    *Employee `json:"employee"`
}

type CreateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required" validate:"required,max=120"`
	Username string `json:"username" binding:"required" validate:"required,min=3,max=64"`
	Password string `json:"password" binding:"required" validate:"required,min=6"`
	Role     string `json:"role" binding:"required" validate:"required"`
	Phone    string `json:"phone" validate:"max=32"`
}

type SetStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
