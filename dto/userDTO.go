package dto

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
