package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}
