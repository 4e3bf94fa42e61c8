package dto

type UserResponse struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

func ToUserResponse(user interface {
	GetUserID() string
	GetUsername() string
}) UserResponse {
	return UserResponse{
		UserID:   user.GetUserID(),
		Username: user.GetUsername(),
	}
}
