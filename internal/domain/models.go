package domain

// Role is a user's membership tier on the platform.
type Role string

const (
	RoleSubscriber Role = "subscriber"
	RoleCreator    Role = "creator"
)

func (r Role) Valid() bool {
	return r == RoleSubscriber || r == RoleCreator
}

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

// RegisterRequest is the registration submission as posted by the frontend.
// Role is optional and defaults to subscriber.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"displayName" validate:"required"`
	Role        Role   `json:"role" validate:"omitempty,oneof=subscriber creator"`
}

// RegisterResult is what a successful registration hands back: the session
// credential plus an echo of the accepted user. Nothing is persisted.
type RegisterResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
