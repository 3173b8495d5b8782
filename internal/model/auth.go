package model

// TokenPair is the bearer credential pair issued by the backend. The access
// token is short-lived; the refresh token is exchanged once per rotation.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type User struct {
	UID       string  `json:"uid"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	IsAdmin   bool    `json:"is_admin"`
	Created   *string `json:"created,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
}

type Profile struct {
	UID       string  `json:"uid"`
	OwnerUID  string  `json:"owner_uid"`
	OwnerType string  `json:"owner_type"`
	Name      string  `json:"name"`
	Age       *int    `json:"age,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Status    *string `json:"status,omitempty"`
	Created   string  `json:"created"`
}

type ProfileCreate struct {
	Name   string  `json:"name"`
	Age    *int    `json:"age,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Status *string `json:"status,omitempty"`
}

type ProfileList struct {
	Profiles []Profile `json:"profiles"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
