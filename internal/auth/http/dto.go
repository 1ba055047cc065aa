package http

// SignInResponse is returned by POST /jwt/sign-in.
// Token is only populated for the header transport.
type SignInResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

// SignOutResponse is returned by POST /jwt/sign-out.
type SignOutResponse struct {
	Success bool `json:"success"`
}
