package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createTokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// createTokenResponse echoes minimal identity info next to the token;
// the token itself carries everything the server needs later.
type createTokenResponse struct {
	Token      string    `json:"token"`
	Username   string    `json:"username"`
	Expiration time.Time `json:"expiration"`
}
