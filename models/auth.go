// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthData carries the issued bearer credential together with the account it
// belongs to.
type AuthData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AuthResponse is the body returned by POST /api/auth/signin.
type AuthResponse struct {
	Status string   `json:"status"`
	Data   AuthData `json:"data"`
}

// CurrentUserResponse is the body returned by GET /api/auth/me. The user is
// nested under data.user.
type CurrentUserResponse struct {
	Status string          `json:"status"`
	Data   CurrentUserData `json:"data"`
}

// CurrentUserData is the data object of [CurrentUserResponse].
type CurrentUserData struct {
	User *User `json:"user"`
}

// SignUpForm is what the user types into the sign-up screen. Only the
// derived [SignUpRequest] is sent to the server.
type SignUpForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Request converts the form into the sign-up body. New accounts always get
// [RoleUser].
func (f SignUpForm) Request() SignUpRequest {
	return SignUpRequest{
		Name:     f.Name,
		Email:    f.Email,
		Password: f.Password,
		Role:     RoleUser,
	}
}
