// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// SignupReq represents the request body for the /api/auth/signup endpoint.
type SignupReq struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
