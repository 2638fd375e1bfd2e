package dto

// UpdateReq represents the request body for the /api/auth/update endpoint.
// All fields are optional; changing the password requires both oldPassword
// and newPassword.
type UpdateReq struct {
	Name        string `json:"name"`
	NewEmail    string `json:"newEmail" binding:"omitempty,email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
