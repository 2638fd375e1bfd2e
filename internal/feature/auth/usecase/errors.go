// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrMissingFields is returned when a required signup field is absent.
	ErrMissingFields = errors.New("please enter all the fields")

	// ErrPasswordMismatch is returned when password and confirmPassword differ.
	ErrPasswordMismatch = errors.New("passwords are not matching")

	// ErrEmailAlreadyExists is returned when the email is already registered
	// to another account.
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the password does not match the
	// stored hash.
	ErrInvalidCredentials = errors.New("password do not match")

	// ErrOldPasswordRequired is returned when a password change is requested
	// without the current password.
	ErrOldPasswordRequired = errors.New("old password is required to change the password")

	// ErrOldPasswordIncorrect is returned when the supplied current password
	// does not match the stored hash.
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")

	// ErrNewPasswordEmpty is returned when a password change supplies an
	// empty new password.
	ErrNewPasswordEmpty = errors.New("new password cannot be empty")
)
