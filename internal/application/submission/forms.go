// Package submission orchestrates the two form flows: validate the input,
// format it as a notification, and hand it to the notifier.
package submission

import "github.com/Destiny653/sayessport/internal/shared/validation"

// ContactSubmission is one contact-form message. It lives only for the
// duration of the request.
type ContactSubmission struct {
	Name    string `json:"name" validate:"min=2"`
	Phone   string `json:"phone" validate:"min=6"`
	Email   string `json:"email" validate:"email"`
	Message string `json:"message" validate:"min=10"`
}

// BookingSubmission is one booking request for a specific package. The
// package id and title come from the page that hosted the form, not from
// user-typed input, but are validated all the same.
type BookingSubmission struct {
	FullName              string `json:"fullName" validate:"min=2"`
	DateOfBirth           string `json:"dateOfBirth" validate:"dateformat"`
	Email                 string `json:"email" validate:"email"`
	PhoneNumber           string `json:"phoneNumber" validate:"min=6"`
	Sports                string `json:"sports" validate:"required"`
	SportsClub            string `json:"sportsClub"`
	Position              string `json:"position"`
	TrainingGoals         string `json:"trainingGoals" validate:"min=10"`
	PreferredTrainingDays string `json:"preferredTrainingDays" validate:"required"`
	AdditionalMessage     string `json:"additionalMessage"`
	PackageID             string `json:"packageId" validate:"required"`
	PackageTitle          string `json:"packageTitle" validate:"required"`
}

func (s ContactSubmission) Validate() validation.FieldErrors {
	return validation.ValidateStruct(s)
}

func (s BookingSubmission) Validate() validation.FieldErrors {
	return validation.ValidateStruct(s)
}
