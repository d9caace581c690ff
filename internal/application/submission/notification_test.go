package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactNotification(t *testing.T) {
	n := ContactNotification(ContactSubmission{
		Name:    "Jamal Sayes",
		Phone:   "0723338787",
		Email:   "jamal@example.com",
		Message: "Looking for sprint coaching.",
	})

	assert.Equal(t, "New Contact Form Submission from Jamal Sayes", n.Subject)
	assert.Equal(t, "jamal@example.com", n.ReplyTo)
	assert.Contains(t, n.HTMLBody, "Jamal Sayes")
	assert.Contains(t, n.HTMLBody, "Looking for sprint coaching.")
	assert.Contains(t, n.TextBody, "0723338787")
}

func TestContactNotificationEscapesHTML(t *testing.T) {
	n := ContactNotification(ContactSubmission{
		Name:    "<script>x</script>",
		Phone:   "123456",
		Email:   "a@b.se",
		Message: "ten characters",
	})

	assert.NotContains(t, n.HTMLBody, "<script>")
	assert.Contains(t, n.HTMLBody, "&lt;script&gt;")
}

func TestBookingNotificationSubject(t *testing.T) {
	form := BookingSubmission{
		FullName:     "Alva Svensson",
		Email:        "alva@example.com",
		PackageID:    "3",
		PackageTitle: "Elite Package",
	}
	n := BookingNotification(form)

	assert.Equal(t, "New Booking Request: Elite Package (ID: 3)", n.Subject)
	assert.Equal(t, "alva@example.com", n.ReplyTo)
}

func TestBookingNotificationOptionalFieldsNotProvided(t *testing.T) {
	form := BookingSubmission{
		FullName:              "Alva Svensson",
		DateOfBirth:           "2008-04-17",
		Email:                 "alva@example.com",
		PhoneNumber:           "0723338787",
		Sports:                "Football",
		TrainingGoals:         "Improve sprint speed",
		PreferredTrainingDays: "Mon, Wed",
		PackageID:             "3",
		PackageTitle:          "Elite Package",
	}
	n := BookingNotification(form)

	// sportsClub, position and additionalMessage were omitted.
	assert.Contains(t, n.HTMLBody, "Not provided")
	assert.Contains(t, n.TextBody, "Not provided")
}

func TestBookingNotificationOptionalFieldsIncluded(t *testing.T) {
	form := BookingSubmission{
		FullName:              "Alva Svensson",
		DateOfBirth:           "2008-04-17",
		Email:                 "alva@example.com",
		PhoneNumber:           "0723338787",
		Sports:                "Football",
		SportsClub:            "Malmö FF",
		Position:              "Winger",
		TrainingGoals:         "Improve sprint speed",
		PreferredTrainingDays: "Mon, Wed",
		AdditionalMessage:     "Recovering from a minor sprain.",
		PackageID:             "3",
		PackageTitle:          "Elite Package",
	}
	n := BookingNotification(form)

	assert.Contains(t, n.TextBody, "Malmö FF")
	assert.Contains(t, n.TextBody, "Winger")
	assert.Contains(t, n.TextBody, "Recovering from a minor sprain.")
	assert.NotContains(t, n.TextBody, "Not provided")
}
