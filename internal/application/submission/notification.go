package submission

import (
	"fmt"
	"html"
	"strings"
)

const notProvided = "Not provided"

func orNotProvided(v string) string {
	if strings.TrimSpace(v) == "" {
		return notProvided
	}
	return v
}

// ContactNotification formats a validated contact message for delivery.
func ContactNotification(s ContactSubmission) Notification {
	subject := fmt.Sprintf("New Contact Form Submission from %s", s.Name)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Contact Form Submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<h3>Message</h3>
			<p>%s</p>
		</body>
		</html>
	`, html.EscapeString(s.Name), html.EscapeString(s.Email), html.EscapeString(s.Phone), html.EscapeString(s.Message))

	plainBody := fmt.Sprintf(`
New Contact Form Submission

Name:  %s
Email: %s
Phone: %s

Message:
%s
	`, s.Name, s.Email, s.Phone, s.Message)

	return Notification{
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: plainBody,
		ReplyTo:  s.Email,
	}
}

// BookingNotification formats a validated booking request for delivery.
// Optional fields the athlete skipped render as "Not provided".
func BookingNotification(s BookingSubmission) Notification {
	subject := fmt.Sprintf("New Booking Request: %s (ID: %s)", s.PackageTitle, s.PackageID)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Booking Request</h2>
			<p><strong>Package:</strong> %s (ID: %s)</p>
			<h3>Athlete</h3>
			<p><strong>Full name:</strong> %s</p>
			<p><strong>Date of birth:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<h3>Sports Profile</h3>
			<p><strong>Sports:</strong> %s</p>
			<p><strong>Sports club:</strong> %s</p>
			<p><strong>Position:</strong> %s</p>
			<p><strong>Training goals:</strong> %s</p>
			<p><strong>Preferred training days:</strong> %s</p>
			<h3>Additional Message</h3>
			<p>%s</p>
		</body>
		</html>
	`,
		html.EscapeString(s.PackageTitle), html.EscapeString(s.PackageID),
		html.EscapeString(s.FullName), html.EscapeString(s.DateOfBirth),
		html.EscapeString(s.Email), html.EscapeString(s.PhoneNumber),
		html.EscapeString(s.Sports), html.EscapeString(orNotProvided(s.SportsClub)),
		html.EscapeString(orNotProvided(s.Position)), html.EscapeString(s.TrainingGoals),
		html.EscapeString(s.PreferredTrainingDays), html.EscapeString(orNotProvided(s.AdditionalMessage)))

	plainBody := fmt.Sprintf(`
New Booking Request

Package: %s (ID: %s)

Full name:     %s
Date of birth: %s
Email:         %s
Phone:         %s

Sports:                  %s
Sports club:             %s
Position:                %s
Training goals:          %s
Preferred training days: %s

Additional message:
%s
	`, s.PackageTitle, s.PackageID,
		s.FullName, s.DateOfBirth, s.Email, s.PhoneNumber,
		s.Sports, orNotProvided(s.SportsClub), orNotProvided(s.Position),
		s.TrainingGoals, s.PreferredTrainingDays, orNotProvided(s.AdditionalMessage))

	return Notification{
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: plainBody,
		ReplyTo:  s.Email,
	}
}
