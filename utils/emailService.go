package utils

import (
	"fmt"
	"log"

	"techstep/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional email through SendGrid. Delivery is
// best-effort; callers hand off a payload and move on.
type Mailer struct {
	client      *sendgrid.Client
	sender      string
	senderName  string
	frontendURL string
}

// NewMailer builds a mailer from configuration.
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		client:      sendgrid.NewSendClient(cfg.SendGridAPIKey),
		sender:      cfg.EmailSender,
		senderName:  cfg.EmailFromName,
		frontendURL: cfg.FrontendURL,
	}
}

func (m *Mailer) send(toEmail, toName, subject, htmlBody string) {
	from := mail.NewEmail(m.senderName, m.sender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	resp, err := m.client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email to %s rejected with status %d: %s", toEmail, resp.StatusCode, resp.Body)
		return
	}
	log.Printf("Email sent to %s: %s", toEmail, subject)
}

func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0B1F3A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #0B1F3A; line-height: 1.6; }
			.content h2 { color: #0B1F3A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2D9CDB; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2D9CDB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>TECHSTEP</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 TechStep. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail hands off the generated credentials for an account
// provisioned during a purchase.
func (m *Mailer) SendWelcomeEmail(email, name, username, password, courseTitle string) {
	subject := "Welcome to TechStep - Your Login Credentials"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for purchasing <strong>%s</strong>! Your account has been created.</p>
		<div class="info-box">
			<strong>Email:</strong> %s<br>
			<strong>Username:</strong> %s<br>
			<strong>Password:</strong> %s
		</div>
		<p>Please change your password after your first login.</p>
		<a href="%s" class="btn">Start Learning</a>
	`, name, courseTitle, email, username, password, m.frontendURL)

	go m.send(email, name, subject, emailTemplate("Welcome Onboard!", body))
}

// SendEnrollmentEmail confirms an enrollment to an existing user.
func (m *Mailer) SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<p>Track your progress from your dashboard and complete all lessons to finish the course.</p>
	`, name, courseTitle)

	go m.send(email, name, subject, emailTemplate("Enrollment Successful", body))
}

// SendBookingEmail confirms a mentor session booking.
func (m *Mailer) SendBookingEmail(email, name, sessionTitle, scheduledAt string) {
	subject := "Mentor Session Booked: " + sessionTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your mentor session <strong>%s</strong> has been requested.</p>
		<div class="info-box">
			<strong>Scheduled:</strong> %s<br>
			<strong>Status:</strong> pending confirmation
		</div>
		<p>You will receive another email once the mentor confirms.</p>
	`, name, sessionTitle, scheduledAt)

	go m.send(email, name, subject, emailTemplate("Booking Received", body))
}
