package utils

import (
	"fmt"
	"log"
	"time"

	"agazian/config"

	"github.com/go-resty/resty/v2"
)

const resendEndpoint = "https://api.resend.com/emails"

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// SendEmail delivers a message through the Resend API. When no API key is
// configured the message is logged instead so local development is never
// blocked on email.
func SendEmail(to []string, subject, htmlBody, textBody, replyTo string) error {
	if config.AppConfig.ResendAPIKey == "" {
		log.Printf("Email (not sent, RESEND_API_KEY unset): to=%v subject=%q", to, subject)
		return nil
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetAuthToken(config.AppConfig.ResendAPIKey).
		SetBody(resendPayload{
			From:    config.AppConfig.ContactFrom,
			To:      to,
			Subject: subject,
			HTML:    htmlBody,
			Text:    textBody,
			ReplyTo: replyTo,
		}).
		Post(resendEndpoint)
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	if resp.IsError() {
		log.Printf("Resend error (%d): %s", resp.StatusCode(), resp.String())
		return fmt.Errorf("resend returned status %d", resp.StatusCode())
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML shell
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #111111; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #1c1c1c; border-radius: 8px; overflow: hidden; }
			.header { background-color: #facc15; padding: 30px; text-align: center; }
			.header h1 { color: #111111; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #f5f5f5; line-height: 1.6; }
			.content h2 { color: #facc15; margin-top: 0; }
			.footer { padding: 20px; text-align: center; font-size: 12px; color: #888888; border-top: 1px solid #333333; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>AGAZIAN</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; Agazian Ge'ez Learning. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered learner
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Welcome to Agazian! Your account is ready.</p>
		<p>Browse the courses, pass the quizzes and climb the leaderboard.</p>
	`, name)
	if err := SendEmail([]string{email}, "Welcome to Agazian", getEmailTemplate("Welcome Aboard", body), "", ""); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
	}
}

// SendContactMessage forwards a contact-form submission to the site owner.
// Reply-to is set to the sender so the owner can answer directly.
func SendContactMessage(name, email, message string) error {
	if config.AppConfig.ContactTo == "" {
		log.Printf("Contact message (CONTACT_TO unset): from=%s <%s> message=%q", name, email, message)
		return nil
	}
	text := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	subject := fmt.Sprintf("New contact message from %s", name)
	return SendEmail([]string{config.AppConfig.ContactTo}, subject, "", text, email)
}
