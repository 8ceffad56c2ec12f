package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"akilam/config"
)

// SendEmail sends an HTML email through the configured SMTP relay
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Akilam Technology <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #14213D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #14213D; line-height: 1.6; }
			.content h2 { color: #14213D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FCA311; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>AKILAM TECHNOLOGY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Akilam Technology. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// EmailNotifier sends the workflow's transactional mail. All sends are
// best-effort: they run in a goroutine and failures are only logged.
type EmailNotifier struct{}

// SendRegistrationEmail welcomes a new applicant
func (EmailNotifier) SendRegistrationEmail(email, firstName, course string) {
	subject := "Welcome to Akilam Technology - Registration Confirmed!"
	body := fmt.Sprintf(`
		<p>Welcome %s,</p>
		<p>You have successfully registered for <strong>%s</strong>.</p>
		<p>Our team will reach out to you with the next steps shortly.</p>
	`, firstName, course)

	go SendEmail([]string{email}, subject, getEmailTemplate("Registration Confirmed", body))
}

// SendPaymentSuccessEmail confirms a completed course payment
func (EmailNotifier) SendPaymentSuccessEmail(email, firstName, course string, amount float64) {
	subject := "Payment Confirmed: " + course
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment of <strong>&#8377;%.2f</strong> for <strong>%s</strong>.</p>
		<p>Your seat is confirmed. You will receive the course schedule by email before the batch starts.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Keep this email as your payment confirmation.
		</div>
	`, firstName, amount, course)

	go SendEmail([]string{email}, subject, getEmailTemplate("Payment Successful", body))
}

// SendPaymentReminderEmail nudges an applicant whose registration is still unpaid
func (EmailNotifier) SendPaymentReminderEmail(email, firstName, course string, amount float64) {
	subject := "Complete Your Registration: " + course
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your registration for <strong>%s</strong> is still awaiting payment of <strong>&#8377;%.2f</strong>.</p>
		<p>Complete the payment to confirm your seat.</p>
	`, firstName, course, amount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Payment Pending", body))
}
