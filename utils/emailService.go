package utils

import (
	"eduflow/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail delivers an HTML email through SMTP. Best effort: callers run
// it in a goroutine and only log failures.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		return fmt.Errorf("email sender is not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: EduFlow <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// SendWelcomeEmail greets a freshly signed-up user.
func SendWelcomeEmail(name, email string) error {
	body := fmt.Sprintf(`
	<html>
	<body style="font-family: Helvetica, Arial, sans-serif; color: #1e293b;">
		<h2>Welcome to EduFlow, %s!</h2>
		<p>Your account is ready. Browse the catalog, enroll in a course, and start learning today.</p>
		<p>Every lesson comes with AI-generated summaries and quizzes to keep you sharp.</p>
		<p style="color: #64748b; font-size: 12px;">You received this email because you signed up at EduFlow.</p>
	</body>
	</html>`, name)

	return SendEmail([]string{email}, "Welcome to EduFlow", body)
}
