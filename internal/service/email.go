package service

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Notifier delivers account notifications. The backend only needs the
// password-reset acknowledgment; real delivery lives behind this interface.
type Notifier interface {
	SendPasswordReset(email, name string) error
}

type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
}

func NewEmailService() *EmailService {
	return &EmailService{
		smtpHost:     os.Getenv("SMTP_HOST"),
		smtpPort:     os.Getenv("SMTP_PORT"),
		smtpUsername: os.Getenv("SMTP_USERNAME"),
		smtpPassword: os.Getenv("SMTP_PASSWORD"),
		fromEmail:    os.Getenv("EMAIL_FROM"),
	}
}

func (s *EmailService) SendPasswordReset(email, name string) error {
	caser := cases.Title(language.English)
	subject := fmt.Sprintf("[FolioCraft] %s", caser.String("password reset requested"))
	body := fmt.Sprintf("Hi %s,\n\nWe received a request to reset your password. If this wasn't you, ignore this message.\n", name)

	return s.send(email, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	// If SMTP is not configured, log the email instead
	if s.smtpHost == "" || s.smtpPort == "" {
		log.Printf("SMTP not configured, logging email:\nTo: %s\nSubject: %s\n%s", to, subject, body)
		return nil
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.fromEmail, to, subject, body))
	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)
	return smtp.SendMail(s.smtpHost+":"+s.smtpPort, auth, s.fromEmail, []string{to}, msg)
}
