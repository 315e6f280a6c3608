// Package mail relays contact form submissions over SMTP.
package mail

import (
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/leonardomurakami/portfolio/internal/types"
)

// mailhogPort is the conventional MailHog SMTP port. MailHog supports neither
// STARTTLS nor authentication, so both are skipped when it is detected.
const mailhogPort = 1025

// fallbackFrom is used as the envelope sender when no SMTP username is set.
const fallbackFrom = "noreply@localhost"

// ErrIncompleteConfig indicates the sender is missing required settings.
type ErrIncompleteConfig struct {
	Missing string
}

func (e *ErrIncompleteConfig) Error() string {
	return fmt.Sprintf("mail configuration incomplete: %s not set", e.Missing)
}

// Config holds the SMTP settings for the sender.
type Config struct {
	Host         string
	Port         int
	Username     string
	Password     string
	ContactEmail string // destination for contact form relays
}

// Sender delivers contact submissions. Implemented by SMTPSender; faked in
// handler tests.
type Sender interface {
	SendContactEmail(sub types.ContactSubmission) error
}

// SMTPSender sends mail through a plain SMTP connection, with STARTTLS and
// PLAIN auth outside of MailHog mode.
type SMTPSender struct {
	cfg  Config
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates a sender for the given configuration.
func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg, send: smtp.SendMail}
}

// isMailhog reports whether the configured server looks like a local MailHog
// instance.
func (s *SMTPSender) isMailhog() bool {
	host := strings.ToLower(s.cfg.Host)
	return (host == "mailhog" || host == "localhost") && s.cfg.Port == mailhogPort
}

// SendContactEmail relays one submission to the configured contact address.
func (s *SMTPSender) SendContactEmail(sub types.ContactSubmission) error {
	if s.cfg.ContactEmail == "" {
		return &ErrIncompleteConfig{Missing: "CONTACT_EMAIL"}
	}
	if !s.isMailhog() && (s.cfg.Username == "" || s.cfg.Password == "") {
		return &ErrIncompleteConfig{Missing: "SMTP_USERNAME/SMTP_PASSWORD"}
	}

	from := s.cfg.Username
	if from == "" {
		from = fallbackFrom
	}

	subject := fmt.Sprintf("Portfolio Contact Form: Message from %s", sub.Name)
	msg := BuildMessage(from, s.cfg.ContactEmail, subject, contactBody(sub))

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	var auth smtp.Auth
	if !s.isMailhog() {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := s.send(addr, auth, from, []string{s.cfg.ContactEmail}, msg); err != nil {
		return fmt.Errorf("failed to send contact email via %s: %w", addr, err)
	}
	return nil
}

// BuildMessage assembles an RFC 5322 plain-text message.
func BuildMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return []byte(sb.String())
}

func contactBody(sub types.ContactSubmission) string {
	var sb strings.Builder
	sb.WriteString("New contact form submission:\r\n\r\n")
	sb.WriteString("Name: " + sub.Name + "\r\n")
	sb.WriteString("Email: " + sub.Email + "\r\n\r\n")
	sb.WriteString("Message:\r\n")
	sb.WriteString(sub.Message + "\r\n\r\n")
	sb.WriteString("---\r\n")
	sb.WriteString("Sent from your portfolio website\r\n")
	return sb.String()
}
