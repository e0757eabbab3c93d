package email

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer delivers onboarding and password-reset mails. It satisfies the
// auth.Notifier interface.
type Mailer struct {
	cfg Config
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendOnboarding(to string, code string, tempPassword string, resetLink string, companyEmail string) error {
	subject := "Employee Registration - Set Your Password"
	body := strings.Join([]string{
		"Welcome to the company!",
		"",
		"Employee Code: " + code,
		"Company Email: " + companyEmail,
		"Temporary Password: " + tempPassword,
		"",
		"Please open the link below to set your new password:",
		resetLink,
		"",
		"This link expires in 15 minutes.",
	}, "\n")
	return m.send(to, subject, body)
}

func (m *Mailer) SendPasswordReset(to string, resetLink string) error {
	subject := "Password Reset Request"
	body := strings.Join([]string{
		"A password reset was requested for your account.",
		"",
		"Open the link below to set a new password:",
		resetLink,
		"",
		"This link expires in 15 minutes. If you did not request a reset, ignore this mail.",
	}, "\n")
	return m.send(to, subject, body)
}

func (m *Mailer) send(to string, subject string, body string) error {
	message := buildMessage(m.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	fromAddr := parseAddress(m.cfg.From)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	client, err := smtpClient(addr, m.cfg.Host, m.cfg.Port)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(fromAddr); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write([]byte(message)); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

func smtpClient(addr string, host string, port int) (*smtp.Client, error) {
	if port == 465 {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, host)
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

func buildMessage(from string, to string, subject string, body string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}
	return strings.Join(headers, "\r\n")
}

func parseAddress(from string) string {
	start := strings.Index(from, "<")
	end := strings.Index(from, ">")
	if start >= 0 && end > start {
		return strings.TrimSpace(from[start+1 : end])
	}
	return strings.TrimSpace(from)
}
