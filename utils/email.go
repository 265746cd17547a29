package utils

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/agropetvet/vetcare-app/config"
)

// SMTPMailer sends HTML mail through the configured SMTP relay.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	port, _ := strconv.Atoi(cfg.SMTPPort)
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: port,
		user: cfg.EmailUser,
		pass: cfg.EmailPass,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
