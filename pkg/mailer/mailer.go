package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP settings; an empty Host disables delivery
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends transactional mail over SMTP
type Mailer struct {
	cfg Config
}

func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether SMTP delivery is configured
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != ""
}

var dialAndSend = func(d *gomail.Dialer, msgs ...*gomail.Message) error {
	return d.DialAndSend(msgs...)
}

// Send delivers a single HTML message
func (m *Mailer) Send(to, subject, htmlBody string) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialAndSend(d, msg)
}

// CodeHTML renders the body for code-bearing mail (two-factor, reset)
func CodeHTML(action, code string, ttl time.Duration) string {
	minutes := int(ttl.Minutes())
	return fmt.Sprintf(`<p>Hello,</p><p>Your code for <b>%s</b> is: <b style="font-size:18px;">%s</b>.</p><p>It expires in %d minutes. Do not share it with anyone.</p>`, action, code, minutes)
}
