package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     "no-reply@coachdesk.app",
	}
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(
	`<p>Hi {{.Name}},</p>
<p>Welcome aboard! Your coaching journey{{if .Program}} with the {{.Program}} program{{end}} starts here.</p>
<p>See you at your first session.</p>`))

var sessionTmpl = template.Must(template.New("session").Parse(
	`<p>Hi {{.Name}},</p>
<p>Your {{.Type}} session is confirmed for {{.Date}} at {{.Clock}}.</p>
<p>Reply to this email if you need to reschedule.</p>`))

func (s *EmailSender) SendWelcome(to, name, program string) error {
	var body bytes.Buffer
	data := struct{ Name, Program string }{name, program}
	if err := welcomeTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("welcome template failed: %w", err)
	}

	return s.send(to, fmt.Sprintf("Welcome, %s!", name), body.String())
}

func (s *EmailSender) SendSessionConfirmation(to, name, sessionType, date, clock string) error {
	var body bytes.Buffer
	data := struct{ Name, Type, Date, Clock string }{name, sessionType, date, clock}
	if err := sessionTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("session template failed: %w", err)
	}

	return s.send(to, fmt.Sprintf("Session confirmed for %s", date), body.String())
}

func (s *EmailSender) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
