// Package service contains outbound collaborators of the core
package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional emails over SMTP.
type Mailer struct {
	host     string
	port     int
	sender   string
	password string
}

func NewMailer() *Mailer {
	return &Mailer{
		host:     viper.GetString("mail.host"),
		port:     viper.GetInt("mail.port"),
		sender:   viper.GetString("mail.sender"),
		password: viper.GetString("mail.password"),
	}
}

// SendVerificationCode mails the account verification OTP.
func (m *Mailer) SendVerificationCode(to, code string) error {
	body := fmt.Sprintf("Your verification code is <b>%v</b>.<br><br>It expires in 10 minutes.", code)
	return m.send(to, "Verify your email address", body)
}

// SendPasswordResetCode mails the password reset OTP.
func (m *Mailer) SendPasswordResetCode(to, code string) error {
	body := fmt.Sprintf("Your password reset code is <b>%v</b>.<br><br>It expires in 10 minutes. If you didn't request this you can ignore this email.", code)
	return m.send(to, "Reset your password", body)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	if m.host == "" || m.sender == "" {
		return errors.New("mail transport not configured")
	}

	if to == m.sender {
		return errors.New("invalid email address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.sender, m.password)

	return d.DialAndSend(msg)
}
