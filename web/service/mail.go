package service

import (
	"fmt"

	"goblog/config"
	"goblog/util/common"

	"gopkg.in/gomail.v2"
)

type MailService struct{}

// SendContactMessage relays one contact-form submission to the operator's
// own address over implicit-TLS SMTP. Single attempt, no retry; the call
// blocks for the duration of the network round trip.
func (s *MailService) SendContactMessage(name, email, phone, message string) error {
	operator := config.GetSMTPEmail()
	if operator == "" {
		return common.NewError("smtp credentials are not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", operator)
	m.SetHeader("To", operator)
	m.SetHeader("Subject", "You got a message")
	m.SetBody("text/plain", fmt.Sprintf(
		"Name : %s\nEmail : %s\nPhone Number : %s\nMessage : %s\n",
		name, email, phone, message,
	))

	d := gomail.NewDialer(config.GetSMTPHost(), config.GetSMTPPort(), operator, config.GetSMTPPassword())
	d.SSL = true
	return d.DialAndSend(m)
}
