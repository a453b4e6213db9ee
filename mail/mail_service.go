package mail

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailService struct {
	dialer *gomail.Dialer
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASSWORD")
	return &MailService{
		dialer: gomail.NewDialer(host, port, user, pass),
	}
}

func (m *MailService) SendActivationMail(to, activationLink string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", os.Getenv("SMTP_USER"))
	message.SetHeader("To", to)
	message.SetHeader("Subject", "Activate your Anchored account")
	message.SetBody("text/html", `
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #f5f5f5;">
			<h2 style="color: #333; text-align: center;">Welcome to Anchored</h2>
			<p>Hello,</p>
			<p>To finish setting up your account, follow the link below:</p>
			<p style="text-align: center;"><a href="`+activationLink+`" style="display: inline-block; padding: 10px 20px; background-color: #007bff; color: #fff; text-decoration: none; border-radius: 5px;">Activate account</a></p>
			<p>The Anchored team.</p>
		</div>
	`)
	return m.dialer.DialAndSend(message)
}

func (m *MailService) SendFamilyInviteMail(to, inviteLink string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", os.Getenv("SMTP_USER"))
	message.SetHeader("To", to)
	message.SetHeader("Subject", "You have been invited to a family on Anchored")
	message.SetBody("text/html", `
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #f5f5f5;">
			<h2 style="color: #333; text-align: center;">Family invitation</h2>
			<p>Hello,</p>
			<p>You have been invited to join a family on Anchored. Follow the link below to accept:</p>
			<p style="text-align: center;"><a href="`+inviteLink+`" style="display: inline-block; padding: 10px 20px; background-color: #28a745; color: #fff; text-decoration: none; border-radius: 5px;">Accept invitation</a></p>
			<p>If you do not have an Anchored account yet, register first and then use the invitation.</p>
			<p>The Anchored team.</p>
		</div>
	`)
	return m.dialer.DialAndSend(message)
}
