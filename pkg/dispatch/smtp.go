package dispatch

import (
	"context"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/de-tools/report-relay/pkg/models/domain"
	"github.com/de-tools/report-relay/pkg/render"
)

type smtpSender struct{}

// NewSMTPSender returns the gomail-backed MailSender. The report body goes
// out as html or plain text depending on its format, with chart images
// embedded inline under their content ids.
func NewSMTPSender() MailSender {
	return smtpSender{}
}

func (smtpSender) Send(
	_ context.Context,
	mail domain.MailSpec,
	subject string,
	payload *render.RenderedReport,
) error {
	m := gomail.NewMessage()
	m.SetHeader("From", mail.From)
	m.SetHeader("To", mail.To...)
	m.SetHeader("Subject", subject)

	contentType := "text/plain"
	if payload.Format == domain.FormatHTML {
		contentType = "text/html"
	}
	m.SetBody(contentType, string(payload.Body))

	for _, img := range payload.Images {
		m.Embed(
			img.CID,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(img.Data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {img.MIME}}),
		)
	}

	return gomail.NewDialer(mail.Host, mail.Port, mail.User, mail.Pass).DialAndSend(m)
}
