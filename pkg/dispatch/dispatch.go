// Package dispatch routes rendered reports to the terminal and to mail
// transport.
package dispatch

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/de-tools/report-relay/pkg/models/domain"
	"github.com/de-tools/report-relay/pkg/render"
)

// Request carries one rendered report to its destinations. Terminal, when
// set, replaces Payload for the stdout write only.
type Request struct {
	Title    string
	Payload  *render.RenderedReport
	Terminal *render.RenderedReport
	Stdout   bool
	Mail     *domain.MailSpec
}

// Outcome reports what happened per destination. A mail failure is carried
// in MailErr instead of failing the dispatch; the stdout write is the only
// fatal path.
type Outcome struct {
	StdoutWritten bool
	MailSent      bool
	MailErr       error
}

// MailSender hands a rendered report to an SMTP server.
type MailSender interface {
	Send(ctx context.Context, mail domain.MailSpec, subject string, payload *render.RenderedReport) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) (*Outcome, error)
}

type dispatcher struct {
	out    io.Writer
	sender MailSender
}

func NewDispatcher(out io.Writer, sender MailSender) Dispatcher {
	if out == nil {
		out = os.Stdout
	}
	return &dispatcher{out: out, sender: sender}
}

func (d *dispatcher) Dispatch(ctx context.Context, req Request) (*Outcome, error) {
	logger := zerolog.Ctx(ctx)
	outcome := &Outcome{}

	if req.Stdout {
		payload := req.Terminal
		if payload == nil {
			payload = req.Payload
		}

		if _, err := fmt.Fprintln(d.out, inlineImages(payload)); err != nil {
			return nil, &domain.DeliveryError{Target: "stdout", Err: err}
		}
		outcome.StdoutWritten = true
	}

	if req.Mail != nil {
		subject := req.Mail.Subject
		if subject == "" {
			subject = req.Title
		}

		logger.Info().Strs("to", req.Mail.To).Msg("sending report as email")
		if err := d.sender.Send(ctx, *req.Mail, subject, req.Payload); err != nil {
			outcome.MailErr = &domain.DeliveryError{Target: "mail", Err: err}
		} else {
			outcome.MailSent = true
		}
	}

	return outcome, nil
}

// inlineImages replaces every cid reference with a base64 data URI so the
// terminal output is self-contained.
func inlineImages(payload *render.RenderedReport) string {
	content := string(payload.Body)
	for _, img := range payload.Images {
		encoded := base64.StdEncoding.EncodeToString(img.Data)
		content = strings.ReplaceAll(
			content,
			"cid:"+img.CID,
			fmt.Sprintf("data:%s;base64,%s", img.MIME, encoded),
		)
	}
	return content
}
