package report

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/report-relay/pkg/dispatch"
	"github.com/de-tools/report-relay/pkg/models/domain"
	"github.com/de-tools/report-relay/pkg/render"
	"github.com/de-tools/report-relay/pkg/services/source"
)

// Runner executes one report definition end to end: connect, run every
// query in declaration order, assemble the document, render it and dispatch
// the result. Any stage failure aborts the rest of the run.
type Runner struct {
	registry   source.Registry
	renderer   *render.Renderer
	dispatcher dispatch.Dispatcher
}

// RunResult carries the per-destination dispatch outcome of a successful
// run.
type RunResult struct {
	Outcome *dispatch.Outcome
}

func NewRunner(registry source.Registry, renderer *render.Renderer, dispatcher dispatch.Dispatcher) *Runner {
	return &Runner{
		registry:   registry,
		renderer:   renderer,
		dispatcher: dispatcher,
	}
}

func (r *Runner) Execute(ctx context.Context, spec domain.ReportSpec) (*RunResult, error) {
	logger := zerolog.Ctx(ctx)

	connector, err := r.registry.Create(spec.Source.Kind)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("kind", string(spec.Source.Kind)).Msg("connecting to data source")
	conn, err := connector.Connect(ctx, spec.Source.Conn)
	if err != nil {
		return nil, &domain.ConnectionError{Kind: spec.Source.Kind, Err: err}
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close data source connection")
		}
	}()

	doc := domain.Document{Title: spec.Title}
	for i, q := range spec.Queries {
		logger.Info().Str("query", q.Title).Msg("running query")

		rs, err := Execute(ctx, conn, q)
		if err != nil {
			return nil, err
		}

		sections, err := Assemble(q, rs)
		if err != nil {
			return nil, err
		}

		for _, s := range sections {
			doc.Sections = append(doc.Sections, domain.DocumentSection{
				Index:   i,
				Query:   q.Title,
				Content: s,
			})
		}
	}

	payload, err := r.renderer.Render(doc, spec.Send.Format)
	if err != nil {
		return nil, err
	}

	// Raw HTML is unreadable on a terminal, so when the same run also goes
	// out by mail the stdout copy is rendered as markdown instead.
	var terminal *render.RenderedReport
	if spec.Send.Stdout && spec.Send.Mail != nil && spec.Send.Format == domain.FormatHTML {
		terminal, err = r.renderer.Render(doc, domain.FormatMarkdown)
		if err != nil {
			return nil, err
		}
	}

	outcome, err := r.dispatcher.Dispatch(ctx, dispatch.Request{
		Title:    spec.Title,
		Payload:  payload,
		Terminal: terminal,
		Stdout:   spec.Send.Stdout,
		Mail:     spec.Send.Mail,
	})
	if err != nil {
		return nil, err
	}

	if outcome.MailErr != nil {
		if !outcome.StdoutWritten {
			return nil, outcome.MailErr
		}
		logger.Warn().Err(outcome.MailErr).Msg("mail delivery failed")
	}

	return &RunResult{Outcome: outcome}, nil
}
