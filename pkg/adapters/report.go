package adapters

import (
	"strings"

	"github.com/de-tools/report-relay/pkg/models/config"
	"github.com/de-tools/report-relay/pkg/models/domain"
)

func MapReportConfigToDomain(cfg config.Report) domain.ReportSpec {
	spec := domain.ReportSpec{
		Title: cfg.Title,
		Source: domain.SourceSpec{
			Kind: domain.SourceKind(cfg.Source.Kind),
			Conn: cfg.Source.Conn,
		},
		Send: domain.SendSpec{
			Stdout: cfg.Send.Stdout,
			Format: mapFormat(cfg.Send.Format),
		},
	}

	if cfg.Send.Mail != nil {
		spec.Send.Mail = MapMailConfigToDomain(*cfg.Send.Mail, cfg.Title)
	}

	for _, q := range cfg.Queries {
		spec.Queries = append(spec.Queries, MapQueryConfigToDomain(q))
	}

	return spec
}

func MapQueryConfigToDomain(q config.Query) domain.QuerySpec {
	spec := domain.QuerySpec{
		Title: q.Title,
		SQL:   q.SQL,
	}

	for _, f := range q.Fields {
		spec.Fields = append(spec.Fields, domain.FieldSpec{
			Field: f.Field,
			Title: f.Title,
			Kind:  domain.Kind(f.Kind),
		})
	}

	if q.Chart != nil {
		spec.Chart = MapChartConfigToDomain(*q.Chart)
	}

	return spec
}

func MapChartConfigToDomain(c config.Chart) *domain.ChartSpec {
	spec := &domain.ChartSpec{
		Kind:   domain.ChartKind(c.Kind),
		KeysBy: c.KeysBy,
		Series: c.Series,
	}

	if c.SeriesBy != nil {
		spec.SeriesBy = &domain.SeriesBySpec{
			Key:    c.SeriesBy.Key,
			Values: c.SeriesBy.Values,
		}
	}

	return spec
}

// MapMailConfigToDomain splits the comma-separated recipient list and
// defaults the subject to the report title.
func MapMailConfigToDomain(m config.Mail, title string) *domain.MailSpec {
	subject := m.Subject
	if subject == "" {
		subject = title
	}

	var to []string
	for _, addr := range strings.Split(m.To, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			to = append(to, addr)
		}
	}

	return &domain.MailSpec{
		Host:    m.Host,
		Port:    m.Port,
		From:    m.From,
		To:      to,
		User:    m.User,
		Pass:    m.Pass,
		Subject: subject,
	}
}

func mapFormat(format string) domain.Format {
	if format == "" {
		return domain.FormatTxt
	}
	return domain.Format(format)
}
