package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/de-tools/report-relay/pkg/adapters"
	"github.com/de-tools/report-relay/pkg/models/config"
	"github.com/de-tools/report-relay/pkg/models/domain"
)

// DefaultSMTPConfigName is the profiles file looked up in the user's home
// directory when no explicit path is given.
const DefaultSMTPConfigName = ".smtpcfg"

type LoadOptions struct {
	// SMTPConfigPath overrides the SMTP profiles file location.
	SMTPConfigPath string
}

// Load reads, validates and resolves a report definition from a YAML file.
// Values can be overridden through RELAY_-prefixed environment variables.
func Load(ctx context.Context, path string, opts LoadOptions) (*domain.ReportSpec, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading report definition")

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg config.Report
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid report config: %w", err)
	}

	if cfg.Send.Mail != nil && cfg.Send.Mail.Profile != "" {
		if err := mergeProfile(ctx, cfg.Send.Mail, opts.SMTPConfigPath); err != nil {
			return nil, err
		}
	}

	if err := validateReport(&cfg); err != nil {
		return nil, fmt.Errorf("invalid report config: %w", err)
	}

	spec := adapters.MapReportConfigToDomain(cfg)
	return &spec, nil
}

// mergeProfile fills the envelope's host/port/user/pass from the named
// profile. Explicit YAML values win over profile values.
func mergeProfile(ctx context.Context, mail *config.Mail, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate SMTP profiles file: %w", err)
		}
		path = filepath.Join(home, DefaultSMTPConfigName)
	}

	registry, err := NewRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load SMTP profiles from %s: %w", path, err)
	}

	profile, err := registry.GetProfile(ctx, mail.Profile)
	if err != nil {
		return err
	}

	if mail.Host == "" {
		mail.Host = profile.Host
	}
	if mail.Port == 0 {
		mail.Port = profile.Port
	}
	if mail.User == "" {
		mail.User = profile.User
	}
	if mail.Pass == "" {
		mail.Pass = profile.Pass
	}

	return nil
}

// validateReport applies the cross-field rules the struct tags cannot
// express: destinations, envelope completeness, field uniqueness and chart
// references.
func validateReport(cfg *config.Report) error {
	if !cfg.Send.Stdout && cfg.Send.Mail == nil {
		return fmt.Errorf("no destination declared: set send.stdout or send.mail")
	}

	if mail := cfg.Send.Mail; mail != nil {
		if mail.Host == "" {
			return fmt.Errorf("mail host is required")
		}
		if mail.Port == 0 {
			return fmt.Errorf("mail port is required")
		}
	}

	for _, q := range cfg.Queries {
		if err := validateQuery(q); err != nil {
			return fmt.Errorf("query %q: %w", q.Title, err)
		}
	}

	return nil
}

func validateQuery(q config.Query) error {
	fields := make(map[string]struct{}, len(q.Fields))
	for _, f := range q.Fields {
		if _, dup := fields[f.Field]; dup {
			return fmt.Errorf("field %q declared twice", f.Field)
		}
		fields[f.Field] = struct{}{}
	}

	chart := q.Chart
	if chart == nil {
		return nil
	}

	if len(chart.Series) > 0 && chart.SeriesBy != nil {
		return fmt.Errorf("chart declares both series and series_by")
	}
	if len(chart.Series) == 0 && chart.SeriesBy == nil {
		return fmt.Errorf("chart declares neither series nor series_by")
	}
	if chart.KeysBy == "" && chart.Kind != string(domain.ChartPizza) {
		return fmt.Errorf("%s chart requires keys_by", chart.Kind)
	}
	if chart.SeriesBy != nil && chart.KeysBy == "" {
		return fmt.Errorf("series_by requires keys_by")
	}

	if chart.KeysBy != "" {
		if _, ok := fields[chart.KeysBy]; !ok {
			return fmt.Errorf("chart keys_by references unknown field %q", chart.KeysBy)
		}
	}
	for _, s := range chart.Series {
		if _, ok := fields[s]; !ok {
			return fmt.Errorf("chart series references unknown field %q", s)
		}
	}
	if by := chart.SeriesBy; by != nil {
		if _, ok := fields[by.Key]; !ok {
			return fmt.Errorf("chart series_by.key references unknown field %q", by.Key)
		}
		if _, ok := fields[by.Values]; !ok {
			return fmt.Errorf("chart series_by.values references unknown field %q", by.Values)
		}
	}

	return nil
}
