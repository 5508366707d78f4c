package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/report-relay/pkg/dispatch"
	"github.com/de-tools/report-relay/pkg/render"
	"github.com/de-tools/report-relay/pkg/services/config"
	"github.com/de-tools/report-relay/pkg/services/report"
	"github.com/de-tools/report-relay/pkg/services/source"
)

type RunCmd struct {
	smtpConfigPath string
	verbose        bool
	registry       source.Registry
	output         io.Writer
}

func NewRunCmd(registry source.Registry, output io.Writer) *cobra.Command {
	rc := &RunCmd{registry: registry, output: output}
	cmd := &cobra.Command{
		Use:   "run <config>",
		Short: "Execute a report definition and deliver the result",
		Args:  cobra.ExactArgs(1),
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.smtpConfigPath, "smtp-config", "",
		"Path to the SMTP profiles file (default ~/"+config.DefaultSMTPConfigName+")")
	cmd.Flags().BoolVarP(&rc.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func (rc *RunCmd) run(cmd *cobra.Command, args []string) error {
	ctx := loggerContext(cmd, rc.verbose)

	spec, err := config.Load(ctx, args[0], config.LoadOptions{
		SMTPConfigPath: rc.smtpConfigPath,
	})
	if err != nil {
		return fmt.Errorf("failed to load report definition: %w", err)
	}

	runner := report.NewRunner(
		rc.registry,
		render.NewRenderer(),
		dispatch.NewDispatcher(rc.output, dispatch.NewSMTPSender()),
	)

	if _, err := runner.Execute(ctx, *spec); err != nil {
		return err
	}
	return nil
}

// loggerContext attaches a stderr logger to the command context, keeping
// stdout clean for report payloads.
func loggerContext(cmd *cobra.Command, verbose bool) context.Context {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return logger.WithContext(cmd.Context())
}
