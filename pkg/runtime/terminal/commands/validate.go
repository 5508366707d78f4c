package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/de-tools/report-relay/pkg/services/config"
)

type ValidateCmd struct {
	smtpConfigPath string
	verbose        bool
	output         io.Writer
}

// NewValidateCmd builds the command that loads a report definition, applies
// every validation rule and echoes the resolved spec without running it.
func NewValidateCmd(output io.Writer) *cobra.Command {
	vc := &ValidateCmd{output: output}
	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Check a report definition without running it",
		Args:  cobra.ExactArgs(1),
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.smtpConfigPath, "smtp-config", "",
		"Path to the SMTP profiles file (default ~/"+config.DefaultSMTPConfigName+")")
	cmd.Flags().BoolVarP(&vc.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func (vc *ValidateCmd) run(cmd *cobra.Command, args []string) error {
	ctx := loggerContext(cmd, vc.verbose)

	spec, err := config.Load(ctx, args[0], config.LoadOptions{
		SMTPConfigPath: vc.smtpConfigPath,
	})
	if err != nil {
		return fmt.Errorf("invalid report definition: %w", err)
	}

	if spec.Send.Mail != nil && spec.Send.Mail.Pass != "" {
		spec.Send.Mail.Pass = "***"
	}

	resolved, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to echo resolved definition: %w", err)
	}

	fmt.Fprintf(vc.output, "%s is valid\n\n%s", args[0], resolved)
	return nil
}
