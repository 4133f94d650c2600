package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/autobot/internal/version"
	"github.com/arthur-debert/autobot/pkg/config"
	"github.com/arthur-debert/autobot/pkg/hook"
	"github.com/arthur-debert/autobot/pkg/logging"
	"github.com/arthur-debert/autobot/pkg/ui"
)

// NewRootCmd creates the root command. The hook path takes no flags:
// behavior is driven entirely by AUTOBOT_* environment variables so the
// same binary works unchanged as .git/hooks/pre-commit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "autobot",
		Short:         MsgShort,
		Long:          MsgLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd.Context())
		},
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// runHook is the pre-commit entry point
func runHook(ctx context.Context) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	logging.SetupLogger(settings.Verbosity())
	log.Debug().
		Str("repoRoot", settings.RepoRoot).
		Str("config", settings.ConfPath()).
		Str("include", settings.Include).
		Str("exclude", settings.Exclude).
		Msg("hook started")

	printer := ui.NewPrinter()

	report, err := hook.Run(ctx, settings)
	if err != nil {
		printer.Fatal(err)
		return err
	}

	switch report.Outcome {
	case hook.OutcomeUpdated:
		printer.Linked(len(report.Added), settings.DotbotConf)
	case hook.OutcomeRecovered:
		// Never block the commit over a sync failure; the config was
		// restored from its backup.
		printer.SyncFailed(report.Recovered)
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("autobot %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
