package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/config"
	"github.com/inkwell-labs/inkctl/internal/logger"
	"github.com/inkwell-labs/inkctl/internal/session"
	"github.com/inkwell-labs/inkctl/internal/tui"
	"github.com/inkwell-labs/inkctl/internal/util"
	"github.com/spf13/cobra"
	"log/slog"
)

var (
	cfg    *config.Config
	client *api.Client
	store  *session.Store
	log    *slog.Logger

	appVersion = "dev"

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
)

// SetVersion records the build version injected from main.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "inkctl",
	Short: "Read and manage your Inkwell library from the terminal",
	Long: `inkctl is a terminal client for the Inkwell ebook platform.

Browse your library, read books chapter by chapter, manage drafts,
and watch AI generation jobs without leaving the shell.

Run 'inkctl' with no arguments to open the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.ShouldUseTUI(cmd) {
			return cmd.Help()
		}
		ctx := cmd.Context()
		if err := store.Resume(ctx); err != nil || store.State() != session.StateAuthenticated {
			fmt.Println("Not signed in. Run 'inkctl login' to get started.")
			return nil
		}
		return runDashboard(ctx)
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/inkctl/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)
		log = logger.New()

		var err error
		if flagConfig != "" {
			cfg, err = config.LoadFrom(flagConfig)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client = api.New(cfg.API.BaseURL, api.NewTokenStore(config.TokenPath()))
		client.SetTimeout(time.Duration(cfg.API.TimeoutSeconds) * time.Second)
		store = session.New(client)
		log.Debug("client ready", "base_url", cfg.API.BaseURL)
		return nil
	}

	rootCmd.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newDashboardCmd(),
		newLibraryCmd(),
		newReadCmd(),
		newInfoCmd(),
		newCreateCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newPublishCmd(),
		newArchiveCmd(),
		newChaptersCmd(),
		newGenerateCmd(),
		newCacheCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %-12s %s\n", color.HiBlackString(label+":"), value)
}
