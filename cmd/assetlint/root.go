package assetlint

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/assetlint/internal/version"
	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/arthur-debert/assetlint/pkg/filesystem"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/ui"
	"github.com/arthur-debert/assetlint/pkg/validator"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity   int
	configFile  string
	root        string
	format      string
	categories  []string
	concurrency int
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "assetlint",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.root, "root", "", MsgFlagRoot)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	flags.StringSliceVar(&opts.categories, "category", nil, MsgFlagCategory)
	flags.IntVar(&opts.concurrency, "concurrency", 0, MsgFlagConcurrency)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("root")
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig builds the effective configuration, applying the flags the
// user actually set on top of the file and environment layers
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := make(map[string]interface{})
	if cmd.Flags().Changed("category") {
		overrides["categories"] = o.categories
	}
	if cmd.Flags().Changed("concurrency") {
		overrides["concurrency"] = o.concurrency
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Root:       o.root,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fatal(err)
	}
	return cfg, nil
}

// runValidate checks every pack and maps the outcome to an exit code
func runValidate(cmd *cobra.Command, opts *globalOptions) error {
	logger := logging.GetLogger("cmd.validate")

	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return fatal(err)
	}

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	reporter, err := ui.NewReporter(format, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return fatal(err)
	}

	logger.Info().
		Str("root", cfg.Root).
		Strs("categories", cfg.Categories).
		Str("config", cfg.Source).
		Msg("Starting validation")

	result, err := validator.New(filesystem.NewOS(), cfg, reporter).Run(cmd.Context())
	if err != nil {
		return fatal(err)
	}

	if !result.OK() {
		return &ExitError{Code: ExitComplaints}
	}
	return nil
}
