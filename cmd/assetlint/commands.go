package assetlint

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/assetlint/internal/version"
	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/arthur-debert/assetlint/pkg/filesystem"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/packs"
	"github.com/arthur-debert/assetlint/pkg/ui/output/styles"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := logging.GetLogger("cmd.list")
			logger.Info().Str("root", cfg.Root).Msg("Listing packs")

			fs := filesystem.NewOS()
			out := cmd.OutOrStdout()
			styled := isStyled(out)

			for _, category := range cfg.CategoryList() {
				list, err := packs.List(fs, category, packs.Options{Ignore: cfg.Packs.Ignore})
				if err != nil {
					return fatal(err)
				}

				header := fmt.Sprintf(MsgCategoryHeader, category.Name, category.Path)
				if styled {
					header = styles.Render("Header", header)
				}
				_, _ = fmt.Fprintln(out, header)

				if len(list) == 0 {
					_, _ = fmt.Fprintln(out, MsgNoPacks)
					continue
				}
				for _, pack := range list {
					_, _ = fmt.Fprintf(out, MsgPackItem+"\n", pack.Name)
				}
			}
			return nil
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(MsgRulesDoc, isStyled(cmd.OutOrStdout())))
			return err
		},
	}
}

// renderMarkdown renders markdown for the terminal with glamour, falling
// back to the raw text if rendering fails
func renderMarkdown(content string, terminal bool) string {
	var options []glamour.TermRendererOption
	if terminal {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}
	options = append(options, glamour.WithWordWrap(80))

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigContent())
				return err
			}

			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := cfg.ToTOML()
			if err != nil {
				return fatal(err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
