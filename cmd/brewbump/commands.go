package brewbump

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/velar/brewbump/internal/version"
	"github.com/velar/brewbump/pkg/cobrax/topics"
	"github.com/velar/brewbump/pkg/commands"
	"github.com/velar/brewbump/pkg/errors"
	"github.com/velar/brewbump/pkg/formula"
	"github.com/velar/brewbump/pkg/logging"
	"github.com/velar/brewbump/pkg/ui"
	"github.com/velar/brewbump/pkg/ui/output/styles"
)

//go:embed topics/*.md
var topicsFS embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	dryRun     bool
	format     string
	configFile string
	dir        string
	stylesFile string
}

func (g *globalOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// resolve makes path relative to the -C directory
func (g *globalOptions) resolve(path string) string {
	if g.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(g.dir, path)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "brewbump",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(g.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)

			if g.stylesFile != "" {
				return styles.LoadStyles(g.resolve(g.stylesFile))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&g.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&g.dir, "dir", "C", "", MsgFlagDir)
	rootCmd.PersistentFlags().StringVar(&g.stylesFile, "styles", "", MsgFlagStyles)
	_ = rootCmd.MarkPersistentFlagFilename("styles", "yaml", "yml")

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newUpdateCmd(g))
	rootCmd.AddCommand(newChecksumCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd(g))
	rootCmd.AddCommand(newCompletionCmd())

	// Topic help is embedded, so a failure here is a build problem
	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_, err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newUpdateCmd(g *globalOptions) *cobra.Command {
	var (
		rel       formula.Release
		formulas  []string
		lookahead int
		strict    bool
	)

	cmd := &cobra.Command{
		Use:     "update",
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		Example: MsgUpdateExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lookahead") && lookahead < 1 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrLookahead, lookahead)
			}

			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			log.Info().
				Str("version", rel.Version).
				Strs("formulas", formulas).
				Bool("dry_run", g.dryRun).
				Msg("Updating formulas")

			result, err := commands.Update(commands.UpdateOptions{
				WorkDir:         g.dir,
				ConfigFile:      g.configFile,
				Release:         rel,
				Formulas:        formulas,
				Lookahead:       lookahead,
				DryRun:          g.dryRun,
				StrictChecksums: strict,
			})

			// Report the formulas written before a failure too
			if result != nil && len(result.Formulas) > 0 {
				if rerr := renderer.RenderResult(result); rerr != nil && err == nil {
					return rerr
				}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&rel.Version, "version", "", MsgFlagVersion)
	cmd.Flags().StringVar(&rel.SHA256Arm64, "sha256-arm64", "", MsgFlagSHA256Arm64)
	cmd.Flags().StringVar(&rel.SHA256X8664, "sha256-x86_64", "", MsgFlagSHA256X8664)
	cmd.Flags().StringArrayVar(&formulas, "formula", nil, MsgFlagFormula)
	cmd.Flags().IntVar(&lookahead, "lookahead", 0, MsgFlagLookahead)
	cmd.Flags().BoolVar(&strict, "strict-checksums", false, MsgFlagStrictChecksums)

	for _, name := range []string{"version", "sha256-arm64", "sha256-x86_64"} {
		_ = cmd.MarkFlagRequired(name)
	}
	_ = cmd.MarkFlagFilename("formula", "rb")

	return cmd
}

func newChecksumCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "checksum FILE...",
		Short:   MsgChecksumShort,
		Long:    MsgChecksumLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			paths := make([]string, 0, len(args))
			for _, arg := range args {
				paths = append(paths, g.resolve(arg))
			}

			result, err := commands.Checksum(commands.ChecksumOptions{Paths: paths})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	var write, defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.GenConfig(commands.GenConfigOptions{
				WorkDir:    g.dir,
				ConfigFile: g.configFile,
				Write:      write,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}

			if result.Written != "" {
				return renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, result.Written))
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newVersionCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
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
				return cmd.Root().GenBashCompletionV2(out, true)
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
