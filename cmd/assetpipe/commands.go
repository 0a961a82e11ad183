package assetpipe

import (
	"fmt"

	"github.com/arthur-debert/assetpipe/internal/version"
	"github.com/arthur-debert/assetpipe/pkg/config"
	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/arthur-debert/assetpipe/pkg/pipeline"
	"github.com/arthur-debert/assetpipe/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "assetpipe",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newProcessCmd(opts))
	rootCmd.AddCommand(newLocateCmd(opts))
	rootCmd.AddCommand(newManifestCmd(opts))
	rootCmd.AddCommand(newCompileCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newTransformsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

// loadConfig reads the configuration selected by --config
func (o *globalOptions) loadConfig() (*config.Config, error) {
	return config.Load(config.LoadOptions{File: o.configFile})
}

// loadPipeline builds a pipeline over the configured storage backend
func (o *globalOptions) loadPipeline() (*config.Config, *pipeline.Pipeline, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	fsys, err := cfg.OpenFS()
	if err != nil {
		return nil, nil, err
	}
	p, err := pipeline.NewFromConfig(cfg, fsys)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

// renderer renders to the command's stdout in the --format format
func (o *globalOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}
