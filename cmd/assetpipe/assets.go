package assetpipe

import (
	"fmt"
	"os"

	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/arthur-debert/assetpipe/pkg/ui"
	"github.com/spf13/cobra"
)

func newProcessCmd(opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "process <asset>",
		Short:   MsgProcessShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		Example: "  assetpipe process app.js\n  assetpipe process site.css -o public/site.css",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.process")

			_, p, err := opts.loadPipeline()
			if err != nil {
				return err
			}
			res, err := p.Process(args[0])
			if err != nil {
				return err
			}
			if !res.Found {
				return errors.Newf(errors.ErrNotFound, MsgNotFound, args[0]).WithDetail("filename", args[0])
			}

			logger.Info().
				Str("filename", res.Filename).
				Str("path", res.Path).
				Strs("included", res.Included).
				Msg("Processed asset")

			if output != "" {
				if err := os.WriteFile(output, res.Content, 0644); err != nil {
					return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", output)
				}
				return nil
			}
			_, err = cmd.OutOrStdout().Write(res.Content)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newLocateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "locate <asset>",
		Short:   MsgLocateShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			_, p, err := opts.loadPipeline()
			if err != nil {
				return err
			}
			a, err := p.Locator().Locate(args[0])
			if err != nil {
				return err
			}
			return r.RenderResult(ui.NewAssetView(a))
		},
	}
}

func newManifestCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "manifest <asset>",
		Short:   MsgManifestShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			_, p, err := opts.loadPipeline()
			if err != nil {
				return err
			}
			a, m, err := p.Manifest(args[0])
			if err != nil {
				return err
			}
			return r.RenderResult(ui.NewManifestView(a, m))
		},
	}
}

func newCompileCmd(opts *globalOptions) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:     "compile <asset>...",
		Short:   MsgCompileShort,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		Example: "  assetpipe compile app.js site.css\n  assetpipe compile app.js --dest build/assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.compile")

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			_, p, err := opts.loadPipeline()
			if err != nil {
				return err
			}

			view := &ui.CompileView{Published: []ui.Published{}}
			for _, name := range args {
				path, err := p.Publish(name, dest)
				if err != nil {
					logger.Error().Err(err).Str("filename", name).Msg("Failed to compile asset")
					view.Failed = append(view.Failed, name)
					continue
				}
				view.Published = append(view.Published, ui.Published{Filename: name, Path: path})
			}

			if err := r.RenderResult(view); err != nil {
				return err
			}
			if len(view.Failed) > 0 {
				return fmt.Errorf(MsgCompileFailed, len(view.Failed), len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "d", "", MsgFlagDest)
	return cmd
}
