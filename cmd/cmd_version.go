package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	"github.com/gaze-network/dot721-indexer/modules/dot721"
	"github.com/spf13/cobra"
)

// Version is the version of the indexer binary.
const Version = "v0.1.0"

var versions = map[string]string{
	"":       Version,
	"dot721": dot721.Version,
}

type versionCmdOptions struct {
	Modules string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show dot721 indexer version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Modules, "module", "", `Show version of a specific module. E.g. "dot721"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, cmd *cobra.Command, _ []string) error {
	version, ok := versions[opts.Modules]
	if !ok {
		return errors.Wrapf(errs.Unsupported, "invalid module name %q", opts.Modules)
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
