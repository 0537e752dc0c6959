package cli

import (
	"fmt"

	"github.com/arthur-debert/mmv/pkg/config"
	"github.com/arthur-debert/mmv/pkg/paths"
	"github.com/spf13/cobra"
)

func newConfigCmd(st *state) *cobra.Command {
	var defaults, path bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case path:
				_, err := fmt.Fprintln(out, paths.ConfigFile())
				return err
			case defaults:
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}

			content, err := config.Encode(st.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, content)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.Flags().BoolVar(&path, "path", false, MsgFlagPath)
	cmd.MarkFlagsMutuallyExclusive("defaults", "path")
	return cmd
}
