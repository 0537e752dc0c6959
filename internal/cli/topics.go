package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/mmv/pkg/topics"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// topicRenderer picks glamour when cmd writes to a terminal.
func topicRenderer(cmd *cobra.Command) topics.Renderer {
	if f, ok := cmd.OutOrStdout().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return topics.NewGlamourRenderer()
	}
	return &topics.PlainRenderer{}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: MsgTopicsShort,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			m, err := topics.New(topics.Options{})
			if err != nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return m.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := topics.New(topics.Options{Renderer: topicRenderer(cmd)})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				_, err := fmt.Fprintf(out, "%s\n\n%s%s\n", MsgTopicsHeader, m.Index(), MsgTopicsFooter)
				return err
			}

			rendered, err := m.Render(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
}
