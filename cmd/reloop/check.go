package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reloopjs/reloop/transform"
)

func newCheckCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Report the rewrites reloop would make without writing anything",
		Long: `check runs the selected passes over each file and prints how many loops
and blocks would be rewritten. It exits with a non-zero status when a file
does not parse or contains a construct that cannot be rewritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.newSession(cmd)
			if err != nil {
				return err
			}
			inputs, err := collectInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			failed := false
			for _, o := range process(cmd.Context(), s.opts, s.log, inputs) {
				if o.err != nil {
					failed = true
					s.printer.diagnose(o)
					continue
				}
				printSummary(cmd.OutOrStdout(), o.name(), o.report)
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

func summary(r transform.Report) string {
	if !r.Changed() {
		return "unchanged"
	}
	var parts []string
	if r.ForLoops > 0 {
		parts = append(parts, plural(r.ForLoops, "for loop", "for loops"))
	}
	if r.DoWhileLoops > 0 {
		parts = append(parts, plural(r.DoWhileLoops, "do-while loop", "do-while loops"))
	}
	if r.ContinuesRedirected > 0 {
		parts = append(parts, plural(r.ContinuesRedirected, "continue redirected", "continues redirected"))
	}
	if r.BlocksAdded > 0 {
		parts = append(parts, plural(r.BlocksAdded, "block added", "blocks added"))
	}
	return strings.Join(parts, ", ")
}

func printSummary(w io.Writer, name string, r transform.Report) {
	fmt.Fprintf(w, "%s: %s\n", name, summary(r))
}
