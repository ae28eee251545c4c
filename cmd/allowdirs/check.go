package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	allowdirs "github.com/armatrix/opencode-allowdirs"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Report whether paths would be auto-approved",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver()
		if err != nil {
			return err
		}

		if flagNoColor {
			color.NoColor = true
		}
		allowed := color.New(color.FgGreen).SprintFunc()
		deferred := color.New(color.FgYellow).SprintFunc()

		out := cmd.OutOrStdout()
		failed := false
		for _, path := range args {
			if dir, ok := r.MatchingDirectory(path); ok {
				fmt.Fprintf(out, "%s  %s (under %s)\n", allowed("allow"), path, dir)
				continue
			}
			if r.IsAllowed(path) {
				fmt.Fprintf(out, "%s  %s (pattern)\n", allowed("allow"), path)
				continue
			}
			fmt.Fprintf(out, "%s  %s\n", deferred("defer"), path)
			failed = true
		}
		if failed {
			return allowdirs.ErrNotAllowed
		}
		return nil
	},
}
