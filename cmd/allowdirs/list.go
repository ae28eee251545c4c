package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagOutput string

// listing is the serializable shape of the merged allowlist.
type listing struct {
	Sources            []string `json:"sources" yaml:"sources"`
	AllowedDirectories []string `json:"allowedDirectories" yaml:"allowedDirectories"`
	AllowedPatterns    []string `json:"allowedPatterns,omitempty" yaml:"allowedPatterns,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show discovered config files and the merged allowed directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver()
		if err != nil {
			return err
		}

		l := listing{
			Sources:            r.ConfigFiles(),
			AllowedDirectories: r.AllowedDirectories(),
			AllowedPatterns:    r.AllowedPatterns(),
		}

		out := cmd.OutOrStdout()
		switch flagOutput {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(l)
		case "yaml":
			enc := yaml.NewEncoder(out)
			if err := enc.Encode(l); err != nil {
				return err
			}
			return enc.Close()
		case "text":
			if len(l.Sources) == 0 {
				fmt.Fprintln(out, "no allowlist config files found")
				return nil
			}
			fmt.Fprintln(out, "Sources:")
			for _, s := range l.Sources {
				fmt.Fprintf(out, "  %s\n", s)
			}
			fmt.Fprintln(out, "Allowed directories:")
			for _, d := range l.AllowedDirectories {
				fmt.Fprintf(out, "  %s\n", d)
			}
			if len(l.AllowedPatterns) > 0 {
				fmt.Fprintln(out, "Allowed patterns:")
				for _, p := range l.AllowedPatterns {
					fmt.Fprintf(out, "  %s\n", p)
				}
			}
			return nil
		default:
			return fmt.Errorf("unknown output format %q (want text, json or yaml)", flagOutput)
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "output format: text, json or yaml")
}
