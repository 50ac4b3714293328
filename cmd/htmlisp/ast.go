package main

import (
	"fmt"
	"os"

	"github.com/KimNorgaard/htmlisp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newASTCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "ast <input file>",
		Short: "Print the parsed document tree as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			node, err := htmlisp.Parse(string(src), cfg.parseOptions()...)
			if err != nil {
				return fmt.Errorf("failed to parse input file: %w", err)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(node); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
