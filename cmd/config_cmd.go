package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/papergrid/internal/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print papergrid version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
			return err
		},
	}
}

// newConfigCmd prints the effective configuration, or the embedded
// defaults with --default.
func newConfigCmd() *cobra.Command {
	var (
		configFile  string
		showDefault bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the merged papergrid configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showDefault {
				_, err := cmd.OutOrStdout().Write(config.DefaultConfigYAML())
				return err
			}
			cfg, err := config.Load(config.ResolvePath(configFile))
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&configFile, "config-file", "", "path to a YAML config file")
	cmd.Flags().BoolVar(&showDefault, "default", false, "print the built-in defaults instead")
	return cmd
}
