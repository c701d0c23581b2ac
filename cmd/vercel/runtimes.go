package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/vercel-installer/internal/config"
	"github.com/conn-castle/vercel-installer/internal/messages"
)

func newRuntimesCmd() *cobra.Command {
	var root string
	var configPath string

	cmd := &cobra.Command{
		Use:   messages.RuntimesUse,
		Short: messages.RuntimesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTargetRoot(root)
			if err != nil {
				return err
			}
			cfg, err := config.LoadOptional(target, configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			def := cfg.DefaultLabel()
			for _, label := range cfg.Runtimes.Labels() {
				marker := ""
				if label == def {
					marker = messages.RuntimesDefault
				}
				_, _ = fmt.Fprintf(out, messages.RuntimesLineFmt, label, cfg.Runtimes[label], marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", messages.InstallFlagRoot)
	cmd.Flags().StringVar(&configPath, "config", "", messages.InstallFlagConfig)

	return cmd
}
