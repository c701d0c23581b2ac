package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/vercel-installer/internal/config"
	"github.com/conn-castle/vercel-installer/internal/install"
	"github.com/conn-castle/vercel-installer/internal/messages"
	"github.com/conn-castle/vercel-installer/internal/prompt"
)

var installRun = install.Run

var newInteractivePrompter = func() prompt.Prompter {
	return prompt.NewHuh()
}

type installFlags struct {
	phpVersion    string
	root          string
	configPath    string
	stubsPath     string
	noInteraction bool
	diff          bool
	diffLines     int
}

func newInstallCmd(logger func(*cobra.Command) *log.Logger) *cobra.Command {
	var flags installFlags

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveTargetRoot(flags.root)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(root, flags.configPath, flags.stubsPath)
			if err != nil {
				return err
			}
			l := logger(cmd)
			l.WithField("source", cfg.Source()).Debug("loaded runtime catalog")

			opts := install.Options{
				Config:       cfg,
				Runtime:      strings.TrimSpace(flags.phpVersion),
				System:       install.RealSystem{},
				Logger:       l,
				WarnWriter:   cmd.ErrOrStderr(),
				ShowDiff:     flags.diff,
				DiffMaxLines: flags.diffLines,
			}
			if opts.Runtime == "" {
				if flags.noInteraction {
					opts.Prompter = prompt.Default{}
				} else {
					opts.Prompter = newInteractivePrompter()
				}
			}
			result, err := installRun(root, opts)
			if err != nil {
				return err
			}
			printInstallResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.phpVersion, "php-version", "", messages.InstallFlagPHPVersion)
	cmd.Flags().StringVar(&flags.root, "root", "", messages.InstallFlagRoot)
	cmd.Flags().StringVar(&flags.configPath, "config", "", messages.InstallFlagConfig)
	cmd.Flags().StringVar(&flags.stubsPath, "stubs", "", messages.InstallFlagStubs)
	cmd.Flags().BoolVarP(&flags.noInteraction, "no-interaction", "n", false, messages.InstallFlagNoInteraction)
	cmd.Flags().BoolVar(&flags.diff, "diff", false, messages.InstallFlagDiff)
	cmd.Flags().IntVar(&flags.diffLines, "diff-lines", install.DefaultDiffMaxLines, messages.InstallFlagDiffLines)

	return cmd
}

// resolveTargetRoot returns the absolute project root, defaulting to the
// working directory.
func resolveTargetRoot(flagRoot string) (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf(messages.RootResolveCwdFmt, err)
	}
	root := strings.TrimSpace(flagRoot)
	if root == "" {
		return cwd, nil
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(cwd, root)
	}
	return filepath.Clean(root), nil
}

// loadConfig loads the runtime catalog for root. A --stubs value overrides
// stubs_path and resolves against the working directory.
func loadConfig(root string, configPath string, stubsPath string) (*config.Config, error) {
	cfg, err := config.LoadOptional(root, configPath)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(stubsPath) == "" {
		return cfg, nil
	}
	cwd, err := getwd()
	if err != nil {
		return nil, fmt.Errorf(messages.RootResolveCwdFmt, err)
	}
	if err := cfg.WithStubsPath(stubsPath, cwd); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printInstallResult(cmd *cobra.Command, result install.Result) {
	out := cmd.OutOrStdout()
	okColor := color.New(color.FgGreen)
	_, _ = okColor.Fprintf(out, messages.InstallSuccessFmt, result.Label, result.Runtime)
	for _, dir := range result.CreatedDirs {
		_, _ = fmt.Fprintf(out, messages.InstallCreatedDirFmt, dir)
	}
	for _, rel := range result.Written {
		_, _ = fmt.Fprintf(out, messages.InstallWrittenLineFmt, rel)
	}
}
