package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/vercel-installer/internal/doctor"
	"github.com/conn-castle/vercel-installer/internal/messages"
)

func newDoctorCmd() *cobra.Command {
	var rootFlag string
	var configPath string

	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root, err := resolveTargetRoot(rootFlag)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, root)

			// 1. Config
			allResults, cfg := doctor.CheckConfig(root, configPath)

			if cfg != nil {
				// 2. Manifest and its runtime
				allResults = append(allResults, doctor.CheckManifest(root, cfg.Runtimes)...)

				// 3. Verbatim stubs
				allResults = append(allResults, doctor.CheckStubs(root, cfg.Stubs())...)
			}

			for _, r := range allResults {
				printResult(out, r)
			}

			if doctor.HasFailure(allResults) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", "", messages.InstallFlagRoot)
	cmd.Flags().StringVar(&configPath, "config", "", messages.InstallFlagConfig)

	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
