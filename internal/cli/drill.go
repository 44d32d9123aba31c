package cli

import (
	"github.com/mj-jones15/pastProjects/internal/app"
	"github.com/mj-jones15/pastProjects/internal/transport/console"
	"github.com/spf13/cobra"
)

// NewDrillCmd runs a drill on the terminal.
func NewDrillCmd(configPath *string) *cobra.Command {
	var (
		worksheetID string
		showAnswers bool
	)
	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Solve a sheet of problems, then practice the ones you missed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			opts := app.Options{ShowAnswers: cfg.Drill.ShowAnswers}
			if cmd.Flags().Changed("show-answers") {
				opts.ShowAnswers = showAnswers
			}

			service, cleanup, err := buildService(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			learner := console.NewLearner(cmd.InOrStdin(), cmd.OutOrStdout())
			_, err = service.Start(cmd.Context(), worksheetID, learner)
			return err
		},
	}
	cmd.Flags().StringVarP(&worksheetID, "worksheet", "w", "", "worksheet ID to solve instead of a generated sheet")
	cmd.Flags().BoolVar(&showAnswers, "show-answers", false, "print the correct answers in the summary")
	return cmd
}
