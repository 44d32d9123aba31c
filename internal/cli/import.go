package cli

import (
	"github.com/golang/glog"
	"github.com/mj-jones15/pastProjects/internal/config"
	pgstore "github.com/mj-jones15/pastProjects/internal/infra/postgres"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewImportCmd stores worksheets from YAML files in Postgres.
func NewImportCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Import worksheets from YAML files into Postgres",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := runMigrationsWithConfig(cmd.Context(), cfg); err != nil {
				return err
			}
			db, err := openBun(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			store := pgstore.NewWorksheetStore(db)
			for _, path := range args {
				sheets, err := config.LoadWorksheets(path)
				if err != nil {
					return errors.Wrapf(err, "import %s", path)
				}
				for _, ws := range sheets {
					if err := store.Save(cmd.Context(), ws); err != nil {
						return errors.Wrapf(err, "import %s", path)
					}
					glog.Infof("imported worksheet %s (%d items)", ws.ID, len(ws.Items))
				}
			}
			return nil
		},
	}
}
