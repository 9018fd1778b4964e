package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"sortlab/harness"
	"sortlab/kvdb"
)

func resultsCommand() *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "results",
		Short: "저장소에 기록된 실행 결과 보기",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			store, err := harness.OpenStore(cfg.Store, outputDir)
			if err != nil {
				return err
			}
			if store == nil {
				return errors.Wrapf(kvdb.ErrUnknownBackend, "store backend %q keeps no records", cfg.Store.Backend)
			}
			defer store.Close()

			records, err := store.List()
			if err != nil {
				return err
			}
			harness.NewSummary(records).RenderTable(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "run 에 사용한 출력 디렉토리")
	return cmd
}
