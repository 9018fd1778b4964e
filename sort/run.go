package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortlab/harness"
)

func runCommand() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "run <input_dir> <output_dir>",
		Short: "모든 입력에 다섯 가지 정렬 실행",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			inputDir, outputDir := args[0], args[1]
			store, err := harness.OpenStore(cfg.Store, outputDir)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			runner, err := harness.NewRunner(cfg, store, logger)
			if err != nil {
				return err
			}
			summary, err := runner.Run(cmd.Context(), inputDir, outputDir)
			if err != nil {
				return err
			}

			// 결과 저장
			if err := summary.WriteMarkdown(filepath.Join(outputDir, harness.MarkdownFile)); err != nil {
				logger.Warn("마크다운 저장 오류", zap.Error(err))
			}
			if err := summary.WriteJSON(filepath.Join(outputDir, harness.JSONFile)); err != nil {
				logger.Warn("JSON 저장 오류", zap.Error(err))
			}

			if !quiet {
				summary.RenderTable(cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote outputs to %s\n", outputDir)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "요약 표 출력 생략")
	return cmd
}
