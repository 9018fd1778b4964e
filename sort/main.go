package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortlab/config"
	"sortlab/logutil"
)

var configFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "오류: %v\n", err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sortlab",
		Short:         "퀵소트 변형과 자연 병합 정렬 비교",
		Long:          "입력 데이터셋을 생성하고 다섯 가지 정렬의 비교/교환 횟수를 기록합니다",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "TOML 설정 파일")

	cmd.AddCommand(genCommand(), runCommand(), resultsCommand())
	return cmd
}

// setup 설정 로드 후 로거 준비
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return cfg, nil, err
	}
	logger, err := logutil.SetupLogger(cfg.Log)
	if err != nil {
		return cfg, nil, err
	}
	logger.Debug("설정 로드",
		zap.String("config", configFile),
		zap.Ints("sizes", cfg.Sizes),
		zap.Strings("orders", cfg.Orders),
		zap.String("store", cfg.Store.Backend),
		zap.Int("cpus", runtime.NumCPU()))
	return cfg, logger, nil
}
