package harness

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"sortlab/config"
	"sortlab/dataset"
	"sortlab/kvdb"
	"sortlab/sortcore"
)

// Sorter 하네스가 실행하는 정렬 진입점. 입력은 건드리지 않는다.
type Sorter interface {
	Run(input []int) (sortcore.Result, error)
}

type namedSorter struct {
	name   string
	sorter Sorter
}

// Runner 크기 × 순서 × 알고리즘 전체를 순차 실행
type Runner struct {
	cfg     config.Config
	orders  []dataset.Order
	sorters []namedSorter
	store   kvdb.Store
	logger  *zap.Logger
	now     func() time.Time
}

// NewRunner store 가 nil 이면 실행 기록을 저장하지 않는다
func NewRunner(cfg config.Config, store kvdb.Store, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	orders, err := cfg.ParsedOrders()
	if err != nil {
		return nil, err
	}
	algs, err := cfg.ParsedAlgorithms()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Runner{
		cfg:    cfg,
		orders: orders,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, a := range algs {
		r.sorters = append(r.sorters, namedSorter{name: a.Name, sorter: a})
	}
	return r, nil
}

// OpenStore 설정된 백엔드 열기. none 이면 (nil, nil).
func OpenStore(cfg config.StoreConfig, outputDir string) (kvdb.Store, error) {
	if cfg.Backend == "" || cfg.Backend == kvdb.BackendNone {
		return nil, nil
	}
	dir := cfg.Dir
	if dir == "" {
		dir = filepath.Join(outputDir, "results."+cfg.Backend)
	}
	return kvdb.Open(cfg.Backend, dir)
}

// Run inputDir 의 입력 파일마다 모든 알고리즘을 돌리고 outputDir 에 결과를 쓴다.
// 정렬 검증 실패는 해당 실행만 실패로 기록하고 계속 진행한다.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (*Summary, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "mkdir %s", outputDir)
	}

	summary := newSummary()
	for _, n := range r.cfg.Sizes {
		for _, o := range r.orders {
			if err := r.runInput(ctx, summary, inputDir, outputDir, n, o); err != nil {
				return summary, err
			}
		}
	}

	r.logger.Info("전체 실행 완료",
		zap.Int("runs", len(summary.Records)),
		zap.Int("failures", summary.Failures),
		zap.Int("missing_inputs", len(summary.MissingInputs)))
	return summary, nil
}

func (r *Runner) runInput(ctx context.Context, summary *Summary, inputDir, outputDir string, n int, o dataset.Order) error {
	label := dataset.Label(n, o)
	inPath := filepath.Join(inputDir, dataset.FileName(n, o))

	raw, lineErrs, err := dataset.ReadInts(inPath)
	if err != nil {
		r.logger.Error("입력 파일을 열 수 없음", zap.String("path", inPath), zap.Error(err))
		summary.MissingInputs = append(summary.MissingInputs, inPath)
		return nil
	}
	if len(lineErrs) > 0 {
		r.logger.Warn("입력 파일에 잘못된 줄",
			zap.String("path", inPath), zap.Int("count", len(lineErrs)))
		summary.ReadErrors[label] = len(lineErrs)
		if err := writeReadErrors(outputDir, inPath, n, o, lineErrs); err != nil {
			return err
		}
	}

	for _, s := range r.sorters {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "run canceled")
		}

		stats := startStats()
		res, runErr := s.sorter.Run(raw)
		duration, alloc := stats.endStats()

		sorted := true
		if runErr != nil {
			if !errors.Is(runErr, sortcore.ErrNotSorted) {
				return errors.Wrapf(runErr, "%s on %s", s.name, label)
			}
			sorted = false
			summary.Failures++
			r.logger.Error("정렬 검증 실패",
				zap.String("algorithm", s.name), zap.String("input", label), zap.Error(runErr))
			if err := writeSortError(outputDir, s.name, inPath, n, o, runErr); err != nil {
				return err
			}
		}

		if err := r.writeRunOutput(outputDir, s.name, n, o, raw, res); err != nil {
			return err
		}

		rec := kvdb.Record{
			Algorithm:   s.name,
			Input:       label,
			Size:        n,
			Order:       o.String(),
			Comparisons: res.Counters.Comparisons,
			Exchanges:   res.Counters.Exchanges,
			Sorted:      sorted,
			DurationNS:  duration.Nanoseconds(),
			AllocBytes:  alloc,
			RecordedAt:  r.now().UTC(),
		}
		if r.store != nil {
			if err := r.store.Put(rec); err != nil {
				return errors.Wrapf(err, "store %s", rec.Key())
			}
		}
		summary.Records = append(summary.Records, rec)

		r.logger.Debug("실행 완료",
			zap.String("algorithm", s.name),
			zap.String("input", label),
			zap.Int64("comparisons", rec.Comparisons),
			zap.Int64("exchanges", rec.Exchanges),
			zap.Duration("duration", duration))
	}
	return nil
}
