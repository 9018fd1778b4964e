package harness

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"sortlab/kvdb"
	"sortlab/sortcore"
)

const (
	MarkdownFile = "benchmark_results.md"
	JSONFile     = "benchmark_results.json"
)

// Summary 한 번의 하네스 실행 결과 모음
type Summary struct {
	Records       []kvdb.Record  `json:"records"`
	MissingInputs []string       `json:"missing_inputs"`
	ReadErrors    map[string]int `json:"read_errors"`
	Failures      int            `json:"failures"`
}

func newSummary() *Summary {
	return &Summary{ReadErrors: make(map[string]int)}
}

// NewSummary 저장소에서 읽은 기록으로 요약 만들기
func NewSummary(records []kvdb.Record) *Summary {
	s := newSummary()
	s.Records = records
	s.Failures = lo.CountBy(records, func(r kvdb.Record) bool { return !r.Sorted })
	return s
}

// Totals 알고리즘별 비교/교환 합계
func (s *Summary) Totals() map[string]sortcore.Counters {
	totals := make(map[string]sortcore.Counters)
	for _, rec := range s.Records {
		c := totals[rec.Algorithm]
		c.Add(sortcore.Counters{Comparisons: rec.Comparisons, Exchanges: rec.Exchanges})
		totals[rec.Algorithm] = c
	}
	return totals
}

// algorithms 기록에 나타난 순서대로 알고리즘 이름
func (s *Summary) algorithms() []string {
	return lo.Uniq(lo.Map(s.Records, func(r kvdb.Record, _ int) string { return r.Algorithm }))
}

func sortedMark(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAIL"
}

// RenderTable 콘솔용 표
func (s *Summary) RenderTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"algorithm", "input", "comparisons", "exchanges", "time", "alloc", "sorted"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, rec := range s.Records {
		table.Append([]string{
			rec.Algorithm,
			rec.Input,
			humanize.Comma(rec.Comparisons),
			humanize.Comma(rec.Exchanges),
			rec.Duration().Round(time.Microsecond).String(),
			humanize.Bytes(rec.AllocBytes),
			sortedMark(rec.Sorted),
		})
	}
	table.Render()
}

// WriteMarkdown 크기별 표와 알고리즘별 합계를 마크다운으로 저장
func (s *Summary) WriteMarkdown(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)

	var builder strings.Builder
	builder.WriteString("# 정렬 알고리즘 비교 결과\n\n")

	sizes := lo.Uniq(lo.Map(s.Records, func(r kvdb.Record, _ int) int { return r.Size }))
	for _, size := range sizes {
		builder.WriteString(fmt.Sprintf("## %d개 데이터\n\n", size))
		builder.WriteString("| 알고리즘 | 입력 | 비교 | 교환 | 실행시간 | 검증 |\n")
		builder.WriteString("|----------|------|------|------|----------|------|\n")
		for _, rec := range s.Records {
			if rec.Size != size {
				continue
			}
			builder.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %v | %s |\n",
				rec.Algorithm, rec.Order, rec.Comparisons, rec.Exchanges,
				rec.Duration().Round(time.Microsecond), sortedMark(rec.Sorted)))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## 요약 통계\n\n")
	builder.WriteString("| 알고리즘 | 총 비교 | 총 교환 |\n")
	builder.WriteString("|----------|---------|---------|\n")
	totals := s.Totals()
	for _, alg := range s.algorithms() {
		c := totals[alg]
		builder.WriteString(fmt.Sprintf("| %s | %d | %d |\n", alg, c.Comparisons, c.Exchanges))
	}
	if len(s.MissingInputs) > 0 || s.Failures > 0 {
		builder.WriteString(fmt.Sprintf("\n누락된 입력: %d, 검증 실패: %d\n", len(s.MissingInputs), s.Failures))
	}

	if _, err := writer.WriteString(builder.String()); err != nil {
		return err
	}
	return writer.Flush()
}

// WriteJSON 요약 전체를 JSON 으로 저장
func (s *Summary) WriteJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		return err
	}
	return writer.Flush()
}
