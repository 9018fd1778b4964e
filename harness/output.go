package harness

import (
	"fmt"
	"path/filepath"

	"sortlab/dataset"
	"sortlab/sortcore"
)

func headerLines(algorithm, inputFile string, c sortcore.Counters) []string {
	return []string{
		"==== DATA STRUCTURES LAB 4: SORT OUTPUT ====",
		"ALGORITHM: " + algorithm,
		"INPUT FILE: " + inputFile,
		fmt.Sprintf("comparisons=%d", c.Comparisons),
		fmt.Sprintf("exchanges=%d", c.Exchanges),
		"============================================",
	}
}

// writeRunOutput 작은 입력은 입력과 정렬 결과 전체, 큰 입력은 간결한 에코만 쓴다
func (r *Runner) writeRunOutput(outputDir, algorithm string, n int, o dataset.Order,
	raw []int, res sortcore.Result) error {
	lines := headerLines(algorithm, dataset.FileName(n, o), res.Counters)
	if n <= r.cfg.FullEchoMax {
		lines = append(lines, "---- INPUT (full echo) ----")
		lines = append(lines, dataset.FullEcho(raw)...)
		lines = append(lines, "---- SORTED DATA ----")
		lines = append(lines, dataset.FullEcho(res.Sorted)...)
	} else {
		lines = append(lines, "---- INPUT (concise echo) ----")
		lines = append(lines, dataset.EchoBlock(raw, r.cfg.EchoMaxShow)...)
	}
	name := fmt.Sprintf("%s_%s.txt", algorithm, dataset.Label(n, o))
	return dataset.WriteLines(filepath.Join(outputDir, name), lines)
}

func writeReadErrors(outputDir, inPath string, n int, o dataset.Order, lineErrs []dataset.LineError) error {
	lines := make([]string, 0, len(lineErrs)+1)
	lines = append(lines, fmt.Sprintf("Errors while reading %s:", inPath))
	for _, le := range lineErrs {
		lines = append(lines, fmt.Sprintf("line %d: %s", le.Line, le.Msg))
	}
	name := fmt.Sprintf("READ_ERRORS_%s.txt", dataset.Label(n, o))
	return dataset.WriteLines(filepath.Join(outputDir, name), lines)
}

func writeSortError(outputDir, algorithm, inPath string, n int, o dataset.Order, cause error) error {
	lines := []string{
		fmt.Sprintf("Sort did not produce non-decreasing output for %s.", inPath),
		cause.Error(),
	}
	name := fmt.Sprintf("ERROR_sort_%s_%s.txt", algorithm, dataset.Label(n, o))
	return dataset.WriteLines(filepath.Join(outputDir, name), lines)
}
