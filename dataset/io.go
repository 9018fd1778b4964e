package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// LineError 입력 파일에서 건너뛴 줄
type LineError struct {
	Line int
	Msg  string
}

// WriteInts 한 줄에 하나씩 정수 쓰기
func WriteInts(path string, data []int) error {
	lines := make([]string, len(data))
	for i, v := range data {
		lines[i] = strconv.Itoa(v)
	}
	return WriteLines(path, lines)
}

// WriteLines 주어진 줄들을 개행으로 끝맺어 파일에 쓰기
func WriteLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	// 큰 버퍼 사용으로 I/O 성능 향상
	writer := bufio.NewWriterSize(file, 64*1024)
	for _, line := range lines {
		writer.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			writer.WriteByte('\n')
		}
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return file.Close()
}

// ReadInts 개행 구분 정수 읽기.
// 빈 줄과 정수가 아닌 줄은 LineError 로 모으고 건너뛴다. 파일을 열 수 없으면 에러.
func ReadInts(path string) ([]int, []LineError, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	// 파일 크기 기반으로 슬라이스 미리 할당 (평균 5자리 + 개행)
	var data []int
	if info, err := file.Stat(); err == nil {
		data = make([]int, 0, info.Size()/6)
	}

	var lineErrs []LineError
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			lineErrs = append(lineErrs, LineError{Line: lineno, Msg: "blank line"})
			continue
		}
		if !isInteger(line) {
			lineErrs = append(lineErrs, LineError{Line: lineno, Msg: "non-integer: " + line})
			continue
		}
		num, err := strconv.Atoi(line)
		if err != nil {
			lineErrs = append(lineErrs, LineError{Line: lineno, Msg: "out of range: " + line})
			continue
		}
		data = append(data, num)
	}
	if err := scanner.Err(); err != nil {
		return data, lineErrs, errors.Wrapf(err, "read %s", path)
	}
	return data, lineErrs, nil
}

// isInteger 선택적 '-' 다음에 숫자만 오는지
func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
