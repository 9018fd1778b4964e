package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"sortlab/bloomfilter"
)

// Checksum 큰 입력을 간결하게 확인하기 위한 요약값
type Checksum struct {
	Count int
	Sum   int64
	Xor   uint32
}

func ComputeChecksum(values []int) Checksum {
	var cs Checksum
	for _, v := range values {
		cs.Count++
		cs.Sum += int64(v)
		cs.Xor ^= uint32(v & 0xFFFFFFFF)
	}
	return cs
}

func joinInts(values []int) string {
	return strings.Join(FullEcho(values), " ")
}

// EchoBlock 큰 입력의 간결한 에코: 체크섬, 중복 추정, 앞/뒤 maxShow 개
func EchoBlock(values []int, maxShow int) []string {
	cs := ComputeChecksum(values)
	out := []string{
		fmt.Sprintf("INPUT_ECHO_COUNT=%d", cs.Count),
		fmt.Sprintf("INPUT_ECHO_SUM=%d", cs.Sum),
		fmt.Sprintf("INPUT_ECHO_XOR=%d", cs.Xor),
		fmt.Sprintf("INPUT_ECHO_DUPS<=%d", bloomfilter.EstimateDuplicates(values)),
	}
	if cs.Count <= 2*maxShow {
		return append(out, "INPUT_VALUES="+joinInts(values))
	}
	return append(out,
		fmt.Sprintf("INPUT_HEAD(%d)=%s", maxShow, joinInts(values[:maxShow])),
		fmt.Sprintf("INPUT_TAIL(%d)=%s", maxShow, joinInts(values[len(values)-maxShow:])),
	)
}

// FullEcho 작은 입력은 값을 그대로 한 줄씩
func FullEcho(values []int) []string {
	return lo.Map(values, func(v int, _ int) string {
		return strconv.Itoa(v)
	})
}
