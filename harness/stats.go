package harness

import (
	"runtime"
	"time"
)

// systemStats 실행 시간/할당량 측정
type systemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
}

// startStats 측정 시작
func startStats() *systemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &systemStats{
		startTime: time.Now(),
		startMem:  m,
	}
}

// endStats 경과 시간과 누적 할당 바이트
func (s *systemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)

	var endMem runtime.MemStats
	runtime.ReadMemStats(&endMem)
	return duration, endMem.TotalAlloc - s.startMem.TotalAlloc
}
