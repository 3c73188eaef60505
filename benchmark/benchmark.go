// benchmark.go
// A reusable benchmarking module for SixSequences
// Measures execution time and memory usage for any wrapped run

package benchmark

import (
	"os"
	"runtime"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("benchmark")

// Report holds the resource usage of one benchmarked run.
type Report struct {
	Label          string
	Elapsed        time.Duration
	AllocMB        float64 // change in live heap
	TotalAllocMB   float64 // everything allocated during the run
	GCCycles       uint32
	GoroutinesFrom int
	GoroutinesTo   int
}

// Run wraps f, measures its runtime and memory usage and logs the result
// together with host information for repeatability. The error from f is
// returned unchanged.
func Run(label string, f func() error) (Report, error) {
	log.Noticef("[Benchmark] Running: %s", label)
	log.Noticef("[Benchmark] Timestamp: %s", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		log.Noticef("[Benchmark] Hostname: %s", host)
	}
	log.Noticef("[Benchmark] Go Version: %s", runtime.Version())
	log.Noticef("[Benchmark] OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	report := Report{Label: label, GoroutinesFrom: runtime.NumGoroutine()}
	start := time.Now()

	err := f()

	report.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	report.GoroutinesTo = runtime.NumGoroutine()
	report.AllocMB = (float64(memEnd.Alloc) - float64(memStart.Alloc)) / 1024.0 / 1024.0
	report.TotalAllocMB = float64(memEnd.TotalAlloc-memStart.TotalAlloc) / 1024.0 / 1024.0
	report.GCCycles = memEnd.NumGC - memStart.NumGC

	log.Noticef("[Benchmark] Time Elapsed: %v", report.Elapsed)
	log.Noticef("[Benchmark] Memory Used: %.2f MB", report.AllocMB)
	log.Noticef("[Benchmark] Total Allocated: %.2f MB", report.TotalAllocMB)
	log.Noticef("[Benchmark] Peak Heap: %.2f MB", float64(memEnd.HeapAlloc)/1024.0/1024.0)
	log.Noticef("[Benchmark] GC Cycles: %d", report.GCCycles)
	log.Noticef("[Benchmark] CPU Cores: %d", runtime.NumCPU())
	log.Noticef("[Benchmark] Goroutines Started: %d -> %d", report.GoroutinesFrom, report.GoroutinesTo)
	log.Notice("[Benchmark] ----------------------------------------")

	return report, err
}
