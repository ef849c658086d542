package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 5 * time.Second

var (
	systemCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	systemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_bytes",
		Help: "Host memory in use, bytes",
	})

	processHeapBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "application_memory_usage_bytes",
		Help: "Go heap allocation of the process, bytes",
	})

	processGoroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "application_goroutines",
		Help: "Number of live goroutines",
	})
)

// StartSystemMetricsCollector samples host and runtime gauges for the
// lifetime of the process.
func StartSystemMetricsCollector() {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for range ticker.C {
			collectHost()
			collectRuntime()
		}
	}()
}

func collectHost() {
	if percents, err := cpu.Percent(time.Second, false); err == nil && len(percents) > 0 {
		systemCPUUsage.Set(percents[0])
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		systemMemoryUsage.Set(float64(vmStat.Used))
	}
}

func collectRuntime() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	processHeapBytes.Set(float64(m.Alloc))
	processGoroutines.Set(float64(runtime.NumGoroutine()))
}
