package monitor

import (
	"SRM_Health_Automation/internal/health-engine/model"
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// collectCPU reads the 1-minute load average and normalizes it against the
// CPU count. There is no portable per-process CPU gauge in the runtime, load
// is the closest honest signal.
func collectCPU() (model.CPUMetrics, error) {
	data, err := os.ReadFile("/proc/loadavg")
	if err != nil {
		return model.CPUMetrics{}, fmt.Errorf("collectCPU: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return model.CPUMetrics{}, fmt.Errorf("collectCPU: empty loadavg")
	}
	load, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return model.CPUMetrics{}, fmt.Errorf("collectCPU: %w", err)
	}
	usage := load / float64(runtime.NumCPU()) * 100
	if usage > 100 {
		usage = 100
	}
	return model.CPUMetrics{
		Usage: usage,
		Load:  load,
	}, nil
}

// collectMemory prefers /proc/meminfo for host figures and falls back to the
// Go runtime's own accounting.
func collectMemory() (model.MemoryMetrics, error) {
	if m, err := readMeminfo(); err == nil {
		return m, nil
	}
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	used := stats.HeapInuse + stats.StackInuse
	total := stats.Sys
	if total == 0 {
		return model.MemoryMetrics{}, fmt.Errorf("collectMemory: runtime reports no memory")
	}
	return model.MemoryMetrics{
		Total:      total,
		Used:       used,
		Free:       total - used,
		Percentage: float64(used) / float64(total) * 100,
	}, nil
}

func readMeminfo() (model.MemoryMetrics, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return model.MemoryMetrics{}, err
	}
	defer f.Close()

	values := make(map[string]uint64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		key := strings.TrimSuffix(fields[0], ":")
		kb, parseErr := strconv.ParseUint(fields[1], 10, 64)
		if parseErr != nil {
			continue
		}
		values[key] = kb * 1024
	}
	total, ok := values["MemTotal"]
	if !ok || total == 0 {
		return model.MemoryMetrics{}, fmt.Errorf("meminfo missing MemTotal")
	}
	free := values["MemAvailable"]
	used := total - free
	return model.MemoryMetrics{
		Total:      total,
		Used:       used,
		Free:       free,
		Percentage: float64(used) / float64(total) * 100,
	}, nil
}
