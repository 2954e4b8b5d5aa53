package health

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Probe is a dependency the service can report on
type Probe interface {
	Healthy(ctx context.Context) bool
	Backend() string
}

// RecordCounter reports how many records each collection holds
type RecordCounter interface {
	Counts() map[string]int
}

type HealthChecker struct {
	sessions Probe
	records  RecordCounter
	started  time.Time
}

type HealthStatus struct {
	Status   string          `json:"status"`
	Sessions DependencyState `json:"sessions"`
}

type DependencyState struct {
	Backend      string `json:"backend"`
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

type DetailedStatus struct {
	HealthStatus
	Uptime        string         `json:"uptime"`
	Records       map[string]int `json:"records"`
	CPUPercent    float64        `json:"cpu_percent"`
	MemoryPercent float64        `json:"memory_percent"`
	MemoryUsed    string         `json:"memory_used"`
	MemoryTotal   string         `json:"memory_total"`
	DiskPercent   float64        `json:"disk_percent"`
	DiskUsed      string         `json:"disk_used"`
	DiskTotal     string         `json:"disk_total"`
}

func NewHealthChecker(sessions Probe, records RecordCounter, started time.Time) *HealthChecker {
	return &HealthChecker{sessions: sessions, records: records, started: started}
}

// CheckBasic is healthy when the session store answers
func (h *HealthChecker) CheckBasic(ctx context.Context) HealthStatus {
	dep := h.checkSessions(ctx)

	status := "healthy"
	if dep.Status != "healthy" {
		status = "unhealthy"
	}
	return HealthStatus{Status: status, Sessions: dep}
}

func (h *HealthChecker) checkSessions(ctx context.Context) DependencyState {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	ok := h.sessions.Healthy(ctx)
	state := DependencyState{
		Backend:      h.sessions.Backend(),
		Status:       "healthy",
		ResponseTime: time.Since(start).Milliseconds(),
	}
	if !ok {
		state.Status = "unhealthy"
	}
	return state
}

// LivenessStatus answers without touching any dependency
type LivenessStatus struct {
	Status   string `json:"status"`
	Sessions string `json:"sessions"`
	Uptime   string `json:"uptime"`
}

// Liveness reports the process as up along with the configured session
// backend. The backend is not probed.
func (h *HealthChecker) Liveness() LivenessStatus {
	backend := "none"
	if h.sessions != nil {
		backend = h.sessions.Backend()
	}
	return LivenessStatus{
		Status:   "ok",
		Sessions: backend,
		Uptime:   formatUptime(int(time.Since(h.started).Seconds())),
	}
}

// CheckDetailed adds record counts and host resource usage
func (h *HealthChecker) CheckDetailed(ctx context.Context) DetailedStatus {
	d := DetailedStatus{
		HealthStatus: h.CheckBasic(ctx),
		Uptime:       formatUptime(int(time.Since(h.started).Seconds())),
	}
	if h.records != nil {
		d.Records = h.records.Counts()
	}

	if cpuPercents, err := cpu.PercentWithContext(ctx, 200*time.Millisecond, false); err == nil && len(cpuPercents) > 0 {
		d.CPUPercent = cpuPercents[0]
	}
	if memStats, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		d.MemoryPercent = memStats.UsedPercent
		d.MemoryUsed = formatBytes(memStats.Used)
		d.MemoryTotal = formatBytes(memStats.Total)
	}
	if diskStats, err := disk.UsageWithContext(ctx, "/"); err == nil {
		d.DiskPercent = diskStats.UsedPercent
		d.DiskUsed = formatBytes(diskStats.Used)
		d.DiskTotal = formatBytes(diskStats.Total)
	}
	return d
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func formatUptime(seconds int) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
