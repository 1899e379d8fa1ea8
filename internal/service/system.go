package service

import (
	"runtime"
	"time"
)

const (
	// Version is reported by the health, status, and root endpoints.
	Version = "1.0.0"

	serverName = "my-node-app"
)

// HealthInfo is the /api/health payload.
type HealthInfo struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds float64   `json:"uptime"`
	Version       string    `json:"version"`
}

// MemoryInfo is a small subset of runtime.MemStats.
type MemoryInfo struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
	Goroutines      int    `json:"goroutines"`
}

// StatusInfo is the /api/status payload.
type StatusInfo struct {
	Server      string     `json:"server"`
	Environment string     `json:"environment"`
	GoVersion   string     `json:"goVersion"`
	Memory      MemoryInfo `json:"memory"`
	Timestamp   time.Time  `json:"timestamp"`
	Endpoints   []string   `json:"endpoints"`
}

// statusEndpoints is the fixed list advertised by /api/status.
var statusEndpoints = []string{
	"GET /api/health",
	"GET /api/status",
	"GET /api/users",
	"POST /api/users",
	"POST /api/users/bulk",
	"GET /api/users/:id",
	"PUT /api/users/:id",
	"DELETE /api/users/:id",
	"GET /api/products",
	"POST /api/products",
	"GET /api/products/:id",
	"PUT /api/products/:id",
	"DELETE /api/products/:id",
	"GET /api/search/users",
	"GET /api/search/products",
}

type SystemService struct {
	env     string
	started time.Time
}

func NewSystemService(env string) *SystemService {
	return &SystemService{env: env, started: time.Now()}
}

func (s *SystemService) Health() HealthInfo {
	return HealthInfo{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		UptimeSeconds: time.Since(s.started).Seconds(),
		Version:       Version,
	}
}

func (s *SystemService) Status() StatusInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return StatusInfo{
		Server:      serverName,
		Environment: s.env,
		GoVersion:   runtime.Version(),
		Memory: MemoryInfo{
			AllocBytes:      m.Alloc,
			TotalAllocBytes: m.TotalAlloc,
			SysBytes:        m.Sys,
			NumGC:           m.NumGC,
			Goroutines:      runtime.NumGoroutine(),
		},
		Timestamp: time.Now().UTC(),
		Endpoints: append([]string(nil), statusEndpoints...),
	}
}
