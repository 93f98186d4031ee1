package system

import (
	"errors"
	"os"
	"os/user"
	"runtime"
	"strings"
	"time"
)

// ErrNoUsername is returned when neither the account database nor the
// environment names the current user.
var ErrNoUsername = errors.New("unable to determine username")

// Provider implements host information for the shell
type Provider struct {
	startTime time.Time
	lookup    func() (*user.User, error)
	getenv    func(string) string
}

// Info is a snapshot of the host and process
type Info struct {
	GoVersion     string  `json:"go_version"`
	OS            string  `json:"os"`
	Arch          string  `json:"arch"`
	CPUs          int     `json:"cpus"`
	Goroutines    int     `json:"goroutines"`
	MemoryAllocMB uint64  `json:"memory_alloc"`
	MemorySysMB   uint64  `json:"memory_sys"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewProvider creates a system provider
func NewProvider() *Provider {
	return &Provider{
		startTime: time.Now(),
		lookup:    user.Current,
		getenv:    os.Getenv,
	}
}

// Username returns the login name of the user running the shell. Domain
// prefixes ("DOMAIN\user") are stripped.
func (s *Provider) Username() (string, error) {
	if u, err := s.lookup(); err == nil && u.Username != "" {
		return trimDomain(u.Username), nil
	}

	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if name := strings.TrimSpace(s.getenv(key)); name != "" {
			return trimDomain(name), nil
		}
	}
	return "", ErrNoUsername
}

// Info reports runtime information
func (s *Provider) Info() Info {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return Info{
		GoVersion:     runtime.Version(),
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		CPUs:          runtime.NumCPU(),
		Goroutines:    runtime.NumGoroutine(),
		MemoryAllocMB: m.Alloc / 1024 / 1024,
		MemorySysMB:   m.Sys / 1024 / 1024,
		UptimeSeconds: time.Since(s.startTime).Seconds(),
	}
}

func trimDomain(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
