package health

import (
	"context"
	"sync"
	"time"
)

// LivenessCheck is the check name that gates the HTTP status of /health.
// Dependency checks degrade the report but never fail the endpoint.
const LivenessCheck = "liveness"

// CheckFunc is a named health predicate. A nil error means healthy.
type CheckFunc func(ctx context.Context) error

// CheckResult is the outcome of a single named check
type CheckResult struct {
	Healthy bool   `json:"healthy"`
	Detail  string `json:"detail,omitempty"`
}

// Report aggregates all registered checks
type Report struct {
	Service   string                 `json:"service"`
	Version   string                 `json:"version"`
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks"`
}

// Available reports whether the liveness check passed
func (r Report) Available() bool {
	check, ok := r.Checks[LivenessCheck]
	return ok && check.Healthy
}

// Checker aggregates named health checks into a report
type Checker struct {
	service string
	version string

	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// NewChecker creates a health checker for the named service
func NewChecker(service, version string) *Checker {
	return &Checker{
		service: service,
		version: version,
		checks:  make(map[string]CheckFunc),
	}
}

// Register adds or replaces a named check
func (c *Checker) Register(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Check runs every registered check and aggregates the results. Status is
// "healthy" when all checks pass, "degraded" when only dependency checks
// fail, and "unhealthy" when liveness fails.
func (c *Checker) Check(ctx context.Context) Report {
	c.mu.RLock()
	checks := make(map[string]CheckFunc, len(c.checks))
	for name, check := range c.checks {
		checks[name] = check
	}
	c.mu.RUnlock()

	report := Report{
		Service:   c.service,
		Version:   c.version,
		Timestamp: time.Now().UTC(),
		Checks:    make(map[string]CheckResult, len(checks)),
	}

	allHealthy := true
	for name, check := range checks {
		result := CheckResult{Healthy: true}
		if err := check(ctx); err != nil {
			result = CheckResult{Healthy: false, Detail: err.Error()}
			allHealthy = false
		}
		report.Checks[name] = result
	}

	switch {
	case allHealthy:
		report.Status = "healthy"
	case report.Available():
		report.Status = "degraded"
	default:
		report.Status = "unhealthy"
	}

	return report
}
