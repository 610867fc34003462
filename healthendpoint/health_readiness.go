package healthendpoint

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

type (
	Pinger interface {
		Ping() error
	}

	ReadinessCheck struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	readinessResponse struct {
		OverallStatus string           `json:"overall_status"`
		Checks        []ReadinessCheck `json:"checks"`
	}
	Checker func() ReadinessCheck
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"

	readinessCacheTTL = 30 * time.Second
)

type readinessCache struct {
	mu       sync.Mutex
	checkers []Checker
	now      func() time.Time
	expires  time.Time
	response []byte
}

// the lock is held while checking so concurrent requests share one round of checks
func (c *readinessCache) get() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.response != nil && now.Before(c.expires) {
		return c.response, nil
	}

	checks := make([]ReadinessCheck, 0, len(c.checkers))
	overallStatus := StatusUp
	for _, checker := range c.checkers {
		check := checker()
		checks = append(checks, check)
		if check.Status == StatusDown {
			overallStatus = StatusDown
		}
	}
	response, err := json.Marshal(readinessResponse{OverallStatus: overallStatus, Checks: checks})
	if err != nil {
		return nil, err
	}
	c.response = response
	c.expires = now.Add(readinessCacheTTL)
	return response, nil
}

func readiness(checkers []Checker, now func() time.Time) func(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	cache := &readinessCache{checkers: checkers, now: now}
	return func(w http.ResponseWriter, r *http.Request, vars map[string]string) {
		w.Header().Set("Content-Type", "application/json")
		response, err := cache.get()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Internal error"}`))
			return
		}
		_, _ = w.Write(response)
	}
}

// PingChecker reports DOWN whenever pinger fails. A nil pinger is always UP.
func PingChecker(name string, checkType string, pinger Pinger) Checker {
	return func() ReadinessCheck {
		status := StatusUp
		if pinger != nil && pinger.Ping() != nil {
			status = StatusDown
		}
		return ReadinessCheck{Name: name, Type: checkType, Status: status}
	}
}

func DbChecker(dbName string, pinger Pinger) Checker {
	return PingChecker(dbName, "database", pinger)
}

func RedisChecker(name string, pinger Pinger) Checker {
	return PingChecker(name, "redis", pinger)
}
