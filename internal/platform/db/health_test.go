package db

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPoolStats_HealthyRequiresOpenConns(t *testing.T) {
	stats := &PoolStats{TotalConns: 10, IdleConns: 5, AcquiredConns: 5, MaxConns: 20, Healthy: true}
	if !stats.Healthy {
		t.Error("expected Healthy with open connections")
	}

	empty := &PoolStats{MaxConns: 20}
	if empty.Healthy {
		t.Error("expected Healthy false when TotalConns is 0")
	}
}

func TestHealth_ErrorOmittedWhenHealthy(t *testing.T) {
	h := Health{Status: "healthy", PingMs: 1.2, Pool: &PoolStats{TotalConns: 1, Healthy: true}}
	raw, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), `"error"`) {
		t.Errorf("healthy payload carries an error field: %s", raw)
	}

	h = Health{Status: "unhealthy", Error: "connection refused", Pool: &PoolStats{}}
	raw, _ = json.Marshal(h)
	if !strings.Contains(string(raw), "connection refused") {
		t.Errorf("unhealthy payload missing error: %s", raw)
	}
}
