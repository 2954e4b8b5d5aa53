package health

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeProbe struct{ ok bool }

func (f fakeProbe) Healthy(context.Context) bool { return f.ok }
func (f fakeProbe) Backend() string              { return "fake" }

type fakeCounter map[string]int

func (f fakeCounter) Counts() map[string]int { return f }

func TestCheckBasic(t *testing.T) {
	ctx := context.Background()

	up := NewHealthChecker(fakeProbe{ok: true}, nil, time.Now()).CheckBasic(ctx)
	assert.Equal(t, "healthy", up.Status)
	assert.Equal(t, "fake", up.Sessions.Backend)

	down := NewHealthChecker(fakeProbe{ok: false}, nil, time.Now()).CheckBasic(ctx)
	assert.Equal(t, "unhealthy", down.Status)
	assert.Equal(t, "unhealthy", down.Sessions.Status)
}

func TestLivenessDoesNotProbe(t *testing.T) {
	l := NewHealthChecker(fakeProbe{ok: false}, nil, time.Now().Add(-90*time.Minute)).Liveness()
	assert.Equal(t, "ok", l.Status)
	assert.Equal(t, "fake", l.Sessions)
	assert.Equal(t, "1h 30m", l.Uptime)
}

func TestCheckDetailedIncludesRecords(t *testing.T) {
	counts := fakeCounter{"inspections": 13, "seizures": 4}
	d := NewHealthChecker(fakeProbe{ok: true}, counts, time.Now().Add(-2*time.Hour)).CheckDetailed(context.Background())
	assert.Equal(t, 13, d.Records["inspections"])
	assert.Equal(t, "2h 0m", d.Uptime)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "512.0 MB", formatBytes(512*1024*1024))
	assert.Equal(t, "2.0 GB", formatBytes(2*1024*1024*1024))
	assert.Equal(t, "1d 1h 1m", formatUptime(86400+3600+60))
	assert.Equal(t, "5m", formatUptime(300))
}
