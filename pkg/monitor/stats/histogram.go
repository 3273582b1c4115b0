package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
)

const (
	DefaultWindows     = 2
	DefaultMaxDuration = 10 * time.Second
)

var (
	ErrNegativeDuration   = errors.New("stats: negative duration")
	ErrDurationOutOfRange = errors.New("stats: duration above the histogram's maximum")
)

type HistogramOptions struct {
	// Name prefixes every collected value, e.g. "probe.responses.timing".
	Name        string
	Quantiles   []float64
	MaxDuration time.Duration
	Windows     int
}

// Histogram tracks call latencies in milliseconds over a sliding set of
// windows. The current window is rotated once it holds enough values to
// resolve the finest quantile, so old latencies age out at the rate new
// ones arrive.
type Histogram struct {
	name        string
	quantiles   []float64
	maxDuration time.Duration

	countBeforeRotation int64

	mu        sync.Mutex
	histogram *hdrhistogram.WindowedHistogram
}

func NewHistogram(opts HistogramOptions) *Histogram {
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = DefaultMaxDuration
	}
	if opts.Windows <= 0 {
		opts.Windows = DefaultWindows
	}

	return &Histogram{
		name:                opts.Name,
		quantiles:           opts.Quantiles,
		maxDuration:         opts.MaxDuration,
		countBeforeRotation: countBeforeRotation(opts.Quantiles),
		histogram:           hdrhistogram.NewWindowed(opts.Windows, 0, milliseconds(opts.MaxDuration), 1),
	}
}

func (h *Histogram) Observe(duration time.Duration) error {
	switch {
	case duration < 0:
		return ErrNegativeDuration
	case duration > h.maxDuration:
		return ErrDurationOutOfRange
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.histogram.Current.TotalCount() >= h.countBeforeRotation {
		h.histogram.Rotate()
	}

	return h.histogram.Current.RecordValue(milliseconds(duration))
}

// Collect returns the max and every configured quantile, keyed
// "<name>.max" and "<name>.p<quantile without dot>".
func (h *Histogram) Collect() map[string]int64 {
	h.mu.Lock()
	merged := h.histogram.Merge()
	h.mu.Unlock()

	values := map[string]int64{
		h.name + ".max": merged.Max(),
	}

	for _, q := range h.quantiles {
		label := strings.ReplaceAll(strconv.FormatFloat(q, 'f', -1, 64), ".", "")
		values[fmt.Sprintf("%s.p%s", h.name, label)] = merged.ValueAtQuantile(q)
	}

	return values
}

func (h *Histogram) CountBeforeRotation() int64 {
	return h.countBeforeRotation
}

// countBeforeRotation is the fewest values that can resolve every quantile:
// 2 for p50, 4 for p25 or p75, 100 for p99, 1000 for p99.9.
func countBeforeRotation(quantiles []float64) int64 {
	count := int64(1)

	for _, q := range quantiles {
		scale := int64(100)
		for i := 0; i < 6 && math.Abs(q-math.Round(q)) > 1e-9; i++ {
			scale *= 10
			q *= 10
		}

		if n := scale / gcd(int64(math.Round(q)), scale); n > count {
			count = n
		}
	}

	return count
}

func milliseconds(d time.Duration) int64 {
	return int64(d / time.Millisecond)
}

func gcd(x, y int64) int64 {
	for y != 0 {
		x, y = y, x%y
	}

	return x
}
