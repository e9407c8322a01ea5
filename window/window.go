package window

import (
	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"

	circular "github.com/buoyantio/circular_array"
)

// Returns the mean of a slice of int64.
func Mean(data []int64) int64 {
	sum := int64(0)

	for _, n := range data {
		sum += n
	}

	count := int64(len(data))
	if count > 0 {
		return sum / count
	}
	return 0
}

// Given a window of recent samples, determine if a Change
// Indicator should be generated.
//
// For each 10x over the mean the latest item is, we add a single plus
// sign up to 3.
//
// For each 10x under the mean the latest item is, we add a single
// minus sign up to 3.
//
// Otherwise we return no change indicator.
func CalculateChangeIndicator(data []int64, latest int64) string {
	mad := Mean(data)

	if len(data) > 0 {
		// Integer division collapses mad/10^k to zero, so zeroes on
		// either side must be settled before the magnitude checks.
		if mad == 0 && latest == 0 {
			return ""
		}

		if mad == 0 && latest > 0 {
			return "+"
		}

		if latest == 0 && mad > 0 {
			return "-"
		}

		if latest >= (mad * 1000) {
			return "+++"
		}

		if latest >= (mad * 100) {
			return "++"
		}

		if latest >= (mad * 10) {
			return "+"
		}

		if latest <= (mad / 1000) {
			return "---"
		}

		if latest <= (mad / 100) {
			return "--"
		}

		if latest <= (mad / 10) {
			return "-"
		}
	}

	return ""
}

// History is a sliding window over the most recent non-negative
// samples, such as per-interval latencies. It keeps the newest `size`
// samples and drops the rest.
//
// Like the underlying circular array, a History is not safe for
// concurrent use.
type History struct {
	recent *circular.CircularArray[int64]
}

// NewHistory returns an empty History holding at most size samples.
func NewHistory(size int) (*History, error) {
	recent, err := circular.New[int64](size)
	if err != nil {
		return nil, err
	}
	return &History{recent: recent}, nil
}

// Record adds a sample, dropping the oldest one when the window is
// already full. Negative samples are clamped to zero so every
// windowed value stays within the histogram's range.
func (h *History) Record(v int64) {
	if v < 0 {
		v = 0
	}
	h.recent.Push(v)
}

// Len returns the cumulative number of samples ever recorded.
func (h *History) Len() int {
	return h.recent.Len()
}

// Live returns the number of samples currently in the window.
func (h *History) Live() int {
	return h.recent.Live()
}

// Last returns the most recent sample, or false when the window is
// empty.
func (h *History) Last() (int64, bool) {
	return h.recent.Last()
}

// Values returns the windowed samples oldest to newest.
func (h *History) Values() []int64 {
	return h.recent.Slice()
}

// Mean returns the mean of the windowed samples.
func (h *History) Mean() int64 {
	return Mean(h.Values())
}

// ChangeIndicator reports how far the latest value sits from the
// window's mean, as a string of up to three plus or minus signs.
func (h *History) ChangeIndicator(latest int64) string {
	return CalculateChangeIndicator(h.Values(), latest)
}

// Summary holds order statistics over the current window.
type Summary struct {
	Count int64
	Min   int64
	Max   int64
	Mean  int64
	P50   int64
	P95   int64
	P99   int64
	P999  int64
}

// Summary computes order statistics over the windowed samples with an
// hdrhistogram. An empty window yields a zero Summary.
func (h *History) Summary() Summary {
	if h.recent.Live() == 0 {
		return Summary{}
	}

	max := int64(1)
	for it := h.recent.Iter(); ; {
		v, ok := it.Next()
		if !ok {
			break
		}
		if v > max {
			max = v
		}
	}

	hist := hdrhistogram.New(0, max, 3)
	for it := h.recent.Iter(); ; {
		v, ok := it.Next()
		if !ok {
			break
		}
		hist.RecordValue(v)
	}

	return Summary{
		Count: hist.TotalCount(),
		Min:   hist.Min(),
		Max:   hist.Max(),
		Mean:  h.Mean(),
		P50:   hist.ValueAtQuantile(50),
		P95:   hist.ValueAtQuantile(95),
		P99:   hist.ValueAtQuantile(99),
		P999:  hist.ValueAtQuantile(99.9),
	}
}
