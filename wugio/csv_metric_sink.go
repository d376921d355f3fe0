package wugio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// CSVMetricSink writes one CSV row per checkpoint, with a header row
// emitted lazily from the first call's metric keys (sorted for
// determinism) and reused thereafter.
type CSVMetricSink struct {
	writer *csv.Writer
	header []string
}

// NewCSVMetricSink wraps out in a buffered csv.Writer.
func NewCSVMetricSink(out io.Writer) *CSVMetricSink {
	return &CSVMetricSink{writer: csv.NewWriter(out)}
}

// WriteMetrics implements MetricSink. Every call must supply exactly
// the same metric keys as the first; a differing key set returns
// ErrInvalidFormat rather than silently writing misaligned columns.
func (s *CSVMetricSink) WriteMetrics(round int, metrics map[string]float64) error {
	if s.header == nil {
		keys := make([]string, 0, len(metrics))
		for k := range metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		s.header = keys

		if err := s.writer.Write(append([]string{"round"}, s.header...)); err != nil {
			return fmt.Errorf("wugio: writing csv header: %w", err)
		}
	}
	if len(metrics) != len(s.header) {
		return fmt.Errorf("%w: metric key count changed between calls", ErrInvalidFormat)
	}

	row := make([]string, 0, len(s.header)+1)
	row = append(row, strconv.Itoa(round))
	for _, k := range s.header {
		v, ok := metrics[k]
		if !ok {
			return fmt.Errorf("%w: missing metric %q", ErrInvalidFormat, k)
		}
		row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
	}

	if err := s.writer.Write(row); err != nil {
		return fmt.Errorf("wugio: writing csv row: %w", err)
	}
	s.writer.Flush()

	return s.writer.Error()
}
