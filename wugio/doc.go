// Package wugio implements the external-facing IO of a simulation: a
// ground-truth graph loader, a YAML experiment config, and the output
// side of a run (snapshot and metric sinks consumed through
// simulate.Listener). The on-disk formats here are illustrative
// defaults, not a contract: Loader, SnapshotWriter, and MetricSink are
// the interfaces; YAMLLoader, JSONLSnapshotWriter, and CSVMetricSink
// are one concrete choice each.
//
// Errors:
//   - ErrInvalidFormat: a loaded document failed its structural checks
//     (duplicate edge, out-of-range node id, self-loop).
package wugio
