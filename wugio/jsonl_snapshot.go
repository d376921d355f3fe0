package wugio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/wugsim/wugraph"
)

// snapshotRecord is one line of a JSONLSnapshotWriter's output.
type snapshotRecord struct {
	Round      int            `json:"round"`
	Nodes      int            `json:"nodes"`
	Edges      []snapshotEdge `json:"edges"`
	Clusters   map[int][]int  `json:"clusters"`
	Judgements int            `json:"judgements"`
}

type snapshotEdge struct {
	U, V   int
	Weight float64
}

// MarshalJSON renders a snapshotEdge as a compact [u, v, weight] triple.
func (e snapshotEdge) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{float64(e.U), float64(e.V), e.Weight})
}

// JSONLSnapshotWriter writes one JSON object per line to an
// io.Writer: a simple, greppable default for SnapshotWriter. Format is
// illustrative, not a contract (see package doc).
type JSONLSnapshotWriter struct {
	Out io.Writer
}

// WriteSnapshot implements SnapshotWriter.
func (w JSONLSnapshotWriter) WriteSnapshot(round int, annotated *wugraph.AnnotatedGraph, clusters map[int][]wugraph.Node) error {
	edges := make([]snapshotEdge, 0, annotated.NumberOfEdges())
	for _, p := range annotated.Edges() {
		weight, ok := annotated.GetEdge(p.U, p.V)
		if !ok {
			continue
		}
		edges = append(edges, snapshotEdge{U: p.U, V: p.V, Weight: weight})
	}

	record := snapshotRecord{
		Round:      round,
		Nodes:      annotated.NumberOfNodes(),
		Edges:      edges,
		Clusters:   clusters,
		Judgements: annotated.JudgementCount(),
	}

	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("wugio: marshaling snapshot: %w", err)
	}
	line = append(line, '\n')

	_, err = w.Out.Write(line)

	return err
}
