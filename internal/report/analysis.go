// internal/report/analysis.go
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mwiater/benchplot/internal/speedup"
	"github.com/mwiater/benchplot/internal/util"
)

// Analysis is the JSON export of every speedup curve computed in a run.
type Analysis struct {
	Files []FileAnalysis `json:"files"`
}

// FileAnalysis holds the speedups of one file, or one group of a file.
type FileAnalysis struct {
	File     string                     `json:"file"`
	Group    string                     `json:"group,omitempty"`
	Baseline float64                    `json:"baseline"`
	Speedups map[string][]speedup.Point `json:"speedups"`
}

func writeAnalysisJSON(path string, analysis Analysis) error {
	if analysis.Files == nil {
		analysis.Files = []FileAnalysis{}
	}
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal analysis JSON: %w", err)
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("unable to write analysis JSON %s: %w", path, err)
	}
	return nil
}

// ReadAnalysis loads an analysis JSON previously written by Generate.
func ReadAnalysis(path string) (Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Analysis{}, err
	}
	var analysis Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return Analysis{}, fmt.Errorf("unable to parse analysis JSON %s: %w", path, err)
	}
	return analysis, nil
}
