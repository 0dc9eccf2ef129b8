package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/swarmpath/antcolony/aco"
	"github.com/swarmpath/antcolony/builder"
)

// routeReport is the JSON artifact consumed by plotting collaborators:
// the best route in order, its open-path distance, and the node layout.
type routeReport struct {
	Route    []string       `json:"route"`
	Distance float64        `json:"distance"`
	Layout   builder.Layout `json:"layout,omitempty"`
}

// writeHistoryCSV writes the convergence history as
// iteration,best,mean rows with a header.
func writeHistoryCSV(path string, h aco.History) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create history file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"iteration", "best", "mean"}); err != nil {
		return fmt.Errorf("write history header: %w", err)
	}
	for i := range h.Best {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(h.Best[i], 'g', -1, 64),
			strconv.FormatFloat(h.Mean[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write history row %d: %w", i, err)
		}
	}
	w.Flush()

	return w.Error()
}

// writeRouteJSON writes the best route with its layout for plotting.
func writeRouteJSON(path string, route aco.Route, distance float64, layout builder.Layout) error {
	data, err := json.MarshalIndent(routeReport{
		Route:    route,
		Distance: distance,
		Layout:   layout,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode route report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write route report: %w", err)
	}

	return nil
}
