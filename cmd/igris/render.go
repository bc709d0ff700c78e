package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/igris/analysis"
	"github.com/katalvlaran/igris/core"
	"github.com/katalvlaran/igris/topology"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatJSON      = "json"
	formatYAML      = "yaml"
	formatAdjacency = "adjacency"
	formatSummary   = "summary"
)

var (
	igrisColor       = lipgloss.Color("#60a5fa")
	transformerColor = lipgloss.Color("#c084fc")
	mutedColor       = lipgloss.Color("#94a3b8")
	errorColor       = lipgloss.Color("#ef4444")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(48)
)

func accent(name string) lipgloss.Color {
	if name == topology.NameTransformer {
		return transformerColor
	}
	return igrisColor
}

// renderGraph writes g in one of the machine-readable formats.
func renderGraph(w io.Writer, g *core.Graph, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(topology.Export(g))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(topology.Export(g)); err != nil {
			return err
		}
		return enc.Close()
	case formatAdjacency:
		adj := g.AdjacencyList()
		for _, id := range g.NodeIDs() {
			if _, err := fmt.Fprintf(w, "%s: %s\n", id, strings.Join(adj[id], " ")); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json, yaml, adjacency or summary)", format)
	}
}

type namedSummary struct {
	name string
	sum  analysis.Summary
}

// renderSummaries draws one bordered box per summary, side by side.
func renderSummaries(w io.Writer, items []namedSummary) error {
	boxes := make([]string, 0, len(items))
	for _, it := range items {
		s := it.sum
		rows := []string{
			row("nodes", fmt.Sprintf("%d %s", s.Nodes, kinds(s.NodesByKind))),
			row("edges", fmt.Sprintf("%d %s", s.Edges, kinds(s.EdgesByKind))),
			row("degree", fmt.Sprintf("min %d  max %d  mean %.2f", s.MinDegree, s.MaxDegree, s.MeanDegree)),
			row("clustering", fmt.Sprintf("%.3f", s.Clustering)),
			row("path length", fmt.Sprintf("%.3f", s.PathLength)),
			row("diameter", fmt.Sprintf("%d", s.Diameter)),
			row("connected", fmt.Sprintf("%t", s.Connected)),
		}
		title := titleStyle.Foreground(accent(it.name)).Render(strings.ToUpper(it.name))
		box := boxStyle.BorderForeground(accent(it.name)).
			Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...))
		boxes = append(boxes, box)
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	return err
}

// renderProfiles draws the descriptive panel of every architecture.
func renderProfiles(w io.Writer, profiles []topology.Profile) error {
	boxes := make([]string, 0, len(profiles))
	for _, p := range profiles {
		body := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Foreground(accent(p.Name)).Render(p.Title),
			labelStyle.Render("Topology"), p.Topology, "",
			labelStyle.Render("Compute Primitive"), p.ComputePrimitive, "",
			labelStyle.Render("Signal Flow"), p.SignalFlow, "",
			lipgloss.NewStyle().Bold(true).Foreground(accent(p.Name)).Render("Key Advantage: ")+p.KeyAdvantage,
		)
		boxes = append(boxes, boxStyle.BorderForeground(accent(p.Name)).Render(body))
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	return err
}

func row(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-12s", label)) + value
}

// kinds formats a kind histogram as "(a 1, b 2)" in key order.
func kinds[K ~string](m map[K]int) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", k, m[K(k)]))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
