// Package report renders a konig.Solution as text, YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/konig"
	"github.com/katalvlaran/konig/bipartite"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Pair is one matched edge.
type Pair struct {
	Right int `yaml:"right" json:"right"`
	Left  int `yaml:"left" json:"left"`
}

// NeighborList is one entry of the N map.
type NeighborList struct {
	Left   int   `yaml:"left" json:"left"`
	Rights []int `yaml:"rights" json:"rights"`
}

// Cover lists the cover members per side.
type Cover struct {
	Size  int   `yaml:"size" json:"size"`
	Left  []int `yaml:"left" json:"left"`
	Right []int `yaml:"right" json:"right"`
}

// Stats carries matcher counters.
type Stats struct {
	Seeded        int  `yaml:"seeded" json:"seeded"`
	Phases        int  `yaml:"phases" json:"phases"`
	Augmentations int  `yaml:"augmentations" json:"augmentations"`
	Verified      bool `yaml:"verified" json:"verified"`
}

// Report is the structured form of a solution.
type Report struct {
	Matching  []Pair         `yaml:"matching" json:"matching"`
	Neighbors []NeighborList `yaml:"neighbors" json:"neighbors"`
	Reachable []string       `yaml:"reachable" json:"reachable"`
	Cover     Cover          `yaml:"cover" json:"cover"`
	Stats     Stats          `yaml:"stats" json:"stats"`
}

// Build converts sol into a Report with every list in ascending ID order.
func Build(sol *konig.Solution) *Report {
	r := &Report{
		Matching:  []Pair{},
		Neighbors: []NeighborList{},
		Reachable: []string{},
		Cover:     Cover{Size: sol.Size(), Left: []int{}, Right: []int{}},
		Stats: Stats{
			Seeded:        sol.Seeded,
			Phases:        sol.Phases,
			Augmentations: sol.Augmentations,
			Verified:      sol.Verified,
		},
	}
	for _, e := range sol.Matching.Pairs() {
		r.Matching = append(r.Matching, Pair{Right: int(e.To), Left: int(e.From)})
	}
	for _, u := range sortedLefts(sol.Neighbors) {
		nl := NeighborList{Left: int(u)}
		for _, v := range sol.Neighbors[u] {
			nl.Rights = append(nl.Rights, int(v))
		}
		r.Neighbors = append(r.Neighbors, nl)
	}
	for _, x := range sol.Reachable.Sorted() {
		r.Reachable = append(r.Reachable, x.String())
	}
	for _, u := range sol.Cover.Lefts() {
		r.Cover.Left = append(r.Cover.Left, int(u))
	}
	for _, v := range sol.Cover.Rights() {
		r.Cover.Right = append(r.Cover.Right, int(v))
	}

	return r
}

// Render writes sol to w in the named format.
func Render(w io.Writer, format string, sol *konig.Solution) error {
	switch format {
	case "", FormatText:
		return renderText(w, sol)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Build(sol)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(Build(sol)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// renderText prints the matching, N, T, the cover size and one cover
// member per line.
func renderText(w io.Writer, sol *konig.Solution) error {
	var b strings.Builder

	pairs := sol.Matching.Pairs()
	items := make([]string, len(pairs))
	for i, e := range pairs {
		items[i] = fmt.Sprintf("%d:%d", int(e.To), int(e.From))
	}
	b.WriteString("{" + strings.Join(items, " ") + "}\n")

	lefts := sortedLefts(sol.Neighbors)
	items = make([]string, len(lefts))
	for i, u := range lefts {
		rs := make([]string, len(sol.Neighbors[u]))
		for j, v := range sol.Neighbors[u] {
			rs[j] = strconv.Itoa(int(v))
		}
		items[i] = fmt.Sprintf("%d:[%s]", int(u), strings.Join(rs, " "))
	}
	b.WriteString("{" + strings.Join(items, " ") + "}\n")

	reach := sol.Reachable.Sorted()
	items = make([]string, len(reach))
	for i, x := range reach {
		items[i] = x.String()
	}
	b.WriteString("{" + strings.Join(items, " ") + "}\n")

	b.WriteString(strconv.Itoa(sol.Size()) + "\n")
	for _, x := range sol.Cover.Sorted() {
		b.WriteString(strconv.Itoa(x.ID) + "\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func sortedLefts(n map[bipartite.Left][]bipartite.Right) []bipartite.Left {
	out := make([]bipartite.Left, 0, len(n))
	for u := range n {
		out = append(out, u)
	}
	slices.Sort(out)

	return out
}
