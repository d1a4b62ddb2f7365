package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	errs "github.com/matzehuels/clustermap/pkg/errors"
)

// layoutNamespace scopes layout ids to this project.
var layoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/clustermap/layout"))

// LayoutID derives the deterministic id of a layout from its cache key.
func LayoutID(key string) string {
	return uuid.NewSHA1(layoutNamespace, []byte(key)).String()
}

// Layout is the serialized result of one engine run.
type Layout struct {
	ID              string      `json:"id"`
	Strategy        string      `json:"strategy"`
	IncludeIsolated bool        `json:"include_isolated,omitempty"`
	Metrics         Metrics     `json:"metrics"`
	Clusters        []Cluster   `json:"clusters"`
	Groups          [][]int     `json:"groups"`
	Connectors      []Connector `json:"connectors"`
}

// Metrics are the pixel constants the layout was computed with.
type Metrics struct {
	CardWidth      float64 `json:"card_width"`
	CardGap        float64 `json:"card_gap"`
	ConnectorWidth float64 `json:"connector_width"`
	LaneSpacing    float64 `json:"lane_spacing"`
}

// Cluster is one ranked cluster. Items are in display order.
type Cluster struct {
	Index  int     `json:"index"`
	Group  int     `json:"group"`
	Hue    int     `json:"hue"`
	Color  string  `json:"color"`
	Offset float64 `json:"offset"`
	Items  []Item  `json:"items"`
}

// Connector is a resolved edge between two cards.
type Connector struct {
	Source Endpoint `json:"source"`
	Target Endpoint `json:"target"`
	Span   int      `json:"span"`
	Lane   int      `json:"lane"`
}

// Endpoint locates one end of a connector. X is the horizontal centre of
// the card including the lane nudge.
type Endpoint struct {
	Cluster  int     `json:"cluster"`
	Position int     `json:"position"`
	Item     string  `json:"item"`
	X        float64 `json:"x"`
}

// MarshalLayout encodes a layout as indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLayout writes a layout as indented JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteLayoutFile writes a layout to path.
func WriteLayoutFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteLayout(l, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// UnmarshalLayout decodes and checks a layout document.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// ReadLayoutFile reads a layout document from path.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Layout{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "layout file %s not found", path)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}

// Validate checks that groups and connectors reference existing clusters
// and that every cluster belongs to exactly one group.
func (l Layout) Validate() error {
	n := len(l.Clusters)
	member := make([]bool, n)
	for gi, g := range l.Groups {
		for _, c := range g {
			if c < 0 || c >= n {
				return errs.New(errs.ErrCodeInvalidFormat, "groups[%d]: cluster %d out of range", gi, c)
			}
			if member[c] {
				return errs.New(errs.ErrCodeInvalidFormat, "groups[%d]: cluster %d grouped twice", gi, c)
			}
			member[c] = true
		}
	}
	for c, ok := range member {
		if !ok {
			return errs.New(errs.ErrCodeInvalidFormat, "cluster %d belongs to no group", c)
		}
	}
	for i, k := range l.Connectors {
		if k.Source.Cluster < 0 || k.Source.Cluster >= n || k.Target.Cluster < 0 || k.Target.Cluster >= n {
			return errs.New(errs.ErrCodeInvalidFormat, "connectors[%d]: cluster out of range", i)
		}
	}
	return nil
}
