package pipeline

import (
	"strings"
	"testing"

	errs "github.com/matzehuels/clustermap/pkg/errors"
	"github.com/matzehuels/clustermap/pkg/group"
)

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()

	if o.CardWidth != DefaultCardWidth || *o.CardGap != DefaultCardGap ||
		*o.ConnectorWidth != DefaultConnectorWidth || *o.LaneSpacing != DefaultLaneSpacing {
		t.Errorf("metrics defaults = %+v", o.Metrics())
	}
	if o.Strategy != "chain" {
		t.Errorf("Strategy = %q, want chain", o.Strategy)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}
	if o.Metrics().Step() != 200 {
		t.Errorf("Step = %v, want 200", o.Metrics().Step())
	}
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	o := Options{CardWidth: 100, Strategy: "positional", IncludeIsolated: true}
	o.SetDefaults()
	if o.CardWidth != 100 || o.Strategy != "positional" || !o.IncludeIsolated {
		t.Errorf("explicit values overwritten: %+v", o)
	}
}

func TestExplicitZeroSurvivesValidate(t *testing.T) {
	o := Options{CardWidth: 100, CardGap: Px(0), ConnectorWidth: Px(0), LaneSpacing: Px(0)}
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	m := o.Metrics()
	if m.CardGap != 0 || m.ConnectorWidth != 0 || m.LaneSpacing != 0 {
		t.Errorf("Metrics() = %+v, want explicit zeros kept", m)
	}
	if got := m.Step(); got != 100 {
		t.Errorf("Step = %v, want 100", got)
	}

	k := o.LayoutKeyOpts()
	if k.CardGap != 0 || k.ConnectorWidth != 0 {
		t.Errorf("LayoutKeyOpts() = %+v, want explicit zeros", k)
	}
	if k == (Options{CardWidth: 100, Strategy: o.Strategy}).LayoutKeyOpts() {
		t.Error("explicit zeros and defaults share a cache key")
	}
}

func TestMetricsNilFieldsReadAsDefaults(t *testing.T) {
	m := Options{CardWidth: 160}.Metrics()
	if m.Step() != 200 || m.LaneSpacing != DefaultLaneSpacing {
		t.Errorf("Metrics() = %+v, want defaults for unset fields", m)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"Defaults", Options{}, ""},
		{"Positional", Options{Strategy: "positional"}, ""},
		{"NegativeWidth", Options{CardWidth: -1}, "CardWidth must be greater than 0"},
		{"ZeroGap", Options{CardGap: Px(0)}, ""},
		{"NegativeGap", Options{CardGap: Px(-4)}, "CardGap must be at least 0"},
		{"NegativeLane", Options{LaneSpacing: Px(-1)}, "LaneSpacing must be at least 0"},
		{"UnknownStrategy", Options{Strategy: "spiral"}, "Strategy must be one of: chain, positional"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Fatalf("Validate() = %v, want %s", err, errs.ErrCodeInvalidConfig)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestGroupStrategy(t *testing.T) {
	tests := map[string]group.Strategy{
		"":           group.Chain,
		"chain":      group.Chain,
		"positional": group.Positional,
		"bogus":      group.Chain,
	}
	for in, want := range tests {
		if got := (Options{Strategy: in}).GroupStrategy(); got != want {
			t.Errorf("GroupStrategy(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLayoutKeyOpts(t *testing.T) {
	o := Options{CardWidth: 120, CardGap: Px(8), ConnectorWidth: Px(12), LaneSpacing: Px(2), Strategy: "positional", IncludeIsolated: true}
	k := o.LayoutKeyOpts()
	if k.CardWidth != 120 || k.CardGap != 8 || k.ConnectorWidth != 12 || k.LaneSpacing != 2 ||
		k.Strategy != "positional" || !k.IncludeIsolated {
		t.Errorf("LayoutKeyOpts() = %+v", k)
	}
}
