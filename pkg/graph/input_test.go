package graph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/clustermap/pkg/errors"
)

const sampleJSON = `{
  "items": [
    {"id": "A", "price": 5, "payload": {"title": "Alpha"}},
    {"id": "B", "price": 3},
    {"id": "C", "price": 1}
  ],
  "horizontal": [["C", "B"], ["B", "A"]],
  "vertical": [["A", "Z"]]
}`

const sampleYAML = `
items:
  - id: A
    price: 5
    payload:
      title: Alpha
  - id: B
    price: 3
  - id: C
    price: 1
horizontal:
  - [C, B]
  - [B, A]
vertical:
  - [A, Z]
`

func TestReadInputFormats(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{FormatJSON, sampleJSON},
		{FormatYAML, sampleYAML},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			in, err := ReadInput(strings.NewReader(tt.data), tt.format)
			if err != nil {
				t.Fatalf("ReadInput: %v", err)
			}
			if len(in.Items) != 3 || len(in.Horizontal) != 2 || len(in.Vertical) != 1 {
				t.Fatalf("got %d items, %d horizontal, %d vertical", len(in.Items), len(in.Horizontal), len(in.Vertical))
			}
			if in.Items[0].Payload["title"] != "Alpha" {
				t.Errorf("payload title = %v, want Alpha", in.Items[0].Payload["title"])
			}

			items := in.ToItems()
			if items[0].ID != "A" || items[0].Price != 5 {
				t.Errorf("ToItems()[0] = %+v", items[0])
			}
			h := in.HorizontalPairs()
			if h[0].A != "C" || h[0].B != "B" {
				t.Errorf("HorizontalPairs()[0] = %+v, want {C B}", h[0])
			}
			if v := in.VerticalPairs(); len(v) != 1 || v[0].B != "Z" {
				t.Errorf("VerticalPairs() = %+v", v)
			}
		})
	}
}

func TestReadInputRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errs.Code
	}{
		{"Malformed", `{"items": [`, errs.ErrCodeInvalidFormat},
		{"UnknownField", `{"items": [], "extra": 1}`, errs.ErrCodeInvalidFormat},
		{"EmptyID", `{"items": [{"id": "", "price": 1}]}`, errs.ErrCodeInvalidInput},
		{"DuplicateID", `{"items": [{"id": "A"}, {"id": "A"}]}`, errs.ErrCodeInvalidInput},
		{"ShortPair", `{"items": [{"id": "A"}], "horizontal": [["A"]]}`, errs.ErrCodeInvalidInput},
		{"LongPair", `{"items": [], "vertical": [["A", "B", "C"]]}`, errs.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadInput(strings.NewReader(tt.data), FormatJSON)
			if !errs.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReadInputRejectsNonFinitePrices(t *testing.T) {
	for _, price := range []string{".nan", ".inf", "-.inf"} {
		t.Run(price, func(t *testing.T) {
			doc := "items:\n  - {id: A, price: " + price + "}\n"
			_, err := ReadInput(strings.NewReader(doc), FormatYAML)
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("err = %v, want code %s", err, errs.ErrCodeInvalidInput)
			}
			if err != nil && !strings.Contains(err.Error(), "finite") {
				t.Errorf("err = %v, want mention of a finite price", err)
			}
		})
	}
}

func TestReadInputUnknownFormat(t *testing.T) {
	_, err := ReadInput(strings.NewReader("{}"), "xml")
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want %s", err, errs.ErrCodeInvalidFormat)
	}
}

func TestReadInputToleratesUnknownPairIDs(t *testing.T) {
	in, err := UnmarshalInput([]byte(`{"items": [{"id": "A"}], "horizontal": [["A", "ghost"], ["A", "A"]]}`))
	if err != nil {
		t.Fatalf("UnmarshalInput: %v", err)
	}
	if len(in.HorizontalPairs()) != 2 {
		t.Errorf("pairs = %d, want 2 (engine filters unknown ids)", len(in.HorizontalPairs()))
	}
}

func TestReadInputFile(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{"in.json": sampleJSON, "in.yml": sampleYAML} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		in, err := ReadInputFile(path)
		if err != nil {
			t.Fatalf("ReadInputFile(%s): %v", name, err)
		}
		if len(in.Items) != 3 {
			t.Errorf("%s: %d items, want 3", name, len(in.Items))
		}
	}

	_, err := ReadInputFile(filepath.Join(dir, "missing.json"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file: err = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}

func TestMarshalInputCanonical(t *testing.T) {
	a, _ := ReadInput(strings.NewReader(sampleJSON), FormatJSON)
	b, _ := ReadInput(strings.NewReader(sampleYAML), FormatYAML)

	da, err := MarshalInput(a)
	if err != nil {
		t.Fatalf("MarshalInput: %v", err)
	}
	db, _ := MarshalInput(b)
	if string(da) != string(db) {
		t.Errorf("JSON and YAML of the same document should marshal identically:\n%s\n%s", da, db)
	}
}

func TestWriteInputFileRoundTrip(t *testing.T) {
	in, _ := UnmarshalInput([]byte(sampleJSON))
	for _, name := range []string{"out.json", "out.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		if err := WriteInputFile(in, path); err != nil {
			t.Fatalf("WriteInputFile(%s): %v", name, err)
		}
		got, err := ReadInputFile(path)
		if err != nil {
			t.Fatalf("ReadInputFile(%s): %v", name, err)
		}
		a, _ := MarshalInput(in)
		b, _ := MarshalInput(got)
		if string(a) != string(b) {
			t.Errorf("%s: round trip changed document:\n%s\n%s", name, a, b)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"a.json": FormatJSON,
		"a.YAML": FormatYAML,
		"a.yml":  FormatYAML,
		"a.txt":  FormatJSON,
		"noext":  FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
