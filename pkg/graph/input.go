package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/clustermap/pkg/errors"
)

// FormatFromPath infers the document format from a file extension.
// Unknown extensions default to JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadInputFile reads and validates an input document. The format is
// inferred from the file extension.
func ReadInputFile(path string) (Input, error) {
	if err := errs.ValidatePath(path); err != nil {
		return Input{}, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Input{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "input file %s not found", path)
	}
	if err != nil {
		return Input{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadInput(f, FormatFromPath(path))
}

// ReadInput decodes and validates an input document in the given format.
func ReadInput(r io.Reader, format string) (Input, error) {
	if err := errs.ValidateFormat(format, FormatJSON, FormatYAML); err != nil {
		return Input{}, err
	}

	var in Input
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&in); err != nil && err != io.EOF {
			return Input{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			return Input{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode json")
		}
	}

	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// UnmarshalInput decodes and validates a JSON input document.
func UnmarshalInput(data []byte) (Input, error) {
	return ReadInput(bytes.NewReader(data), FormatJSON)
}

// MarshalInput encodes an input document as compact JSON. Map keys are
// sorted, so equal documents produce equal bytes.
func MarshalInput(in Input) ([]byte, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// WriteInputFile writes an input document in the format implied by path.
func WriteInputFile(in Input, path string) error {
	var (
		data []byte
		err  error
	)
	if FormatFromPath(path) == FormatYAML {
		data, err = yaml.Marshal(in)
	} else {
		data, err = json.MarshalIndent(in, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the structural rules of the document: every item id is
// valid and unique, every price is finite, and every pair names exactly
// two ids.
func (in Input) Validate() error {
	seen := make(map[string]int, len(in.Items))
	for i, it := range in.Items {
		if err := errs.ValidateItemID(it.ID); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidInput, err, "items[%d]", i)
		}
		if j, dup := seen[it.ID]; dup {
			return errs.New(errs.ErrCodeInvalidInput, "items[%d]: duplicate item id %q (first at items[%d])", i, it.ID, j)
		}
		seen[it.ID] = i
		if math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
			return errs.New(errs.ErrCodeInvalidInput, "items[%d]: price of %q must be a finite number, got %v", i, it.ID, it.Price)
		}
	}
	if err := validatePairs("horizontal", in.Horizontal); err != nil {
		return err
	}
	return validatePairs("vertical", in.Vertical)
}

func validatePairs(name string, ps []Pair) error {
	for i, p := range ps {
		if len(p) != 2 {
			return errs.New(errs.ErrCodeInvalidInput, "%s[%d]: pair must have exactly 2 ids, got %d", name, i, len(p))
		}
		for _, id := range p {
			if err := errs.ValidateItemID(id); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidInput, err, "%s[%d]", name, i)
			}
		}
	}
	return nil
}
