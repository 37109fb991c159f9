package profile

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an on-disk profile encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	// FormatSamples is a sampled log: CSV records "depth,facies".
	FormatSamples Format = "samples"
)

// document is the YAML/JSON shape. Either the boundaries+facies pair or a
// layers list may be given; layers win when both are present.
type document struct {
	Boundaries []float64 `yaml:"boundaries" json:"boundaries"`
	Facies     []string  `yaml:"facies" json:"facies"`
	Layers     []Layer   `yaml:"layers" json:"layers"`
}

func (d document) profile() (*Profile, error) {
	if len(d.Layers) > 0 {
		return FromLayers(d.Layers)
	}

	return New(d.Boundaries, d.Facies)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Load reads and validates a profile file; the format follows the extension.
func Load(path string) (*Profile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return LoadAs(path, format)
}

// Decode reads one profile from r in the given format.
//
// CSV input is one layer per record, "top,base,facies", with an optional
// header row whose first cell is not a number.
func Decode(r io.Reader, format Format) (*Profile, error) {
	switch format {
	case FormatYAML:
		var doc document
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyProfile
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return doc.profile()
	case FormatJSON:
		var doc document
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyProfile
			}
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return doc.profile()
	case FormatCSV:
		return decodeCSV(r)
	case FormatSamples:
		return decodeSamples(r)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// LoadAs reads a profile file in an explicit format.
func LoadAs(path string, format Format) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("profile: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("profile: %s: %w", path, err)
	}

	return p, nil
}

func decodeSamples(r io.Reader) (*Profile, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode samples: %w", err)
	}

	depths := make([]float64, 0, len(records))
	labels := make([]string, 0, len(records))
	for i, rec := range records {
		d, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("decode samples: record %d: %w", i+1, err)
		}
		depths = append(depths, d)
		labels = append(labels, strings.TrimSpace(rec[1]))
	}

	return FromSamples(depths, labels)
}

func decodeCSV(r io.Reader) (*Profile, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	layers := make([]Layer, 0, len(records))
	for i, rec := range records {
		top, errTop := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		base, errBase := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if i == 0 && errTop != nil {
			continue // header
		}
		if errTop != nil || errBase != nil {
			return nil, fmt.Errorf("decode csv: record %d: %w", i+1, errors.Join(errTop, errBase))
		}
		layers = append(layers, Layer{Top: top, Base: base, Facies: strings.TrimSpace(rec[2])})
	}

	return FromLayers(layers)
}

// Encode writes p in the given format. CSV output carries a header row.
func Encode(w io.Writer, p *Profile, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case FormatCSV:
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"top", "base", "facies"})
		for _, l := range p.Layers() {
			_ = cw.Write([]string{
				strconv.FormatFloat(l.Top, 'g', -1, 64),
				strconv.FormatFloat(l.Base, 'g', -1, 64),
				l.Facies,
			})
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
