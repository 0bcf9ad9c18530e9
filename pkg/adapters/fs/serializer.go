package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serializer defines how to read and write a specific book format.
type Serializer interface {
	// Decode reads a Snapshot from r.
	Decode(r io.Reader) (Snapshot, error)
	// Encode converts the Snapshot to bytes.
	Encode(s Snapshot) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by file
// extension.
func DefaultSerializers(strict bool) map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(strict),
		".yaml": NewYAMLSerializer(strict),
		".yml":  NewYAMLSerializer(strict),
		".csv":  NewCSVSerializer(strict),
	}
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON books.
type JSONSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(strict bool) *JSONSerializer {
	return &JSONSerializer{Strict: strict}
}

func (s *JSONSerializer) Decode(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	decoder := json.NewDecoder(r)
	if s.Strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(&snap); err != nil {
		if err == io.EOF {
			return Snapshot{Version: SnapshotVersion}, nil
		}
		return Snapshot{}, fmt.Errorf("invalid json: %w", err)
	}
	return snap, nil
}

func (s *JSONSerializer) Encode(snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// --- YAML Serializer ---

// YAMLSerializer handles reading and writing YAML books.
type YAMLSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer(strict bool) *YAMLSerializer {
	return &YAMLSerializer{Strict: strict}
}

func (s *YAMLSerializer) Decode(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(s.Strict)
	if err := decoder.Decode(&snap); err != nil {
		if err == io.EOF {
			return Snapshot{Version: SnapshotVersion}, nil
		}
		return Snapshot{}, fmt.Errorf("invalid yaml: %w", err)
	}
	return snap, nil
}

func (s *YAMLSerializer) Encode(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(snap); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV Serializer ---

// csvHeader is the fixed column layout. Phones and notes are JSON encoded.
var csvHeader = []string{"name", "phones", "birthday", "email", "address", "owner", "notes"}

// CSVSerializer handles reading and writing CSV books, one record per row.
type CSVSerializer struct {
	// Strict requires the exact header.
	Strict bool
}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer(strict bool) *CSVSerializer {
	return &CSVSerializer{Strict: strict}
}

func (s *CSVSerializer) Decode(r io.Reader) (Snapshot, error) {
	reader := csv.NewReader(r)
	rows, err := reader.ReadAll()
	if err != nil {
		return Snapshot{}, fmt.Errorf("invalid csv: %w", err)
	}

	snap := Snapshot{Version: SnapshotVersion}
	if len(rows) == 0 {
		return snap, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["name"]; !ok {
		return Snapshot{}, fmt.Errorf("csv book missing 'name' column")
	}
	if s.Strict && len(cols) != len(csvHeader) {
		return Snapshot{}, fmt.Errorf("csv header mismatch: want %v", csvHeader)
	}

	get := func(row []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for line, row := range rows[1:] {
		dto := RecordDTO{
			Name:     get(row, "name"),
			Birthday: get(row, "birthday"),
			Email:    get(row, "email"),
			Address:  get(row, "address"),
		}
		if v := get(row, "owner"); v != "" {
			owner, err := strconv.ParseBool(v)
			if err != nil {
				return Snapshot{}, fmt.Errorf("csv line %d: owner: %w", line+2, err)
			}
			dto.Owner = owner
		}
		if err := unmarshalCSVValue(get(row, "phones"), &dto.Phones); err != nil {
			return Snapshot{}, fmt.Errorf("csv line %d: phones: %w", line+2, err)
		}
		if err := unmarshalCSVValue(get(row, "notes"), &dto.Notes); err != nil {
			return Snapshot{}, fmt.Errorf("csv line %d: notes: %w", line+2, err)
		}
		snap.Records = append(snap.Records, dto)
	}
	return snap, nil
}

func (s *CSVSerializer) Encode(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, dto := range snap.Records {
		phones, err := marshalCSVValue(dto.Phones)
		if err != nil {
			return nil, err
		}
		notes, err := marshalCSVValue(dto.Notes)
		if err != nil {
			return nil, err
		}
		row := []string{
			dto.Name,
			phones,
			dto.Birthday,
			dto.Email,
			dto.Address,
			strconv.FormatBool(dto.Owner),
			notes,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// --- Helpers ---

// marshalCSVValue renders a slice column as a JSON array, empty slices as "".
func marshalCSVValue[T any](v []T) (string, error) {
	if len(v) == 0 {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalCSVValue parses a JSON array column. A value that does not look
// like an array is taken as a single ";"-separated list of strings.
func unmarshalCSVValue[T any](val string, out *[]T) error {
	if val == "" {
		return nil
	}
	if strings.HasPrefix(val, "[") && strings.HasSuffix(val, "]") {
		return json.Unmarshal([]byte(val), out)
	}
	parts := strings.Split(val, ";")
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			quoted = append(quoted, strconv.Quote(p))
		}
	}
	return json.Unmarshal([]byte("["+strings.Join(quoted, ",")+"]"), out)
}
