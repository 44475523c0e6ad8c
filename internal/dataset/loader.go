package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/camclean/camclean/internal/table"
)

// Loader reads a camera batch from a JSON file holding one array of
// flat objects.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given input file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads every record into a table. Object keys become columns in
// first-encounter order, so the cleaned output keeps the shape of the
// source file. The only fatal conditions are a missing file and a
// file that is not the expected JSON structure; everything inside a
// record is absorbed as-is.
func (l *Loader) Load() (*table.Table, error) {
	return l.load(0)
}

// LoadSample reads at most limit records (useful for inspection).
func (l *Loader) LoadSample(limit int) (*table.Table, error) {
	return l.load(limit)
}

func (l *Loader) load(limit int) (*table.Table, error) {
	slog.Debug("Opening input file", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file not found: %s", l.path)
		}
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil {
		slog.Debug("Input file stats", "size_bytes", info.Size())
	}

	dec := json.NewDecoder(file)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("failed to parse input JSON: expected a top-level array, got %v", tok)
	}

	t := table.New()
	recordNum := 0
	for dec.More() {
		if limit > 0 && recordNum >= limit {
			break
		}
		if err := decodeRecord(dec, t); err != nil {
			return nil, fmt.Errorf("failed to parse input JSON at record %d: %w", recordNum+1, err)
		}
		recordNum++

		if recordNum%1000 == 0 {
			slog.Debug("Reading records", "records_read", recordNum)
		}
	}

	if limit == 0 {
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("failed to parse input JSON: %w", err)
		}
	}

	slog.Debug("Finished reading input", "total_records", t.Len(), "columns", len(t.Columns()))

	return t, nil
}

// decodeRecord consumes one object from the stream, preserving its key
// order in the table's column order.
func decodeRecord(dec *json.Decoder, t *table.Table) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected an object, got %v", tok)
	}

	row := t.AddRow()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		t.SetCell(row, key, cellFromRaw(raw))
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// cellFromRaw maps a JSON value to a cell: strings, numbers, booleans
// and null map directly; nested values keep their compact JSON text.
func cellFromRaw(raw json.RawMessage) table.Value {
	if len(raw) == 0 {
		return table.Missing()
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return table.Missing()
		}
		return table.String(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return table.Missing()
		}
		return table.Boolean(b)
	case 'n':
		return table.Missing()
	case '{', '[':
		return table.String(string(raw))
	default:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return table.Missing()
		}
		return table.Number(f)
	}
}
