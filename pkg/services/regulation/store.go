package regulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
)

//go:embed data/state_regulations.json
var embeddedDataset []byte

// DataLoadError reports an unreadable or malformed regulation dataset.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load regulations from %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Store parses the regulation dataset into a mapping from state code to
// that state's regulation records, preserving source order within each
// state. The parsed snapshot is replaced wholesale under a write lock, so
// concurrent readers always see a complete mapping.
type Store struct {
	path string

	mu       sync.RWMutex
	snapshot map[string][]domain.RegulationRecord
}

// NewStore returns a store backed by the embedded dataset. A non-empty path
// overrides the embedded copy.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load parses the dataset from its configured source.
func (s *Store) Load() (map[string][]domain.RegulationRecord, error) {
	src := "embedded dataset"
	raw := embeddedDataset
	if s.path != "" {
		src = s.path
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, &DataLoadError{Source: src, Err: err}
		}
		raw = b
	}
	return parseDataset(src, raw)
}

// LoadFrom parses a dataset from an arbitrary reader.
func (s *Store) LoadFrom(r io.Reader) (map[string][]domain.RegulationRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &DataLoadError{Source: "reader", Err: err}
	}
	return parseDataset("reader", raw)
}

// Regulations returns the cached mapping, parsing the dataset on first use.
func (s *Store) Regulations() (map[string][]domain.RegulationRecord, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	return s.Refresh()
}

// Refresh reparses the dataset and replaces the cached snapshot.
func (s *Store) Refresh() (map[string][]domain.RegulationRecord, error) {
	snap, err := s.Load()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	return snap, nil
}

func parseDataset(src string, raw []byte) (map[string][]domain.RegulationRecord, error) {
	cleaned := stripLineComments(raw)

	var records []domain.RegulationRecord
	if err := json.Unmarshal(cleaned, &records); err != nil {
		return nil, &DataLoadError{Source: src, Err: err}
	}

	grouped := make(map[string][]domain.RegulationRecord, len(records))
	for _, rec := range records {
		code := StateCode(rec.State)
		grouped[code] = append(grouped[code], rec)
	}
	return grouped, nil
}

// stripLineComments removes //-style comments that occur outside string
// literals, keeping the remaining structure intact for the JSON decoder.
func stripLineComments(raw []byte) []byte {
	var out bytes.Buffer
	for _, line := range strings.SplitAfter(string(raw), "\n") {
		out.WriteString(cutLineComment(line))
	}
	return out.Bytes()
}

func cutLineComment(line string) string {
	inString := false
	escaped := false
	for i := 0; i < len(line)-1; i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case c == '/' && line[i+1] == '/' && !inString:
			return strings.TrimRight(line[:i], " \t") + "\n"
		}
	}
	return line
}
