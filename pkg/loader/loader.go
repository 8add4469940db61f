// Package loader decodes structured input (JSON, NDJSON, YAML, TOML, CSV)
// into plain Go values that can be tabulated.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names accepted by LoadFormat.
const (
	FormatAuto   = "auto"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatYAML   = "yaml"
	FormatTOML   = "toml"
	FormatCSV    = "csv"
)

// Formats lists every accepted format name.
var Formats = []string{FormatAuto, FormatJSON, FormatNDJSON, FormatYAML, FormatTOML, FormatCSV}

var (
	tomlSectionPattern  = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// LoadData decodes input, detecting its format. Each returned element is
// one document: multi-document YAML and NDJSON yield several, everything
// else yields one. CSV is never detected; request it with LoadFormat.
func LoadData(input string) ([]any, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New("empty input")
	}

	if strings.Contains(input, "\n---") || strings.HasPrefix(input, "---") {
		return loadMultiDocYAML(input)
	}
	if isLikelyNDJSON(strings.Split(input, "\n")) {
		return loadNDJSON(input)
	}
	// A one-line JSON array such as ["x"] also reads as a TOML [section]
	// header, so a document that parses as JSON wins.
	if isJSONStart(input) && json.Valid([]byte(input)) {
		return loadJSON(input)
	}
	if isLikelyTOML(input) {
		return loadTOML(input)
	}
	if isJSONStart(input) {
		return loadJSON(input)
	}
	return loadYAML(input)
}

func isJSONStart(input string) bool {
	return strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[")
}

// LoadFormat decodes input with the named format. FormatAuto and the empty
// string defer to LoadData.
func LoadFormat(input, format string) ([]any, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatAuto:
		return LoadData(input)
	case FormatJSON:
		return loadJSON(strings.TrimSpace(input))
	case FormatNDJSON:
		return loadNDJSON(input)
	case FormatYAML, "yml":
		return loadMultiDocYAML(input)
	case FormatTOML:
		return loadTOML(input)
	case FormatCSV:
		return loadCSV(input)
	default:
		return nil, fmt.Errorf("unsupported input format %q (expected one of %s)", format, strings.Join(Formats, ", "))
	}
}

// LoadRoot decodes input into a single root value. Several documents are
// returned as a slice.
func LoadRoot(input, format string) (any, error) {
	docs, err := LoadFormat(input, format)
	if err != nil {
		return nil, err
	}
	if len(docs) == 1 {
		return docs[0], nil
	}
	return docs, nil
}

// LoadReader reads r to the end and decodes it with LoadRoot.
func LoadReader(r io.Reader, format string) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return LoadRoot(string(data), format)
}

// LoadFile reads path and decodes it with LoadRoot.
func LoadFile(path, format string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadRoot(string(data), format)
}

func loadJSON(input string) ([]any, error) {
	var data any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return []any{data}, nil
}

func loadYAML(input string) ([]any, error) {
	var data any
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return []any{data}, nil
}

func loadMultiDocYAML(input string) ([]any, error) {
	var results []any
	decoder := yaml.NewDecoder(strings.NewReader(input))
	for {
		var doc any
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if doc != nil {
			results = append(results, doc)
		}
	}
	if len(results) == 0 {
		return nil, errors.New("no documents found in YAML input")
	}
	return results, nil
}

// loadNDJSON decodes one JSON value per line. Lines that are not JSON are
// kept as plain strings.
func loadNDJSON(input string) ([]any, error) {
	lines := strings.Split(input, "\n")
	results := make([]any, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var obj any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			results = append(results, line)
			continue
		}
		results = append(results, obj)
	}
	if len(results) == 0 {
		return nil, errors.New("no data found in input")
	}
	return results, nil
}

func loadTOML(input string) ([]any, error) {
	var data any
	if err := toml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return []any{data}, nil
}

// loadCSV returns a single document: a list of rows, each a list of
// strings. The first record is the header row.
func loadCSV(input string) ([]any, error) {
	r := csv.NewReader(strings.NewReader(input))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("no data found in input")
	}
	rows := make([]any, len(records))
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		rows[i] = row
	}
	return []any{rows}, nil
}

// isLikelyNDJSON requires several non-empty lines, most of them starting
// like a JSON object or array.
func isLikelyNDJSON(lines []string) bool {
	jsonCount := 0
	nonEmpty := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			jsonCount++
		}
	}
	if nonEmpty < 2 || jsonCount <= nonEmpty/2 {
		return false
	}
	// A pretty-printed JSON document also starts most lines with a bracket
	// but its lines do not parse on their own.
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return json.Valid([]byte(trimmed))
	}
	return false
}

func isLikelyTOML(input string) bool {
	sections := 0
	keyValues := 0
	nonEmpty := 0
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmpty++
		if tomlSectionPattern.MatchString(line) {
			sections++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValues++
		}
	}
	return sections > 0 || (nonEmpty > 0 && keyValues > nonEmpty/2)
}
