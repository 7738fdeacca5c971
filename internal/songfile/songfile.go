// Package songfile loads the configured song list from a TOML file. It only
// deals with the file's syntax; validation and typing of the records is the
// catalog's job.
package songfile

import (
	"fmt"
	"strconv"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/cuepad/internal/catalog"
)

// Load reads the [[song]] tables from path, in file order. Field values are
// handed over as strings regardless of how they were typed in TOML, so a
// quoted and an unquoted timecode behave the same.
func Load(path string) ([]catalog.RawSong, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parse(k)
}

// LoadBytes parses song tables from raw TOML content (tests, embedded
// defaults).
func LoadBytes(content []byte) ([]catalog.RawSong, error) {
	k := koanf.New(".")
	if err := k.Load(rawProvider{content}, toml.Parser()); err != nil {
		return nil, err
	}
	return parse(k)
}

func parse(k *koanf.Koanf) ([]catalog.RawSong, error) {
	entries, _ := k.Get("song").([]interface{})
	records := make([]catalog.RawSong, 0, len(entries))
	for i, entry := range entries {
		table, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("song %d: not a table", i+1)
		}
		fields := make(map[string]string)
		for key, value := range table {
			fields[key] = stringify(value)
		}
		name := fields["name"]
		if name == "" {
			name = fmt.Sprintf("song %d", i+1)
		}
		delete(fields, "name")
		records = append(records, catalog.RawSong{Name: name, Fields: fields})
	}
	return records, nil
}

// stringify renders a TOML scalar the way it was written, without float
// noise on integral values.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// rawProvider feeds in-memory content to koanf.
type rawProvider struct {
	content []byte
}

func (p rawProvider) ReadBytes() ([]byte, error) { return p.content, nil }

func (p rawProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("rawProvider does not support unparsed reads")
}
