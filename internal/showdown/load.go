package showdown

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrEmptyFile is returned for a file that declares no showdowns.
var ErrEmptyFile = errors.New("showdown: no showdowns declared")

// Load reads and validates the showdown file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open showdown file: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode reads a showdown file from r. Keys the format does not define are
// rejected so typos surface instead of silently dropping hands.
func Decode(r io.Reader) (*File, error) {
	var file File
	meta, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("decode showdown file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in showdown file: %s", strings.Join(keys, ", "))
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks the structure of the file. Hand text is checked when the
// file is run, so one bad hand only fails its own showdown.
func (f *File) Validate() error {
	if len(f.Showdowns) == 0 {
		return ErrEmptyFile
	}
	seen := make(map[string]int, len(f.Showdowns))
	for i, sd := range f.Showdowns {
		if sd.Name == "" {
			return fmt.Errorf("showdown %d: missing name", i+1)
		}
		if prev, ok := seen[sd.Name]; ok {
			return fmt.Errorf("showdown %d: name %q already used by showdown %d", i+1, sd.Name, prev+1)
		}
		seen[sd.Name] = i
	}
	return nil
}
