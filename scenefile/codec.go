package scenefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/lenslab"
)

// ErrUnknownFormat is returned for a file extension other than .yaml,
// .yml or .json.
var ErrUnknownFormat = errors.New("scenefile: unknown format")

// Format selects the encoding of a description.
type Format int

const (
	// YAML is the default encoding, used for .yaml and .yml files.
	YAML Format = iota
	// JSON is used for .json files.
	JSON
)

// String returns "yaml" or "json".
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads a description. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&f)
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("scenefile: decode %v: %w", format, err)
	}
	return &f, nil
}

// Encode writes f.
func Encode(w io.Writer, f *File, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("scenefile: encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("scenefile: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// Load reads the description at path and builds its scene.
func Load(path string) (*lenslab.Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh, format)
	if err != nil {
		return nil, err
	}
	s, err := f.Scene()
	if err != nil {
		return nil, err
	}
	lenslab.Logger().Debug("scenefile: loaded", "path", path, "components", s.Len())
	return s, nil
}

// Save writes a description of s to path in the format of its extension.
func Save(path string, s *lenslab.Scene) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scenefile: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("scenefile: %w", cerr)
		}
	}()
	return Encode(fh, FromScene(s), format)
}
