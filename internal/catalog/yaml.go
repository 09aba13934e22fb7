package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/ppiankov/floatchat/internal/model"
	"gopkg.in/yaml.v3"
)

// fileEntry is the on-disk shape of a catalog entry
type fileEntry struct {
	Key                  string `yaml:"key"`
	model.ResponseRecord `yaml:",inline"`
}

type file struct {
	Entries []fileEntry `yaml:"entries"`
}

// Load reads a YAML catalog
func Load(r io.Reader) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	entries := make([]Entry, len(f.Entries))
	for i, fe := range f.Entries {
		entries[i] = Entry{Key: fe.Key, Record: fe.ResponseRecord}
	}
	return New(entries)
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Encode writes the catalog in the format Load reads
func (c *Catalog) Encode(w io.Writer) error {
	f := file{Entries: make([]fileEntry, len(c.entries))}
	for i, e := range c.entries {
		f.Entries[i] = fileEntry{Key: e.Key, ResponseRecord: e.Record}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
