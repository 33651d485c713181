package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

// DefaultPattern is the glob used to find base configuration files when none is given
const DefaultPattern = "appsettings*.{yml,yaml,json}"

// LoadGlob loads all files matching pattern (doublestar syntax) in lexical order and merges them,
// later files overriding earlier ones key by key. No matches is not an error and gives an empty Map.
func LoadGlob(pattern string) (*Map, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid config pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	res := NewMap(nil)
	for _, fname := range matches {
		m, err := LoadFile(fname)
		if err != nil {
			return nil, err
		}
		lgr.Printf("[DEBUG] loaded %d config keys from %s", m.Len(), fname)
		res.Merge(m)
	}
	return res, nil
}

// LoadFile loads a single yaml or json file
func LoadFile(fname string) (*Map, error) {
	fh, err := os.Open(fname) //nolint:gosec // config path is provided by the operator
	if err != nil {
		return nil, fmt.Errorf("can't open config %s: %w", fname, err)
	}
	defer fh.Close()

	m, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("can't parse config %s: %w", fname, err)
	}
	return m, nil
}

// Decode reads yaml (json is accepted as a subset) and flattens nested sections into
// hierarchical keys. Sequence items are keyed by index, e.g. Models:0. Keys are walked in
// document order, so of two keys differing only in case the later one wins.
func Decode(r io.Reader) (*Map, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewMap(nil), nil // empty document
		}
		return nil, err
	}
	res := NewMap(nil)
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return res, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("config root must be a mapping, got %s", root.Tag)
	}
	flatten(res, "", root)
	return res, nil
}

func flatten(dst *Map, prefix string, n *yaml.Node) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return Key(prefix, k)
	}

	switch n.Kind {
	case yaml.AliasNode:
		flatten(dst, prefix, n.Alias)
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Tag == "!!merge" {
				flatten(dst, prefix, v) // <<: *anchor, merged into this section
				continue
			}
			flatten(dst, join(k.Value), v)
		}
	case yaml.SequenceNode:
		for i, sub := range n.Content {
			flatten(dst, join(strconv.Itoa(i)), sub)
		}
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			dst.Set(prefix, "")
			return
		}
		dst.Set(prefix, n.Value)
	}
}
