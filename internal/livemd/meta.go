package livemd

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value attributes from a cell's opening fence line.
type Meta map[string]any

// Get returns the attribute value for the given key as a string.
// It returns an empty string if the key is missing or the Meta is nil.
func (m Meta) Get(name string) string {
	if m == nil {
		return ""
	}

	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

var reJSONMeta = regexp.MustCompile(`^\s*{\s*["}]`)

// parseMeta reads the info text either as a JSON object or as shell-style
// key=value words. Attributes are advisory, so unparseable info yields nil
// rather than failing the scan.
func parseMeta(info string) Meta {
	if info == "" {
		return nil
	}

	if reJSONMeta.MatchString(info) {
		var meta Meta

		if err := json.Unmarshal([]byte(info), &meta); err != nil {
			return nil
		}

		return meta
	}

	words, err := shlex.Split(info)
	if err != nil {
		return nil
	}

	meta := make(Meta)

	for _, word := range words {
		idx := strings.IndexRune(word, '=')
		if idx >= 0 {
			meta[word[:idx]] = word[idx+1:]
		}
	}

	if len(meta) == 0 {
		return nil
	}

	return meta
}
