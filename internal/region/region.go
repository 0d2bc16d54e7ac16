// Package region reads and replaces a named #region/#endregion section in a
// source file. The sync command uses it to keep a generated section of a
// script in step with its notebook.
package region

import (
	"errors"
	"regexp"
)

const (
	reComment   = `[!"#$%&'()*+,\-./:;<=>?@[\\\]^_{|}~]+`
	reLineBegin = `(?m)^[[:blank:]]*` + reComment + `[[:blank:]]*`
	reLineEnd   = `[^\n]*\r?\n`
)

// ErrMissingEndregion is returned when a #region marker has no matching
// #endregion before the end of the file.
var ErrMissingEndregion = errors.New("missing #endregion")

var reEnd = regexp.MustCompile(reLineBegin + `#endregion\b` + reLineEnd)

func reBegin(name string) *regexp.Regexp {
	return regexp.MustCompile(reLineBegin + `#region[[:blank:]]+` +
		regexp.QuoteMeta(name) + `\b` + reLineEnd)
}

// find returns the bounds of the named region's body: the offsets just
// after the #region line and just before the #endregion line.
func find(source []byte, name string) (int, int, bool, error) {
	idxBegin := reBegin(name).FindIndex(source)
	if idxBegin == nil {
		return 0, 0, false, nil
	}

	idxEnd := reEnd.FindIndex(source[idxBegin[1]:])
	if idxEnd == nil {
		return 0, 0, false, ErrMissingEndregion
	}

	return idxBegin[1], idxBegin[1] + idxEnd[0], true, nil
}

// Read returns the content between the #region and #endregion markers with
// the given name. The bool return indicates whether the region was found.
func Read(source []byte, name string) ([]byte, bool, error) {
	begin, end, found, err := find(source, name)
	if err != nil || !found {
		return nil, found, err
	}

	return source[begin:end], true, nil
}

// Replace substitutes the content of the named region with value and
// returns the updated source. The bool return indicates whether the region
// was found. A value without a trailing newline gets one, so the
// #endregion marker keeps its own line.
func Replace(source []byte, name string, value []byte) ([]byte, bool, error) {
	begin, end, found, err := find(source, name)
	if err != nil || !found {
		return nil, found, err
	}

	if len(value) > 0 && value[len(value)-1] != '\n' {
		value = append(append([]byte(nil), value...), '\n')
	}

	res := make([]byte, 0, len(source)-(end-begin)+len(value))

	res = append(res, source[:begin]...)
	res = append(res, value...)
	res = append(res, source[end:]...)

	return res, true, nil
}
