package op

import "strings"

// Apply executes op against doc and returns the resulting document. It
// walks op left to right, consuming code points of doc for Retain and
// Delete and appending literal text for Insert. If op runs past the end of
// doc, it fails fast with ErrRetainTooLong or ErrDeleteMismatch and no
// partial output is returned.
func Apply(doc string, op Operation) (string, error) {
	remaining := []rune(doc)
	var out strings.Builder

	for _, c := range op {
		switch c.Kind() {
		case KindRetain:
			n := c.Length()
			if n > len(remaining) {
				return "", ErrRetainTooLong
			}
			out.WriteString(string(remaining[:n]))
			remaining = remaining[n:]
		case KindDelete:
			n := c.Length()
			if n > len(remaining) {
				return "", ErrDeleteMismatch
			}
			remaining = remaining[n:]
		case KindInsert:
			out.WriteString(c.Text())
		}
	}
	out.WriteString(string(remaining))
	return out.String(), nil
}

// MustApply is a convenience wrapper around Apply that panics instead of
// returning an error.
func MustApply(doc string, op Operation) string {
	result, err := Apply(doc, op)
	if err != nil {
		panic(err)
	}
	return result
}
