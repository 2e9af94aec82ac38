package sdl

import (
	"io"
	"strings"
)

// WriteDocument serializes tags, one per top-level line, to w.
func WriteDocument(w io.Writer, tags []*Tag) (int64, error) {
	var total int64
	for _, t := range tags {
		n, err := t.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
		m, err := io.WriteString(w, "\r\n")
		total += int64(m)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// DocumentString renders tags in canonical SDL form.
func DocumentString(tags []*Tag) string {
	var b strings.Builder
	WriteDocument(&b, tags)
	return b.String()
}

// DocumentEqual reports whether two parsed forests serialize identically.
func DocumentEqual(a, b []*Tag) bool {
	return DocumentString(a) == DocumentString(b)
}
