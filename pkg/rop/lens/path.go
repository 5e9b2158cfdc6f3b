package lens

import (
	"maps"
	"strconv"
	"strings"
)

// Document is a decoded JSON-like object.
type Document = map[string]any

// Path focuses on a dot separated location inside a Document, for example
// "user.address.city". Reading a missing location yields nil. Setting creates
// any missing intermediate objects. A numeric segment indexes into an existing
// []any when it replaces an element or appends right after the last one; any
// other position replaces the slice with an object keyed by the segment.
func Path(dotPath string) Lens[Document, any] {
	segments := splitPath(dotPath)

	return Lens[Document, any]{
		get: func(doc Document) any {
			return getIn(doc, segments)
		},
		set: func(doc Document, v any) Document {
			if len(segments) == 0 {
				if replacement, ok := v.(Document); ok {
					return replacement
				}
				return maps.Clone(doc)
			}
			return setIn(doc, segments, v).(Document)
		},
	}
}

func splitPath(dotPath string) []string {
	segments := make([]string, 0, strings.Count(dotPath, ".")+1)
	for _, s := range strings.Split(dotPath, ".") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func getIn(node any, segments []string) any {
	for _, seg := range segments {
		switch n := node.(type) {
		case Document:
			node = n[seg]
		case []any:
			i, ok := sliceIndex(seg)
			if !ok || i >= len(n) {
				return nil
			}
			node = n[i]
		default:
			return nil
		}
	}
	return node
}

// setIn copies only the containers along the path; siblings are shared.
func setIn(node any, segments []string, v any) any {
	if len(segments) == 0 {
		return v
	}
	seg, rest := segments[0], segments[1:]

	switch n := node.(type) {
	case Document:
		result := make(Document, len(n)+1)
		maps.Copy(result, n)
		result[seg] = setIn(n[seg], rest, v)
		return result
	case []any:
		if i, ok := sliceIndex(seg); ok && i <= len(n) {
			result := make([]any, max(len(n), i+1))
			copy(result, n)
			result[i] = setIn(result[i], rest, v)
			return result
		}
	}

	return Document{seg: setIn(nil, rest, v)}
}

func sliceIndex(seg string) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}
