package linestruct

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SampleDocument keeps only the first n rows of doc and truncates every
// nested array (at any depth) to at most n elements. See spec §4.7. A
// non-positive n falls back to defaultSampleSize.
func SampleDocument(doc *Document, n int) *Document {
	if n <= 0 {
		n = defaultSampleSize
	}

	rows := doc.Rows
	if len(rows) > n {
		rows = rows[:n]
	}

	sampled := make([]*Node, len(rows))
	for i, row := range rows {
		sampled[i] = truncateNode(row, n)
	}
	return &Document{EntityName: doc.EntityName, Rows: sampled}
}

func truncateNode(n *Node, limit int) *Node {
	if n.IsNull() {
		return n
	}

	switch n.Kind {
	case NodeArray:
		items := n.Items
		if len(items) > limit {
			items = items[:limit]
		}
		truncated := make([]*Node, len(items))
		for i, item := range items {
			truncated[i] = truncateNode(item, limit)
		}
		return &Node{Kind: NodeArray, Items: truncated}

	case NodeObject:
		fields := orderedmap.New[string, *Node]()
		if n.Fields != nil {
			for pair := n.Fields.Oldest(); pair != nil; pair = pair.Next() {
				fields.Set(pair.Key, truncateNode(pair.Value, limit))
			}
		}
		return &Node{Kind: NodeObject, Fields: fields}

	default:
		return n
	}
}

// TrimBeforeDecode drops any leading text before the first line that
// starts the EntityName header, and any trailing lines left malformed by a
// truncated stream: unbalanced ‹›/«» brackets or a line ending mid-escape. It
// is an optional pre-pass for feeding partial or log-embedded LineStruct
// text to Decode. See spec §4.7.
func TrimBeforeDecode(text string) string {
	lines := splitLines(text)

	start := -1
	for i, l := range lines {
		if strings.HasPrefix(trimCR(l), entityPrefix) {
			start = i
			break
		}
	}
	if start < 0 {
		return text
	}
	lines = lines[start:]

	end := len(lines)
	for end > 0 && !lineIsWellFormed(trimCR(lines[end-1])) {
		end--
	}
	return strings.Join(lines[:end], "\n")
}

// lineIsWellFormed reports whether line closes every bracket it opens and
// does not end mid-escape, using the same depth/escape bookkeeping as the
// Field Splitter.
func lineIsWellFormed(line string) bool {
	depth := 0
	escaped := false
	for _, r := range line {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case Escape:
			escaped = true
		case ObjectStart, ArrayStart:
			depth++
		case ObjectEnd, ArrayEnd:
			depth--
		}
	}
	return !escaped && depth == 0
}
