package textutil

import "strings"

const (
	// DefaultChunkSize is the target chunk length in characters.
	DefaultChunkSize = 2000
	// DefaultChunkOverlap is how many trailing characters of a chunk are
	// repeated at the start of the next one.
	DefaultChunkOverlap = 200
)

// chunkSeparators is the split priority: paragraph breaks, line breaks,
// full-width then half-width sentence punctuation, then single spaces. A raw
// character split is the implicit last resort.
var chunkSeparators = []string{"\n\n", "\n", "。", "！", "？", ". ", "! ", "? ", "; ", " "}

// Chunker splits long text into overlapping chunks along natural breaks.
type Chunker struct {
	Size    int
	Overlap int
}

// NewChunker returns a chunker, substituting defaults for non-positive
// values. Overlap is clamped below Size.
func NewChunker(size, overlap int) *Chunker {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = DefaultChunkOverlap
	}
	if overlap >= size {
		overlap = size / 4
	}
	return &Chunker{Size: size, Overlap: overlap}
}

// Split breaks text into chunks of at most Size characters (plus the overlap
// prefix carried from the previous chunk). The highest-priority separator
// that yields conforming chunks wins; lower priorities apply only to pieces
// that are still too large.
func (c *Chunker) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= c.Size {
		return []string{text}
	}

	pieces := splitRecursive(text, c.Size, 0)
	if c.Overlap == 0 || len(pieces) < 2 {
		return pieces
	}

	chunks := make([]string, 0, len(pieces))
	for i, piece := range pieces {
		if i == 0 {
			chunks = append(chunks, piece)
			continue
		}
		chunks = append(chunks, tail(pieces[i-1], c.Overlap)+piece)
	}
	return chunks
}

func splitRecursive(text string, maxSize, sepIndex int) []string {
	if len(text) <= maxSize {
		return []string{text}
	}
	if sepIndex >= len(chunkSeparators) {
		return splitHard(text, maxSize)
	}

	separator := chunkSeparators[sepIndex]
	parts := strings.SplitAfter(text, separator)
	if len(parts) == 1 {
		return splitRecursive(text, maxSize, sepIndex+1)
	}

	var result []string
	var current strings.Builder
	for _, part := range parts {
		if current.Len() > 0 && current.Len()+len(part) > maxSize {
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		}
		if len(part) > maxSize {
			result = append(result, splitRecursive(part, maxSize, sepIndex+1)...)
			continue
		}
		current.WriteString(part)
	}
	if current.Len() > 0 {
		if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// splitHard cuts at maxSize, backing up to the last space so words survive
// when one exists, and never cutting inside a UTF-8 sequence.
func splitHard(text string, maxSize int) []string {
	var result []string
	for len(text) > maxSize {
		cut := maxSize
		if idx := strings.LastIndexByte(text[:cut], ' '); idx > 0 {
			cut = idx
		}
		for cut > 0 && text[cut]&0xC0 == 0x80 {
			cut--
		}
		if cut == 0 {
			cut = maxSize
		}
		result = append(result, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		result = append(result, text)
	}
	return result
}

// tail returns the last n bytes of s, aligned to a rune boundary.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	start := len(s) - n
	for start < len(s) && s[start]&0xC0 == 0x80 {
		start++
	}
	return s[start:]
}
