package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// fileBookID derives the default book identifier from the file bytes, so
// repeated runs over an unchanged file address the same summary rows.
func fileBookID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read book file: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// parseChapterRanges expands a "1,3-5" style selector into zero-based
// chapter indices, sorted and deduplicated. Selector numbers are 1-based.
func parseChapterRanges(selector string, chapterCount int) ([]int, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		indices := make([]int, chapterCount)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi := part, part
		if idx := strings.IndexByte(part, '-'); idx >= 0 {
			lo, hi = strings.TrimSpace(part[:idx]), strings.TrimSpace(part[idx+1:])
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("invalid chapter selector %q", part)
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("invalid chapter selector %q", part)
		}
		if start < 1 || end < start {
			return nil, fmt.Errorf("invalid chapter range %q", part)
		}
		for n := start; n <= end; n++ {
			if n > chapterCount {
				return nil, fmt.Errorf("chapter %d out of range, book has %d chapters", n, chapterCount)
			}
			seen[n-1] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, errors.New("chapter selector matched nothing")
	}

	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices, nil
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "…"
}
