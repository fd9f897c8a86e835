package textutil

import (
	"strings"
	"testing"
)

func TestSplitShortTextReturnsSingleChunk(t *testing.T) {
	c := NewChunker(100, 10)
	got := c.Split("short text")
	if len(got) != 1 || got[0] != "short text" {
		t.Fatalf("unexpected chunks: %#v", got)
	}
}

func TestSplitPrefersParagraphBreaks(t *testing.T) {
	para := strings.Repeat("a", 60)
	text := para + "\n\n" + para + "\n\n" + para
	c := NewChunker(80, 0)
	got := c.Split(text)
	if len(got) != 3 {
		t.Fatalf("expected 3 paragraph chunks, got %d: %#v", len(got), got)
	}
	for _, chunk := range got {
		if !strings.HasPrefix(chunk, "aaa") {
			t.Fatalf("paragraph boundary lost: %q", chunk)
		}
	}
}

func TestSplitFallsThroughToSentences(t *testing.T) {
	sentence := strings.Repeat("b", 40) + ". "
	text := strings.Repeat(sentence, 6)
	c := NewChunker(100, 0)
	for _, chunk := range c.Split(text) {
		if len(chunk) > 100 {
			t.Fatalf("chunk exceeds target: %d chars", len(chunk))
		}
	}
}

func TestSplitFullWidthPunctuation(t *testing.T) {
	sentence := strings.Repeat("字", 20) + "。"
	text := strings.Repeat(sentence, 8)
	c := NewChunker(200, 0)
	chunks := c.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for _, chunk := range chunks {
		if !strings.HasSuffix(chunk, "。") {
			t.Fatalf("full-width sentence boundary lost: %q", chunk)
		}
	}
}

func TestSplitHardCutNeverBreaksRunes(t *testing.T) {
	text := strings.Repeat("界", 300)
	c := NewChunker(100, 0)
	for _, chunk := range c.Split(text) {
		for _, r := range chunk {
			if r == '�' {
				t.Fatalf("rune split in chunk %q", chunk)
			}
		}
	}
}

func TestSplitAppliesOverlap(t *testing.T) {
	text := strings.Repeat("c", 150) + " " + strings.Repeat("d", 150)
	c := NewChunker(160, 20)
	chunks := c.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("expected overlap-eligible chunk count, got %d", len(chunks))
	}
	prevTail := chunks[0][len(chunks[0])-20:]
	if !strings.HasPrefix(chunks[1], prevTail) {
		t.Fatalf("second chunk missing overlap prefix %q: %q", prevTail, chunks[1][:30])
	}
}

func TestNewChunkerClampsOverlap(t *testing.T) {
	c := NewChunker(100, 100)
	if c.Overlap >= c.Size {
		t.Fatalf("overlap not clamped: %+v", c)
	}
}
