package epub_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"folio/internal/epub"
	"folio/internal/services"
	"folio/internal/testsupport"
)

func writeBook(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.epub")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write book: %v", err)
	}
	return path
}

func TestParseIsIdempotent(t *testing.T) {
	path := writeBook(t, testsupport.SimpleEPUB(t))

	first, err := epub.Parse(path)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	second, err := epub.Parse(path)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parse results differ:\n%+v\n%+v", first, second)
	}
}

func TestParseBookWithoutNCX(t *testing.T) {
	book := testsupport.BuildEPUB(t, testsupport.EPUBBook{
		Title: "Test Book",
		NoNCX: true,
		Chapters: []testsupport.EPUBChapter{
			{Href: "ch1.xhtml", Title: "One", Body: "<p>first</p>"},
			{Href: "ch2.xhtml", Title: "Two", Body: "<p>second</p>"},
		},
	})

	parsed, err := epub.Parse(writeBook(t, book))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Metadata.Title != "Test Book" {
		t.Fatalf("Title = %q", parsed.Metadata.Title)
	}
	if len(parsed.TOC) != 0 {
		t.Fatalf("expected empty toc, got %+v", parsed.TOC)
	}
	if len(parsed.Spine) != 2 {
		t.Fatalf("spine length = %d, want 2", len(parsed.Spine))
	}
}

func TestParseMetadata(t *testing.T) {
	book := testsupport.BuildEPUB(t, testsupport.EPUBBook{
		Title:    "Annotated Title",
		Author:   "Jane Dev",
		Language: "en-us",
		ISBN:     "9780000000001",
		Chapters: []testsupport.EPUBChapter{
			{Href: "ch1.xhtml", Title: "One", Body: "<p>text</p>"},
		},
	})

	parsed, err := epub.Parse(writeBook(t, book))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	md := parsed.Metadata
	if md.Title != "Annotated Title" || md.Author != "Jane Dev" {
		t.Fatalf("unexpected metadata: %+v", md)
	}
	if md.Language != "en-US" {
		t.Fatalf("Language = %q, want canonical form", md.Language)
	}
	if md.ISBN != "9780000000001" {
		t.Fatalf("ISBN = %q", md.ISBN)
	}
}

func TestChapterContentForEverySpineIndex(t *testing.T) {
	doc, err := epub.FromBytes(testsupport.SimpleEPUB(t))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	defer doc.Close()

	for i := 0; i < doc.ChapterCount(); i++ {
		chapter, err := doc.ChapterContent(i)
		if err != nil {
			t.Fatalf("ChapterContent(%d): %v", i, err)
		}
		if strings.TrimSpace(chapter.Text) == "" {
			t.Fatalf("chapter %d produced empty text", i)
		}
		if strings.ContainsAny(chapter.Text, "<>") {
			t.Fatalf("chapter %d text still contains markup: %q", i, chapter.Text)
		}
	}

	if _, err := doc.ChapterContent(doc.ChapterCount()); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error past the spine, got %v", err)
	}
	if _, err := doc.ChapterContent(-1); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for negative index, got %v", err)
	}
}

func TestChapterTitlesComeFromTOC(t *testing.T) {
	doc, err := epub.FromBytes(testsupport.SimpleEPUB(t))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	defer doc.Close()

	chapter, err := doc.ChapterContent(0)
	if err != nil {
		t.Fatalf("ChapterContent: %v", err)
	}
	if chapter.Title != "Chapter One" {
		t.Fatalf("Title = %q", chapter.Title)
	}
}

func TestCoverDataFromMetaConvention(t *testing.T) {
	book := testsupport.BuildEPUB(t, testsupport.EPUBBook{
		Title:     "Covered",
		CoverHref: "images/front.jpg",
		CoverMeta: true,
		Chapters: []testsupport.EPUBChapter{
			{Href: "ch1.xhtml", Title: "One", Body: "<p>text</p>"},
		},
	})
	path := writeBook(t, book)

	parsed, err := epub.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.CoverPath != "OEBPS/images/front.jpg" {
		t.Fatalf("CoverPath = %q", parsed.CoverPath)
	}

	data, err := epub.ExtractCoverData(path)
	if err != nil {
		t.Fatalf("ExtractCoverData: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected cover bytes")
	}
}

func TestExtractCoverDataWithoutCover(t *testing.T) {
	data, err := epub.ExtractCoverData(writeBook(t, testsupport.SimpleEPUB(t)))
	if err != nil {
		t.Fatalf("ExtractCoverData: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil cover data, got %d bytes", len(data))
	}
}

func TestValidate(t *testing.T) {
	if !epub.Validate(writeBook(t, testsupport.SimpleEPUB(t))) {
		t.Fatal("expected valid book")
	}
	if epub.Validate(writeBook(t, []byte("not a zip archive"))) {
		t.Fatal("expected invalid book")
	}
}

func TestFromBytesRejectsGarbage(t *testing.T) {
	if _, err := epub.FromBytes([]byte("PK\x03\x04 not really")); !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected fatal parse error, got %v", err)
	}
}
