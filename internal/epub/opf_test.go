package epub

import (
	"errors"
	"testing"

	"folio/internal/services"
)

func mustParsePackage(t *testing.T, opf string) *packageDoc {
	t.Helper()
	doc, err := parsePackage([]byte(opf))
	if err != nil {
		t.Fatalf("parsePackage: %v", err)
	}
	return doc
}

func TestParsePackagePrefersNamespacedMetadata(t *testing.T) {
	doc := mustParsePackage(t, `<?xml version="1.0"?>
<package xmlns:dc="http://purl.org/dc/elements/1.1/">
  <metadata>
    <title>Plain Title</title>
    <dc:title>Namespaced Title</dc:title>
  </metadata>
</package>`)

	if doc.metadata.Title != "Namespaced Title" {
		t.Fatalf("Title = %q, want namespaced value", doc.metadata.Title)
	}
}

func TestParsePackageFallsBackToPlainAndNestedMetadata(t *testing.T) {
	doc := mustParsePackage(t, `<?xml version="1.0"?>
<package>
  <metadata>
    <title>Plain Title</title>
    <dc-metadata>
      <creator>Nested Author</creator>
    </dc-metadata>
  </metadata>
</package>`)

	if doc.metadata.Title != "Plain Title" {
		t.Fatalf("Title = %q", doc.metadata.Title)
	}
	if doc.metadata.Author != "Nested Author" {
		t.Fatalf("Author = %q", doc.metadata.Author)
	}
}

func TestParsePackageDefaultsUnknown(t *testing.T) {
	doc := mustParsePackage(t, `<package><metadata/></package>`)

	if doc.metadata.Title != "Unknown" || doc.metadata.Author != "Unknown" {
		t.Fatalf("expected Unknown defaults, got %+v", doc.metadata)
	}
	if doc.metadata.ISBN != "" {
		t.Fatalf("expected empty ISBN, got %q", doc.metadata.ISBN)
	}
}

func TestParsePackageExtractsISBN(t *testing.T) {
	doc := mustParsePackage(t, `<package xmlns:dc="http://purl.org/dc/elements/1.1/">
  <metadata>
    <dc:identifier>uuid:abcdef</dc:identifier>
    <dc:identifier>urn:isbn:9781234567890</dc:identifier>
  </metadata>
</package>`)

	if doc.metadata.ISBN != "9781234567890" {
		t.Fatalf("ISBN = %q", doc.metadata.ISBN)
	}
}

func TestParsePackageCanonicalizesLanguage(t *testing.T) {
	doc := mustParsePackage(t, `<package xmlns:dc="http://purl.org/dc/elements/1.1/">
  <metadata><dc:language>EN-us</dc:language></metadata>
</package>`)
	if doc.metadata.Language != "en-US" {
		t.Fatalf("Language = %q, want canonical form", doc.metadata.Language)
	}

	doc = mustParsePackage(t, `<package xmlns:dc="http://purl.org/dc/elements/1.1/">
  <metadata><dc:language>not!!a!!tag</dc:language></metadata>
</package>`)
	if doc.metadata.Language != "not!!a!!tag" {
		t.Fatalf("unparseable tag must pass through, got %q", doc.metadata.Language)
	}
}

func TestParsePackageKeepsUnmatchedSpineRefs(t *testing.T) {
	doc := mustParsePackage(t, `<package>
  <manifest>
    <item id="ch1" href="ch1.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine>
    <itemref idref="ch1"/>
    <itemref idref="ghost"/>
  </spine>
</package>`)

	if len(doc.spine) != 2 {
		t.Fatalf("spine length = %d, want 2", len(doc.spine))
	}
	if doc.spine[0].Href != "ch1.xhtml" {
		t.Fatalf("spine[0] = %+v", doc.spine[0])
	}
	if doc.spine[1].ID != "ghost" || doc.spine[1].Href != "" {
		t.Fatalf("unmatched idref must degrade to empty href, got %+v", doc.spine[1])
	}
}

func TestParsePackageRejectsMalformedDocument(t *testing.T) {
	_, err := parsePackage([]byte("not xml at all <"))
	if !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected fatal parse error, got %v", err)
	}
}

func TestParsePackageReadsCoverMeta(t *testing.T) {
	doc := mustParsePackage(t, `<package>
  <metadata>
    <meta name="cover" content="cover-image"/>
  </metadata>
</package>`)
	if doc.coverMetaID != "cover-image" {
		t.Fatalf("coverMetaID = %q", doc.coverMetaID)
	}
}
