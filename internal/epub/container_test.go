package epub

import (
	"errors"
	"testing"

	"folio/internal/services"
)

func TestResolveContainer(t *testing.T) {
	a := makeArchive(t, map[string]string{
		"META-INF/container.xml": `<?xml version="1.0"?>
<container xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`,
	})

	opfPath, err := resolveContainer(a)
	if err != nil {
		t.Fatalf("resolveContainer: %v", err)
	}
	if opfPath != "OEBPS/content.opf" {
		t.Fatalf("opfPath = %q", opfPath)
	}
}

func TestResolveContainerMissing(t *testing.T) {
	a := makeArchive(t, map[string]string{"mimetype": "application/epub+zip"})

	_, err := resolveContainer(a)
	if !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected fatal parse error, got %v", err)
	}
}

func TestResolveContainerMissingFullPath(t *testing.T) {
	a := makeArchive(t, map[string]string{
		"META-INF/container.xml": `<container><rootfiles><rootfile media-type="application/oebps-package+xml"/></rootfiles></container>`,
	})

	_, err := resolveContainer(a)
	if !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected fatal parse error for missing full-path, got %v", err)
	}
}
