package testsupport

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// EPUBChapter describes one content document in a generated test book.
type EPUBChapter struct {
	Href  string
	Title string
	Body  string
}

// EPUBBook describes the shape of a generated test book.
type EPUBBook struct {
	Title     string
	Author    string
	Language  string
	ISBN      string
	Chapters  []EPUBChapter
	NoNCX     bool
	CoverHref string
	CoverMeta bool
	Extra     map[string]string
}

// BuildEPUB assembles a minimal but structurally valid EPUB archive in
// memory and returns its bytes.
func BuildEPUB(t testing.TB, book EPUBBook) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	write := func(name, content string) {
		header := &zip.FileHeader{Name: name, Method: zip.Deflate}
		if name == "mimetype" {
			header.Method = zip.Store
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}

	write("mimetype", "application/epub+zip")
	write("META-INF/container.xml", `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`)

	var manifest, spine, navPoints strings.Builder
	for i, ch := range book.Chapters {
		id := fmt.Sprintf("ch%d", i+1)
		fmt.Fprintf(&manifest, `    <item id=%q href=%q media-type="application/xhtml+xml"/>`+"\n", id, ch.Href)
		fmt.Fprintf(&spine, `    <itemref idref=%q/>`+"\n", id)
		fmt.Fprintf(&navPoints, `    <navPoint id="nav-%d" playOrder="%d">
      <navLabel><text>%s</text></navLabel>
      <content src=%q/>
    </navPoint>`+"\n", i+1, i+1, ch.Title, ch.Href)
		write("OEBPS/"+ch.Href, `<?xml version="1.0" encoding="utf-8"?>
<html xmlns="http://www.w3.org/1999/xhtml"><head><title>`+ch.Title+`</title></head>
<body>`+ch.Body+`</body></html>`)
	}

	if !book.NoNCX {
		fmt.Fprintf(&manifest, `    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>`+"\n")
		write("OEBPS/toc.ncx", `<?xml version="1.0" encoding="utf-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head/>
  <docTitle><text>`+book.Title+`</text></docTitle>
  <navMap>
`+navPoints.String()+`  </navMap>
</ncx>`)
	}

	coverName := book.CoverHref
	if coverName != "" {
		id := "cover-img"
		props := ""
		if !book.CoverMeta {
			props = ` properties="cover-image"`
		}
		fmt.Fprintf(&manifest, `    <item id=%q href=%q media-type="image/jpeg"%s/>`+"\n", id, coverName, props)
		write("OEBPS/"+coverName, "\xff\xd8\xff\xdbfake-jpeg-bytes")
	}

	var meta strings.Builder
	meta.WriteString("    <dc:title>" + book.Title + "</dc:title>\n")
	if book.Author != "" {
		meta.WriteString("    <dc:creator>" + book.Author + "</dc:creator>\n")
	}
	if book.Language != "" {
		meta.WriteString("    <dc:language>" + book.Language + "</dc:language>\n")
	}
	if book.ISBN != "" {
		meta.WriteString(`    <dc:identifier id="isbn">isbn:` + book.ISBN + "</dc:identifier>\n")
	}
	if book.CoverHref != "" && book.CoverMeta {
		meta.WriteString(`    <meta name="cover" content="cover-img"/>` + "\n")
	}

	tocAttr := ""
	if !book.NoNCX {
		tocAttr = ` toc="ncx"`
	}
	write("OEBPS/content.opf", `<?xml version="1.0" encoding="utf-8"?>
<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0" unique-identifier="isbn">
  <metadata>
`+meta.String()+`  </metadata>
  <manifest>
`+manifest.String()+`  </manifest>
  <spine`+tocAttr+`>
`+spine.String()+`  </spine>
</package>`)

	for name, content := range book.Extra {
		write(name, content)
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// SimpleEPUB returns a two-chapter book with sensible defaults, useful when
// a test only needs any parseable archive.
func SimpleEPUB(t testing.TB) []byte {
	t.Helper()
	return BuildEPUB(t, EPUBBook{
		Title:    "Test Book",
		Author:   "Jane Dev",
		Language: "en-us",
		Chapters: []EPUBChapter{
			{Href: "chapter1.xhtml", Title: "Chapter One", Body: "<p>First chapter text.</p><p>Second paragraph.</p>"},
			{Href: "chapter2.xhtml", Title: "Chapter Two", Body: "<p>More text here.</p>"},
		},
	})
}
