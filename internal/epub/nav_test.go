package epub

import (
	"testing"

	"folio/internal/logging"
)

const navDoc = `<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<body>
<nav epub:type="landmarks"><ol><li><a href="cover.xhtml">Cover</a></li></ol></nav>
<nav epub:type="toc">
  <ol>
    <li><a href="ch1.xhtml">Chapter One</a>
      <ol>
        <li><a href="ch1.xhtml#sec1">Section 1.1</a></li>
      </ol>
    </li>
    <li><a href="ch2.xhtml">Chapter Two</a></li>
  </ol>
</nav>
</body>
</html>`

func TestExtractNavBuildsTree(t *testing.T) {
	a := makeArchive(t, map[string]string{"nav.xhtml": navDoc})
	doc := mustParsePackage(t, `<package>
  <manifest>
    <item id="nav" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>
  </manifest>
</package>`)

	toc, ok := extractNav(a, doc, "", logging.NewNop())
	if !ok {
		t.Fatal("expected nav extraction to succeed")
	}
	if len(toc) != 2 {
		t.Fatalf("expected 2 roots, got %+v", toc)
	}
	if toc[0].Label != "Chapter One" || toc[0].Href != "ch1.xhtml" || toc[0].ID != "0" {
		t.Fatalf("unexpected root: %+v", toc[0])
	}
	if len(toc[0].Children) != 1 || toc[0].Children[0].ID != "0-0" || toc[0].Children[0].Label != "Section 1.1" {
		t.Fatalf("unexpected children: %+v", toc[0].Children)
	}
	if toc[1].Label != "Chapter Two" {
		t.Fatalf("unexpected second root: %+v", toc[1])
	}
}

func TestExtractNavWithoutNavItem(t *testing.T) {
	a := makeArchive(t, map[string]string{"ch1.xhtml": "<p>x</p>"})
	doc := mustParsePackage(t, `<package>
  <manifest><item id="ch1" href="ch1.xhtml" media-type="application/xhtml+xml"/></manifest>
</package>`)

	if _, ok := extractNav(a, doc, "", logging.NewNop()); ok {
		t.Fatal("expected no nav toc")
	}
}

func TestHasProperty(t *testing.T) {
	if !hasProperty("svg cover-image nav", "nav") {
		t.Fatal("expected property match")
	}
	if hasProperty("navigation", "nav") {
		t.Fatal("substring must not match")
	}
	if hasProperty("", "nav") {
		t.Fatal("empty properties must not match")
	}
}
