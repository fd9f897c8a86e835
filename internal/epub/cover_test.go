package epub

import "testing"

func TestResolveCoverMetaTier(t *testing.T) {
	a := makeArchive(t, map[string]string{"images/front.jpg": "jpg"})
	doc := mustParsePackage(t, `<package>
  <metadata><meta name="cover" content="img1"/></metadata>
  <manifest>
    <item id="img1" href="images/front.jpg" media-type="image/jpeg"/>
    <item id="img2" href="images/cover.jpg" media-type="image/jpeg"/>
  </manifest>
</package>`)

	item, path, ok := resolveCover(a, doc, "")
	if !ok || item.ID != "img1" || path != "images/front.jpg" {
		t.Fatalf("meta tier must win: item=%+v path=%q ok=%v", item, path, ok)
	}
}

func TestResolveCoverPropertiesTier(t *testing.T) {
	a := makeArchive(t, map[string]string{"images/art.png": "png"})
	doc := mustParsePackage(t, `<package>
  <manifest>
    <item id="img1" href="images/art.png" media-type="image/png" properties="svg cover-image"/>
  </manifest>
</package>`)

	item, _, ok := resolveCover(a, doc, "")
	if !ok || item.ID != "img1" {
		t.Fatalf("properties tier failed: %+v ok=%v", item, ok)
	}
}

func TestResolveCoverFilenameTier(t *testing.T) {
	a := makeArchive(t, map[string]string{"images/cover-full.jpg": "jpg"})
	doc := mustParsePackage(t, `<package>
  <manifest>
    <item id="css" href="styles/cover.css" media-type="text/css"/>
    <item id="img1" href="images/cover-full.jpg" media-type="image/jpeg"/>
  </manifest>
</package>`)

	item, path, ok := resolveCover(a, doc, "")
	if !ok || item.ID != "img1" || path != "images/cover-full.jpg" {
		t.Fatalf("filename tier failed: item=%+v path=%q ok=%v", item, path, ok)
	}
}

func TestResolveCoverSkipsEntriesMissingFromArchive(t *testing.T) {
	a := makeArchive(t, map[string]string{"images/cover.jpg": "jpg"})
	doc := mustParsePackage(t, `<package>
  <metadata><meta name="cover" content="ghost"/></metadata>
  <manifest>
    <item id="ghost" href="images/ghost.jpg" media-type="image/jpeg"/>
    <item id="img1" href="images/cover.jpg" media-type="image/jpeg"/>
  </manifest>
</package>`)

	item, _, ok := resolveCover(a, doc, "")
	if !ok || item.ID != "img1" {
		t.Fatalf("expected fallthrough past unresolvable meta entry, got %+v ok=%v", item, ok)
	}
}

func TestResolveCoverAbsent(t *testing.T) {
	a := makeArchive(t, map[string]string{"ch1.xhtml": "x"})
	doc := mustParsePackage(t, `<package>
  <manifest>
    <item id="ch1" href="ch1.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
</package>`)

	if _, _, ok := resolveCover(a, doc, ""); ok {
		t.Fatal("expected no cover")
	}
}
