package epub

import "strings"

// coverStrategy locates the cover image manifest entry. Strategies form an
// ordered chain reflecting EPUB2 conventions, EPUB3 conventions, and common
// malformed-file practice; the order must not change because the filename
// heuristic is loose enough to misfire if checked first.
type coverStrategy struct {
	name string
	fn   func(doc *packageDoc) (ManifestItem, bool)
}

var coverStrategies = []coverStrategy{
	{name: "meta", fn: func(doc *packageDoc) (ManifestItem, bool) {
		if doc.coverMetaID == "" {
			return ManifestItem{}, false
		}
		return doc.item(doc.coverMetaID)
	}},
	{name: "properties", fn: func(doc *packageDoc) (ManifestItem, bool) {
		for _, item := range doc.items() {
			if hasProperty(item.Properties, "cover-image") {
				return item, true
			}
		}
		return ManifestItem{}, false
	}},
	{name: "filename", fn: func(doc *packageDoc) (ManifestItem, bool) {
		for _, item := range doc.items() {
			if !strings.HasPrefix(item.MediaType, "image/") {
				continue
			}
			if strings.Contains(strings.ToLower(item.Href), "cover") {
				return item, true
			}
		}
		return ManifestItem{}, false
	}},
}

// resolveCover applies the strategy chain and verifies the winning entry is
// actually present in the archive. No cover is not an error.
func resolveCover(a *Archive, doc *packageDoc, opfDir string) (ManifestItem, string, bool) {
	for _, s := range coverStrategies {
		item, ok := s.fn(doc)
		if !ok {
			continue
		}
		if resolved, found := resolveEntry(a, item.Href, opfDir); found {
			return item, resolved, true
		}
	}
	return ManifestItem{}, "", false
}
