package epub

import (
	"encoding/xml"
	"log/slog"
	"strconv"
	"strings"
)

type ncxDoc struct {
	XMLName xml.Name `xml:"ncx"`
	NavMap  struct {
		NavPoints []ncxNavPoint `xml:"navPoint"`
	} `xml:"navMap"`
}

type ncxNavPoint struct {
	NavLabel struct {
		Text string `xml:"text"`
	} `xml:"navLabel"`
	Content struct {
		Src string `xml:"src,attr"`
	} `xml:"content"`
	Children []ncxNavPoint `xml:"navPoint"`
}

// extractTOC builds the table of contents tree. The TOC is advisory: every
// failure path degrades to an empty tree with a logged warning, since
// chapter access goes through the spine index, not the TOC.
func extractTOC(a *Archive, doc *packageDoc, opfDir string, log *slog.Logger) []TOCItem {
	if toc, ok := extractNCX(a, doc, opfDir, log); ok {
		return toc
	}
	if toc, ok := extractNav(a, doc, opfDir, log); ok {
		return toc
	}
	log.Warn("no navigation document resolved, returning empty toc")
	return []TOCItem{}
}

func extractNCX(a *Archive, doc *packageDoc, opfDir string, log *slog.Logger) ([]TOCItem, bool) {
	href, ok := locateNCX(doc)
	if !ok {
		return nil, false
	}
	resolved, ok := resolveEntry(a, href, opfDir)
	if !ok {
		log.Warn("ncx entry missing from archive", "href", href)
		return nil, false
	}
	data, err := a.ReadBytes(resolved)
	if err != nil {
		log.Warn("ncx entry unreadable", "href", resolved, "error", err)
		return nil, false
	}
	var ncx ncxDoc
	if err := xml.Unmarshal(data, &ncx); err != nil {
		log.Warn("ncx parse failed", "href", resolved, "error", err)
		return nil, false
	}
	return buildNavPoints(ncx.NavMap.NavPoints, "", ""), true
}

// locateNCX follows the spine's toc attribute into the manifest, then scans
// for an item whose media type contains "ncx" or whose href ends in ".ncx".
func locateNCX(doc *packageDoc) (string, bool) {
	if doc.spineTocID != "" {
		if item, ok := doc.item(doc.spineTocID); ok && item.Href != "" {
			return item.Href, true
		}
	}
	for _, item := range doc.items() {
		if strings.Contains(strings.ToLower(item.MediaType), "ncx") ||
			strings.HasSuffix(strings.ToLower(item.Href), ".ncx") {
			return item.Href, true
		}
	}
	return "", false
}

// buildNavPoints converts navPoint elements recursively. Node ids are the
// sibling-index path ("0", "0-1", ...), stable across re-parses of the same
// document and independent of label content.
func buildNavPoints(points []ncxNavPoint, prefix, parentID string) []TOCItem {
	items := make([]TOCItem, 0, len(points))
	for i, p := range points {
		id := prefix + strconv.Itoa(i)
		item := TOCItem{
			ID:     id,
			Label:  strings.TrimSpace(p.NavLabel.Text),
			Href:   normalizePath(strings.TrimSpace(p.Content.Src)),
			Parent: parentID,
		}
		if len(p.Children) > 0 {
			item.Children = buildNavPoints(p.Children, id+"-", id)
		}
		items = append(items, item)
	}
	return items
}

// findTOCItem searches the tree depth-first for a node whose href matches
// the chapter href or contains the chapter's manifest id. The contains check
// is deliberately loose and can false-match on short manifest ids; it is
// kept because real archives rarely mirror manifest hrefs in their nav
// documents exactly.
func findTOCItem(items []TOCItem, chapterHref, manifestID string) (TOCItem, bool) {
	target := stripFragment(normalizePath(chapterHref))
	for _, item := range items {
		href := stripFragment(item.Href)
		if target != "" && href == target {
			return item, true
		}
		if manifestID != "" && strings.Contains(item.Href, manifestID) {
			return item, true
		}
		if found, ok := findTOCItem(item.Children, chapterHref, manifestID); ok {
			return found, ok
		}
	}
	return TOCItem{}, false
}

func stripFragment(href string) string {
	if idx := strings.IndexByte(href, '#'); idx >= 0 {
		return href[:idx]
	}
	return href
}
