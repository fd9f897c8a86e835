package epub

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractNav parses an EPUB3 navigation document (manifest item with the
// "nav" property) as HTML. Used only when no NCX resolves.
func extractNav(a *Archive, doc *packageDoc, opfDir string, log *slog.Logger) ([]TOCItem, bool) {
	href, ok := locateNav(doc)
	if !ok {
		return nil, false
	}
	resolved, ok := resolveEntry(a, href, opfDir)
	if !ok {
		log.Warn("nav entry missing from archive", "href", href)
		return nil, false
	}
	data, err := a.ReadBytes(resolved)
	if err != nil {
		log.Warn("nav entry unreadable", "href", resolved, "error", err)
		return nil, false
	}
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		log.Warn("nav parse failed", "href", resolved, "error", err)
		return nil, false
	}

	nav := selectTocNav(gq)
	if nav == nil {
		log.Warn("nav document has no toc nav element", "href", resolved)
		return nil, false
	}
	list := nav.Find("ol").First()
	if list.Length() == 0 {
		return nil, false
	}
	return buildNavList(list, "", ""), true
}

func locateNav(doc *packageDoc) (string, bool) {
	for _, item := range doc.items() {
		if hasProperty(item.Properties, "nav") {
			return item.Href, true
		}
	}
	return "", false
}

// selectTocNav prefers the nav marked epub:type="toc", falling back to the
// first nav element.
func selectTocNav(gq *goquery.Document) *goquery.Selection {
	var toc *goquery.Selection
	gq.Find("nav").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.EqualFold(s.AttrOr("epub:type", ""), "toc") {
			toc = s
			return false
		}
		return true
	})
	if toc != nil {
		return toc
	}
	first := gq.Find("nav").First()
	if first.Length() == 0 {
		return nil
	}
	return first
}

func buildNavList(list *goquery.Selection, prefix, parentID string) []TOCItem {
	var items []TOCItem
	list.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
		id := prefix + strconv.Itoa(i)
		anchor := li.ChildrenFiltered("a").First()
		if anchor.Length() == 0 {
			anchor = li.Find("a").First()
		}
		item := TOCItem{
			ID:     id,
			Label:  strings.TrimSpace(anchor.Text()),
			Href:   normalizePath(strings.TrimSpace(anchor.AttrOr("href", ""))),
			Parent: parentID,
		}
		if sub := li.ChildrenFiltered("ol").First(); sub.Length() > 0 {
			item.Children = buildNavList(sub, id+"-", id)
		}
		items = append(items, item)
	})
	return items
}

func hasProperty(properties, want string) bool {
	for _, p := range strings.Fields(properties) {
		if p == want {
			return true
		}
	}
	return false
}
