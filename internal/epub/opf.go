package epub

import (
	"encoding/xml"
	"strings"

	"golang.org/x/text/language"

	"folio/internal/services"
)

const dcNamespace = "http://purl.org/dc/elements/1.1/"

// xmlNode is the generic element AST produced by the single XML decode pass.
// Metadata extraction runs as pure functions over this tree instead of
// scattering namespace special cases through the parser.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

type opfPackage struct {
	XMLName  xml.Name    `xml:"package"`
	Metadata xmlNode     `xml:"metadata"`
	Manifest opfManifest `xml:"manifest"`
	Spine    opfSpine    `xml:"spine"`
}

type opfManifest struct {
	Items []opfManifestItem `xml:"item"`
}

type opfManifestItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr"`
}

type opfSpine struct {
	Toc      string       `xml:"toc,attr"`
	ItemRefs []opfItemRef `xml:"itemref"`
}

type opfItemRef struct {
	IDRef string `xml:"idref,attr"`
}

// packageDoc is the parsed OPF package document.
type packageDoc struct {
	metadata      Metadata
	manifest      map[string]ManifestItem
	manifestOrder []string
	spine         []SpineItem
	spineTocID    string
	coverMetaID   string
}

// parsePackage decodes the OPF document. A root element that is not
// <package> is a fatal parse error; individual metadata fields degrade to
// their defaults instead of failing the whole parse.
func parsePackage(data []byte) (*packageDoc, error) {
	var pkg opfPackage
	if err := xml.Unmarshal(data, &pkg); err != nil {
		return nil, services.Wrap(services.ErrParse, "epub", "opf", "package node missing or malformed", err)
	}

	doc := &packageDoc{
		manifest:   make(map[string]ManifestItem, len(pkg.Manifest.Items)),
		spineTocID: pkg.Spine.Toc,
	}

	for _, item := range pkg.Manifest.Items {
		if item.ID == "" {
			continue
		}
		doc.manifest[item.ID] = ManifestItem{
			ID:         item.ID,
			Href:       normalizePath(item.Href),
			MediaType:  item.MediaType,
			Properties: item.Properties,
		}
		doc.manifestOrder = append(doc.manifestOrder, item.ID)
	}

	// An idref without a manifest match degrades to an entry with empty
	// href/media-type rather than failing the parse.
	for _, ref := range pkg.Spine.ItemRefs {
		entry := SpineItem{ID: ref.IDRef}
		if item, ok := doc.manifest[ref.IDRef]; ok {
			entry.Href = item.Href
			entry.MediaType = item.MediaType
		}
		doc.spine = append(doc.spine, entry)
	}

	doc.metadata = extractMetadata(&pkg.Metadata)
	doc.coverMetaID = coverMetaContent(&pkg.Metadata)

	return doc, nil
}

func (d *packageDoc) item(id string) (ManifestItem, bool) {
	item, ok := d.manifest[id]
	return item, ok
}

// items returns manifest entries in document order.
func (d *packageDoc) items() []ManifestItem {
	out := make([]ManifestItem, 0, len(d.manifestOrder))
	for _, id := range d.manifestOrder {
		out = append(out, d.manifest[id])
	}
	return out
}

func extractMetadata(meta *xmlNode) Metadata {
	md := Metadata{
		Title:       metaValueOr(meta, "title", "Unknown"),
		Author:      metaValueOr(meta, "creator", "Unknown"),
		Publisher:   metaValue(meta, "publisher"),
		PublishDate: metaValue(meta, "date"),
		Description: metaValue(meta, "description"),
		ISBN:        extractISBN(meta),
	}
	md.Language = canonicalLanguage(metaValue(meta, "language"))
	return md
}

// metaValue tries, in priority order, a dc-namespaced child, a
// non-namespaced child, and finally a nested dc-metadata variant. Each
// getter independently falls back to empty.
func metaValue(meta *xmlNode, local string) string {
	for _, node := range metaNodes(meta, local) {
		if v := strings.TrimSpace(node.Text); v != "" {
			return v
		}
	}
	return ""
}

func metaValueOr(meta *xmlNode, local, fallback string) string {
	if v := metaValue(meta, local); v != "" {
		return v
	}
	return fallback
}

func metaNodes(meta *xmlNode, local string) []xmlNode {
	var namespaced, plain, nested []xmlNode
	for _, child := range meta.Children {
		if child.XMLName.Local == local {
			if child.XMLName.Space == dcNamespace {
				namespaced = append(namespaced, child)
			} else {
				plain = append(plain, child)
			}
			continue
		}
		// dc-metadata nesting used by some EPUB2 producers.
		if child.XMLName.Local == "dc-metadata" || child.XMLName.Local == "metadata" {
			for _, grandchild := range child.Children {
				if grandchild.XMLName.Local == local {
					nested = append(nested, grandchild)
				}
			}
		}
	}
	out := make([]xmlNode, 0, len(namespaced)+len(plain)+len(nested))
	out = append(out, namespaced...)
	out = append(out, plain...)
	out = append(out, nested...)
	return out
}

// extractISBN scans every identifier entry for a value mentioning ISBN and
// strips the "isbn:" prefix when present. Absent a match it returns empty.
func extractISBN(meta *xmlNode) string {
	for _, node := range metaNodes(meta, "identifier") {
		value := strings.TrimSpace(node.Text)
		lower := strings.ToLower(value)
		if !strings.Contains(lower, "isbn") {
			continue
		}
		if idx := strings.Index(lower, "isbn:"); idx >= 0 {
			return strings.TrimSpace(value[idx+len("isbn:"):])
		}
		return value
	}
	return ""
}

// coverMetaContent returns the content attribute of <meta name="cover">,
// the EPUB2 convention for naming the cover manifest item.
func coverMetaContent(meta *xmlNode) string {
	for _, child := range meta.Children {
		if child.XMLName.Local != "meta" {
			continue
		}
		if child.attr("name") == "cover" {
			if content := strings.TrimSpace(child.attr("content")); content != "" {
				return content
			}
		}
	}
	return ""
}

// canonicalLanguage normalizes a BCP 47 tag; unparseable values pass
// through verbatim.
func canonicalLanguage(raw string) string {
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return raw
	}
	return tag.String()
}
