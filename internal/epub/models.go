package epub

// Metadata holds the book-level fields extracted from the OPF package
// document. Every field is best-effort; Title and Author fall back to
// "Unknown" when the package declares nothing usable.
type Metadata struct {
	Title       string
	Author      string
	Publisher   string
	PublishDate string
	ISBN        string
	Language    string
	Description string
}

// ManifestItem is one entry of the OPF manifest.
type ManifestItem struct {
	ID         string
	Href       string
	MediaType  string
	Properties string
}

// SpineItem is one entry of the linear reading order. Its position in the
// spine slice is the canonical chapter index used everywhere downstream.
type SpineItem struct {
	ID        string
	Href      string
	MediaType string
}

// TOCItem is a node of the hierarchical table of contents. IDs are
// path-encoded ("0-1-2") so they stay stable across re-parses of the same
// document regardless of label content.
type TOCItem struct {
	ID       string
	Label    string
	Href     string
	Parent   string
	Children []TOCItem
}

// Chapter is the cleaned plain-text content of one spine entry.
type Chapter struct {
	Index int
	Href  string
	Title string
	Text  string
}

// Book is the immutable result of a full parse.
type Book struct {
	Metadata  Metadata
	TOC       []TOCItem
	Spine     []SpineItem
	CoverPath string
}
