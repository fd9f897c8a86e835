package epub

import (
	"log/slog"
	"path"

	"folio/internal/logging"
	"folio/internal/services"
)

// Document is an opened EPUB with its package document parsed. Parse results
// are derived fresh on every Open; nothing here is cached between calls.
type Document struct {
	archive   *Archive
	opfPath   string
	opfDir    string
	pkg       *packageDoc
	toc       []TOCItem
	coverItem ManifestItem
	coverPath string
	hasCover  bool
	log       *slog.Logger
}

// Option customizes document parsing.
type Option func(*Document)

// WithLogger routes degraded-parse warnings to the supplied logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Document) {
		if log != nil {
			d.log = log
		}
	}
}

// Open opens and parses an EPUB file from disk. The caller owns Close.
func Open(filePath string, opts ...Option) (*Document, error) {
	archive, err := OpenArchive(filePath)
	if err != nil {
		return nil, services.Wrap(services.ErrParse, "epub", "open", filePath, err)
	}
	doc, err := newDocument(archive, opts...)
	if err != nil {
		_ = archive.Close()
		return nil, err
	}
	return doc, nil
}

// FromBytes opens and parses an EPUB held in memory.
func FromBytes(data []byte, opts ...Option) (*Document, error) {
	archive, err := NewArchive(data)
	if err != nil {
		return nil, services.Wrap(services.ErrParse, "epub", "open", "byte buffer", err)
	}
	return newDocument(archive, opts...)
}

func newDocument(archive *Archive, opts ...Option) (*Document, error) {
	d := &Document{archive: archive, log: logging.NewNop()}
	for _, opt := range opts {
		opt(d)
	}

	if !archive.HasValidMimetype() {
		d.log.Warn("mimetype entry missing or invalid, continuing anyway")
	}

	opfPath, err := resolveContainer(archive)
	if err != nil {
		return nil, err
	}
	d.opfPath = opfPath
	d.opfDir = path.Dir(opfPath)
	if d.opfDir == "." {
		d.opfDir = ""
	}

	opfData, err := archive.ReadBytes(opfPath)
	if err != nil {
		return nil, services.Wrap(services.ErrParse, "epub", "opf", "opf entry missing: "+opfPath, err)
	}
	pkg, err := parsePackage(opfData)
	if err != nil {
		return nil, err
	}
	d.pkg = pkg

	d.toc = extractTOC(archive, pkg, d.opfDir, d.log)
	d.coverItem, d.coverPath, d.hasCover = resolveCover(archive, pkg, d.opfDir)

	return d, nil
}

// Close releases the underlying archive handle.
func (d *Document) Close() error {
	return d.archive.Close()
}

// Metadata returns the parsed book metadata.
func (d *Document) Metadata() Metadata { return d.pkg.metadata }

// Spine returns the linear reading order.
func (d *Document) Spine() []SpineItem {
	out := make([]SpineItem, len(d.pkg.spine))
	copy(out, d.pkg.spine)
	return out
}

// TOC returns the table of contents tree, empty when no navigation document
// resolved.
func (d *Document) TOC() []TOCItem { return d.toc }

// CoverPath returns the resolved archive path of the cover image, or empty
// when no cover was found.
func (d *Document) CoverPath() string { return d.coverPath }

// ChapterContent loads and cleans the chapter at the given spine index.
func (d *Document) ChapterContent(index int) (Chapter, error) {
	return loadChapter(d.archive, d.pkg, d.toc, d.opfDir, index)
}

// ChapterCount returns the number of spine entries.
func (d *Document) ChapterCount() int { return len(d.pkg.spine) }

// CoverData reads the cover image bytes, or nil when no cover was found.
func (d *Document) CoverData() ([]byte, error) {
	if !d.hasCover {
		return nil, nil
	}
	return d.archive.ReadBytes(d.coverPath)
}

// Parse opens filePath and returns an immutable snapshot of everything the
// package extracts in one pass.
func Parse(filePath string, opts ...Option) (*Book, error) {
	doc, err := Open(filePath, opts...)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return &Book{
		Metadata:  doc.Metadata(),
		TOC:       doc.TOC(),
		Spine:     doc.Spine(),
		CoverPath: doc.CoverPath(),
	}, nil
}

// ExtractCoverData returns the cover image bytes, or nil when the book has
// no resolvable cover.
func ExtractCoverData(filePath string, opts ...Option) ([]byte, error) {
	doc, err := Open(filePath, opts...)
	if err != nil {
		return nil, err
	}
	defer doc.Close()
	return doc.CoverData()
}

// Validate reports whether filePath parses far enough to load chapters. It
// never returns details; callers wanting the cause use Open.
func Validate(filePath string) bool {
	doc, err := Open(filePath)
	if err != nil {
		return false
	}
	_ = doc.Close()
	return true
}
