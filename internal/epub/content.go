package epub

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"folio/internal/services"
)

var (
	scriptPattern     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	stylePattern      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	brPattern         = regexp.MustCompile(`(?i)<br\s*/?\s*>`)
	paragraphPattern  = regexp.MustCompile(`(?i)</p\s*>`)
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	numericEntity     = regexp.MustCompile(`&#(\d+);`)
	horizontalSpaces  = regexp.MustCompile(`[ \t]+`)
	excessiveNewlines = regexp.MustCompile(`\n{3,}`)
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
)

// CleanHTML converts chapter markup to readable plain text: script/style
// blocks are removed with their content, <br> becomes a newline and </p> a
// paragraph break, remaining tags are stripped, a fixed entity set plus
// numeric references are decoded, and whitespace is collapsed.
func CleanHTML(html string) string {
	text := scriptPattern.ReplaceAllString(html, "")
	text = stylePattern.ReplaceAllString(text, "")
	text = brPattern.ReplaceAllString(text, "\n")
	text = paragraphPattern.ReplaceAllString(text, "\n\n")
	text = tagPattern.ReplaceAllString(text, "")
	text = entityReplacer.Replace(text)
	text = numericEntity.ReplaceAllStringFunc(text, func(m string) string {
		code, err := strconv.Atoi(m[2 : len(m)-1])
		if err != nil || code < 0 || code > 0x10FFFF {
			return ""
		}
		return string(rune(code))
	})
	text = horizontalSpaces.ReplaceAllString(text, " ")
	text = excessiveNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// loadChapter resolves the spine entry at index and returns its cleaned
// plain text. Out-of-range indices and unresolvable hrefs are errors for
// this single chapter only; they do not invalidate the rest of the book.
func loadChapter(a *Archive, doc *packageDoc, toc []TOCItem, opfDir string, index int) (Chapter, error) {
	if index < 0 || index >= len(doc.spine) {
		return Chapter{}, services.Wrap(services.ErrValidation, "epub", "chapter",
			fmt.Sprintf("chapter index %d out of range [0, %d)", index, len(doc.spine)), nil)
	}
	entry := doc.spine[index]
	resolved, ok := resolveEntry(a, entry.Href, opfDir)
	if !ok {
		return Chapter{}, services.Wrap(services.ErrNotFound, "epub", "chapter",
			fmt.Sprintf("chapter %d content not found in archive: %q", index, entry.Href), nil)
	}
	raw, err := a.ReadText(resolved)
	if err != nil {
		return Chapter{}, services.Wrap(services.ErrNotFound, "epub", "chapter",
			fmt.Sprintf("chapter %d content unreadable: %q", index, resolved), err)
	}

	chapter := Chapter{
		Index: index,
		Href:  entry.Href,
		Text:  CleanHTML(raw),
	}
	if item, ok := findTOCItem(toc, entry.Href, entry.ID); ok {
		chapter.Title = item.Label
	}
	return chapter, nil
}
