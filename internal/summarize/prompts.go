package summarize

import "fmt"

// reduceDelimiter separates chunk summaries inside the reduce prompt.
const reduceDelimiter = "\n\n---\n\n"

func mapPrompt(chunk string) string {
	return fmt.Sprintf(`Summarize the following book excerpt in 100-150 words. Be extractive: report only what the text itself says, keeping the author's key claims, events, and terminology. Do not add commentary.

Excerpt:
%s`, chunk)
}

func reducePrompt(joined string) string {
	return fmt.Sprintf(`The following are summaries of consecutive excerpts from a single book chapter, separated by "---". Synthesize them into one coherent chapter summary of 200-500 words. Preserve the chapter's structure and flow. Use only facts present in the summaries below; do not introduce information that is absent from them.

%s`, joined)
}

func directPrompt(content string) string {
	return fmt.Sprintf(`Summarize the following book chapter in 200-500 words. Capture the main themes, arguments, and events in the order they appear. Use only facts present in the chapter text.

%s`, content)
}
