package normalization

import (
	"strings"
)

// KnownPreambles are conversational lead-ins models prepend to output despite
// instructions. Matched in order, case-insensitive, prefix only; the first hit
// wins and no second rule is applied.
var KnownPreambles = []string{
	"here is the refined notes:",
	"sure,",
	"certainly,",
	"of course,",
	"here you go:",
	"here is a comprehensive",
}

// NormalizeMarkdown turns a raw model completion into canonical Markdown:
// code fences stripped, conversational preambles removed, and a top-level
// heading guaranteed. Pure and deterministic; already-clean input is returned
// unchanged.
func NormalizeMarkdown(raw string, defaultTitle string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```markdown") {
		text = strings.ReplaceAll(text, "```markdown", "")
		text = strings.ReplaceAll(text, "```", "")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.ReplaceAll(text, "```", "")
		text = strings.TrimSpace(text)
	}

	lower := strings.ToLower(text)
	for _, prefix := range KnownPreambles {
		if !strings.HasPrefix(lower, prefix) {
			continue
		}
		if i := strings.Index(text, "\n"); i != -1 {
			text = strings.TrimSpace(text[i:])
		} else {
			text = strings.TrimSpace(text[len(prefix):])
		}
		break
	}

	if !strings.HasPrefix(text, "#") {
		text = strings.TrimSpace("# " + defaultTitle + "\n\n" + text)
	}
	return text
}
