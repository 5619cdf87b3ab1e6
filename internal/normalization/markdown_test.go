package normalization

import "testing"

func TestNormalizeMarkdown(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		title string
		want  string
	}{
		{
			name:  "markdown_fence_stripped",
			raw:   "```markdown\n# Study Guide\n\n- point one\n```",
			title: "Refined Notes",
			want:  "# Study Guide\n\n- point one",
		},
		{
			name:  "bare_fence_stripped",
			raw:   "```\n# Study Guide\n\nBody text\n```",
			title: "Refined Notes",
			want:  "# Study Guide\n\nBody text",
		},
		{
			name:  "preamble_cut_through_first_newline",
			raw:   "Sure, here is the refined version:\nRest of text",
			title: "Refined Notes",
			want:  "# Refined Notes\n\nRest of text",
		},
		{
			name:  "preamble_without_newline_cut_exactly",
			raw:   "Here you go: # Topic",
			title: "Refined Notes",
			want:  "# Topic",
		},
		{
			name:  "plain_body_gets_default_heading",
			raw:   "Plain text body",
			title: "Refined Notes",
			want:  "# Refined Notes\n\nPlain text body",
		},
		{
			name:  "already_clean_unchanged",
			raw:   "# Interfaces\n\nAn interface defines behavior.",
			title: "Refined Notes",
			want:  "# Interfaces\n\nAn interface defines behavior.",
		},
		{
			name:  "only_first_preamble_rule_applies",
			raw:   "Here you go:\nSure, this line stays",
			title: "Refined Notes",
			want:  "# Refined Notes\n\nSure, this line stays",
		},
		{
			name:  "preamble_match_is_case_insensitive",
			raw:   "CERTAINLY, glad to help\n# Topic\nBody",
			title: "Refined Notes",
			want:  "# Topic\nBody",
		},
		{
			name:  "preamble_is_prefix_only_not_substring",
			raw:   "# Notes\nI said sure, it works",
			title: "Refined Notes",
			want:  "# Notes\nI said sure, it works",
		},
		{
			name:  "fence_then_preamble_then_heading",
			raw:   "```markdown\nSure, here it is:\nBody without heading\n```",
			title: "Refined Notes",
			want:  "# Refined Notes\n\nBody without heading",
		},
		{
			name:  "whitespace_only_gets_default_heading",
			raw:   "   \n\t ",
			title: "Refined Notes",
			want:  "# Refined Notes",
		},
		{
			name:  "empty_fence_gets_default_heading",
			raw:   "```\n```",
			title: "Refined Notes",
			want:  "# Refined Notes",
		},
		{
			name:  "empty_markdown_fence_gets_default_heading",
			raw:   "```markdown\n```",
			title: "Refined Notes",
			want:  "# Refined Notes",
		},
		{
			name:  "bare_preamble_gets_default_heading",
			raw:   "Sure,",
			title: "Refined Notes",
			want:  "# Refined Notes",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeMarkdown(tc.raw, tc.title)
			if got != tc.want {
				t.Fatalf("NormalizeMarkdown(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeMarkdownIdempotent(t *testing.T) {
	inputs := []string{
		"```markdown\n# Topic\nBody\n```",
		"Sure, here is the refined version:\nRest of text",
		"Plain text body",
		"# Already clean\n\nBody",
		"```\n```",
		"Sure,",
		"",
	}
	for _, in := range inputs {
		once := NormalizeMarkdown(in, "Refined Notes")
		twice := NormalizeMarkdown(once, "Refined Notes")
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
