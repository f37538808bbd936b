package report

import (
	"regexp"
	"strings"
)

// maxTokenRun is the longest run of an identical whitespace-separated token
// tolerated before the run is collapsed. Degenerate model output
// occasionally repeats a token dozens of times.
const maxTokenRun = 4

// preamblePattern matches known conversational openers the model sometimes
// prepends despite instructions. Matched at line starts, case-insensitive.
var preamblePattern = regexp.MustCompile(`(?im)^(claro[!,.]?\s*|com certeza[!,.]?\s*|aqui está[^\n:]*:\s*|segue(?: abaixo)?[^\n:]*:\s*|sure[!,.]?\s*|certainly[!,.]?\s*|here(?:'s| is)[^\n:]*:\s*|of course[!,.]?\s*)`)

// fencePattern matches leading/trailing markdown code fences.
var fencePattern = regexp.MustCompile("(?s)^\\s*```(?:html)?\\s*|\\s*```\\s*$")

// Sanitize cleans raw model output for embedding into the report: strips
// code fences, removes conversational preambles and collapses pathological
// repeated-token runs. This is defensive cleanup, not a correctness
// guarantee on the content itself.
func Sanitize(raw string) string {
	text := strings.TrimSpace(raw)
	text = fencePattern.ReplaceAllString(text, "")
	text = preamblePattern.ReplaceAllString(text, "")
	text = collapseRepeatedTokens(text)
	return strings.TrimSpace(text)
}

// collapseRepeatedTokens rewrites lines containing a run of the same token
// longer than maxTokenRun, keeping a single occurrence. Lines without such
// runs are preserved verbatim, including their spacing.
func collapseRepeatedTokens(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if hasLongTokenRun(line) {
			lines[i] = collapseLine(line)
		}
	}
	return strings.Join(lines, "\n")
}

func hasLongTokenRun(line string) bool {
	tokens := strings.Fields(line)
	run := 1
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == tokens[i-1] {
			run++
			if run > maxTokenRun {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// collapseLine reduces every run longer than maxTokenRun to a single
// occurrence of the repeated token. Spacing within the line is normalized.
func collapseLine(line string) string {
	tokens := strings.Fields(line)
	var out []string
	for i := 0; i < len(tokens); {
		j := i
		for j < len(tokens) && tokens[j] == tokens[i] {
			j++
		}
		if j-i > maxTokenRun {
			out = append(out, tokens[i])
		} else {
			out = append(out, tokens[i:j]...)
		}
		i = j
	}
	return strings.Join(out, " ")
}
