package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff is the difference between the texts at Index of two nodes.
type TextDiff struct {
	Index int
	From  string
	To    string
	Diffs []diffpatch.Diff
}

func diffTexts(from, to []string) []TextDiff {
	var res []TextDiff
	for i := range max(len(from), len(to)) {
		var f, t string
		if i < len(from) {
			f = from[i]
		}
		if i < len(to) {
			t = to[i]
		}
		if i < len(from) && i < len(to) && f == t {
			continue
		}
		res = append(res, TextDiff{Index: i, From: f, To: t, Diffs: DiffText(f, t)})
	}
	return res
}

// DiffText returns a character diff of two texts, by lines first when both
// span several lines.
func DiffText(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, doMultiLine)
	return dmp.DiffCleanupSemantic(diffs)
}

// PatchText applies the diff of td to text, which must be td.From.
func PatchText(text string, td TextDiff) (string, error) {
	if text != td.From {
		return "", fmt.Errorf("%w: text %q does not match diff source %q", ErrPatch, text, td.From)
	}
	dmp := diffpatch.New()
	res, ok := dmp.PatchApply(dmp.PatchMake(text, td.Diffs), text)
	for _, applied := range ok {
		if !applied {
			return "", fmt.Errorf("%w: could not apply diff to %q", ErrPatch, text)
		}
	}
	return res, nil
}
