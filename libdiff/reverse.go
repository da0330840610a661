package libdiff

import diffpatch "github.com/sergi/go-diff/diffmatchpatch"

// Reverse returns the changes turning the target of changes back into its
// source.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Kind {
		case Added:
			r.Kind = Removed
		case Removed:
			r.Kind = Added
		default:
			r.Kind = c.Kind
		}
		for _, td := range c.Texts {
			r.Texts = append(r.Texts, reverseText(td))
		}
		res[i] = r
	}
	return res
}

func reverseText(td TextDiff) TextDiff {
	res := TextDiff{Index: td.Index, From: td.To, To: td.From}
	res.Diffs = make([]diffpatch.Diff, len(td.Diffs))
	for i, d := range td.Diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			d.Type = diffpatch.DiffDelete
		case diffpatch.DiffDelete:
			d.Type = diffpatch.DiffInsert
		}
		res.Diffs[i] = d
	}
	return res
}
