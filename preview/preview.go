// Package preview computes the original and processed name of every
// renameable item for display and for the eventual commit.
//
// Import path: github.com/erraggy/namekit/preview
//
// [Build] is pure and synchronous: every call regenerates the whole preview
// from the items and the [Config], so calling it once or many times with the
// same inputs gives the same entries.
//
// # Pipeline
//
// For each item, in source order:
//
//  1. Items whose name does not match Config.Query are excluded.
//  2. The item's naming target is resolved from its category and subtype.
//     Items whose category is unknown are excluded (and logged at debug level).
//  3. In format mode, when the target is in FormatTargets, the name is
//     converted to the target's case format.
//  4. In replace mode, when the target is in ReplaceTargets, the find/replace
//     rule is applied.
//  5. Otherwise the processed name equals the original.
package preview

import (
	"log/slog"
	"slices"

	"github.com/erraggy/namekit/casing"
	"github.com/erraggy/namekit/element"
)

// Entry pairs an item with its processed name.
type Entry struct {
	Item      element.Item   `yaml:"item" json:"item"`
	Target    element.Target `yaml:"target" json:"target"`
	Original  string         `yaml:"original" json:"original"`
	Processed string         `yaml:"processed" json:"processed"`
}

// Changed reports whether the processed name differs from the original.
func (e Entry) Changed() bool {
	return e.Original != e.Processed
}

// Change is a single rename handed to a commit sink.
type Change struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Build returns the preview entries for items under cfg.
func Build(items []element.Item, cfg Config) []Entry {
	keep := cfg.Filter.Matcher(cfg.Query)
	replace := cfg.Replace.Replacer(cfg.ReplaceFrom, cfg.ReplaceTo)

	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		if !keep(it.Name) {
			continue
		}

		target, ok := it.Target()
		if !ok {
			slog.Debug("preview: dropping item with unknown category", "id", it.ID, "category", int(it.Category))
			continue
		}

		processed := it.Name
		switch cfg.Mode {
		case ModeFormat:
			if cfg.FormatTargets.Has(target) {
				processed = casing.Convert(it.Name, cfg.FormatFor(target))
			}
		case ModeReplace:
			if cfg.ReplaceTargets.Has(target) {
				processed = replace(it.Name)
			}
		}

		entries = append(entries, Entry{
			Item:      it,
			Target:    target,
			Original:  it.Name,
			Processed: processed,
		})
	}
	return entries
}

// Changes returns a change for every entry whose name changed, in order.
func Changes(entries []Entry) []Change {
	var changes []Change
	for _, e := range entries {
		if e.Changed() {
			changes = append(changes, Change{ID: e.Item.ID, Name: e.Processed})
		}
	}
	return changes
}

// ChangeAt returns the change for entries[i]. The boolean is false when i is
// out of range or the entry is unchanged.
func ChangeAt(entries []Entry, i int) (Change, bool) {
	if i < 0 || i >= len(entries) || !entries[i].Changed() {
		return Change{}, false
	}
	return Change{ID: entries[i].Item.ID, Name: entries[i].Processed}, true
}

// Select returns the indices of the entries with the given item ids, in id
// order. With no ids every entry is selected. Ids absent from entries are
// returned as missing. Repeated ids are reported once.
func Select(entries []Entry, ids []string) (indices []int, missing []string) {
	if len(ids) == 0 {
		indices = make([]int, len(entries))
		for i := range entries {
			indices[i] = i
		}
		return indices, nil
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		i := slices.IndexFunc(entries, func(e Entry) bool { return e.Item.ID == id })
		if i < 0 {
			missing = append(missing, id)
			continue
		}
		indices = append(indices, i)
	}
	return indices, missing
}

// Summary counts the entries of a preview.
type Summary struct {
	Total   int `yaml:"total" json:"total"`
	Changed int `yaml:"changed" json:"changed"`
}

// Summarize counts total and changed entries.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		if e.Changed() {
			s.Changed++
		}
	}
	return s
}
