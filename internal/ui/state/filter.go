package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/gridmenu/internal/contextmenu"
)

// SetFilter updates the filter query and cursor position. A non-empty query
// puts the cursor on the best match; clearing it restores the cursor from
// before filtering.
func (l *List) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	wasFiltering := strings.TrimSpace(l.Filter) != ""
	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))

	switch {
	case trimmed != "":
		if !wasFiltering {
			l.LastCursor = l.Cursor
		}
		l.Cursor = 0
		l.applyFilter()
		if idx := BestMatchIndex(l.Items, trimmed); idx >= 0 {
			l.Cursor = idx
		}
	case wasFiltering:
		restore := l.LastCursor
		l.LastCursor = -1
		l.applyFilter()
		if restore >= 0 && restore < len(l.Items) {
			l.Cursor = restore
		}
	default:
		l.applyFilter()
	}
}

func (l *List) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *List) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilterText inserts text into the filter at the cursor position.
func (l *List) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (l *List) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	updated := append(runes[:pos-1:pos-1], runes[pos:]...)
	l.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word before the filter cursor along
// with any spaces after it.
func (l *List) DeleteFilterWordBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i:i], runes[pos:]...)
	l.SetFilter(string(updated), i)
	return true
}

// ClearFilter empties the filter. It reports false when it was already
// empty.
func (l *List) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

// MoveFilterCursor moves the filter cursor by delta runes.
func (l *List) MoveFilterCursor(delta int) bool {
	pos := l.FilterCursorPos()
	next := clamp(pos+delta, 0, len([]rune(l.Filter)))
	if next == pos {
		return false
	}
	l.FilterCursor = next
	return true
}

// FilterItems returns the items whose title fuzzily matches query, in their
// original order. Group names are matched by substring as a fallback.
func FilterItems(items []*contextmenu.Item, query string) []*contextmenu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]*contextmenu.Item(nil), items...)
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	matches := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, titles) {
		matches[rank.OriginalIndex] = struct{}{}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]*contextmenu.Item, 0, len(items))
	for i, item := range items {
		if _, ok := matches[i]; ok || strings.Contains(strings.ToLower(item.GroupName), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the item the cursor should land on for query: an
// exact title, then a title prefix, then a title substring, then the closest
// fuzzy match.
func BestMatchIndex(items []*contextmenu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Title, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Title), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Title), lower) {
			return i
		}
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
