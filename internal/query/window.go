package query

// PageItem is one entry of a pagination window: either a concrete page number
// or a gap marker standing in for two or more skipped pages.
type PageItem struct {
	Number int
	Gap    bool
}

// Window computes the bounded set of page buttons for the pager. With one page
// or fewer the controls are hidden entirely and the window is empty. Otherwise
// the first page, the last page, and the pages adjacent to current are always
// shown; a run of exactly one skipped page is shown as its number (a gap
// marker never stands for fewer than two pages), and any longer run collapses
// to a single marker.
func Window(current, total int) []PageItem {
	if total <= 1 {
		return nil
	}

	shown := func(p int) bool {
		return p == 1 || p == total || (p >= current-1 && p <= current+1)
	}

	var items []PageItem
	for p := 1; p <= total; {
		if shown(p) {
			items = append(items, PageItem{Number: p})
			p++
			continue
		}
		run := p
		for p <= total && !shown(p) {
			p++
		}
		if p-run == 1 {
			items = append(items, PageItem{Number: run})
		} else {
			items = append(items, PageItem{Gap: true})
		}
	}
	return items
}
