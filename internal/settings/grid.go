package settings

// Rows packs items into rows of two cells. A span-2 item always gets its own
// row; a span-1 item left alone before it keeps an empty second cell.
func Rows(items []Item) [][]Item {
	var rows [][]Item
	var pending Item
	for _, it := range items {
		if it.Describe().Span == 2 {
			if pending != nil {
				rows = append(rows, []Item{pending})
				pending = nil
			}
			rows = append(rows, []Item{it})
			continue
		}
		if pending == nil {
			pending = it
			continue
		}
		rows = append(rows, []Item{pending, it})
		pending = nil
	}
	if pending != nil {
		rows = append(rows, []Item{pending})
	}
	return rows
}
