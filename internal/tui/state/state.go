package state

// Focus names the control that receives typed keys.
type Focus int

const (
	FocusMain Focus = iota
	FocusLocation
	FocusDistrict
	FocusList
)

func (f Focus) String() string {
	switch f {
	case FocusMain:
		return "search"
	case FocusLocation:
		return "location"
	case FocusDistrict:
		return "district"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

func (f Focus) IsInput() bool {
	return f == FocusMain || f == FocusLocation
}

// NextFocus cycles main -> location -> district -> list, skipping the
// location input when the layout has none. A negative step walks backwards.
func NextFocus(current Focus, step int, hasLocation bool) Focus {
	order := []Focus{FocusMain, FocusLocation, FocusDistrict, FocusList}
	if !hasLocation {
		order = []Focus{FocusMain, FocusDistrict, FocusList}
	}
	idx := 0
	for i, f := range order {
		if f == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(order)
	if idx < 0 {
		idx += len(order)
	}
	return order[idx]
}

// CycleOption moves through n options with wraparound. Option 0 is the
// "all" entry of a selector.
func CycleOption(current, delta, n int) int {
	if n <= 0 {
		return 0
	}
	next := (current + delta) % n
	if next < 0 {
		next += n
	}
	return next
}

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// ListHeight is the number of terminal rows left for chapter cards.
func ListHeight(height int, hasLocation, hasStatus bool) int {
	if height <= 0 {
		return 0
	}
	chrome := 8
	if hasLocation {
		chrome++
	}
	if hasStatus {
		chrome += 2
	}
	rows := height - chrome
	if rows < 3 {
		rows = 3
	}
	return rows
}

func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}
