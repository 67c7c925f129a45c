package calendar

// NotesPages is the number of notes pages that always follow the week pages
const NotesPages = 1

// SheetMultiple is the page count multiple required for duplex booklet printing
const SheetMultiple = 4

// ComputePadding returns how many blank pages must follow the week pages and
// the notes page so the total page count is a multiple of four.
func ComputePadding(weekCount int) int {
	if weekCount < 0 {
		weekCount = 0
	}
	rem := (weekCount + NotesPages) % SheetMultiple
	if rem == 0 {
		return 0
	}
	return SheetMultiple - rem
}

// PageCount returns the total number of printed pages for weekCount weeks
func PageCount(weekCount int) int {
	if weekCount < 0 {
		weekCount = 0
	}
	return weekCount + NotesPages + ComputePadding(weekCount)
}
