package render

import (
	"fmt"

	"github.com/username/weekcal/internal/calendar"
)

// Sheet is one folded sheet of a saddle-stitched booklet. Each side holds
// two page numbers, left then right.
type Sheet struct {
	Front [2]int `json:"front"`
	Back  [2]int `json:"back"`
}

// BookletOrder returns the printing order for pageCount pages folded and
// stapled in the middle. pageCount must be a positive multiple of four.
func BookletOrder(pageCount int) ([]Sheet, error) {
	if pageCount <= 0 || pageCount%calendar.SheetMultiple != 0 {
		return nil, fmt.Errorf("page count %d is not a positive multiple of %d", pageCount, calendar.SheetMultiple)
	}

	sheets := make([]Sheet, 0, pageCount/calendar.SheetMultiple)
	for i := 0; i < pageCount/calendar.SheetMultiple; i++ {
		sheets = append(sheets, Sheet{
			Front: [2]int{pageCount - 2*i, 2*i + 1},
			Back:  [2]int{2*i + 2, pageCount - 2*i - 1},
		})
	}
	return sheets, nil
}

// Imposed returns the pages of doc in printing order, front side first
func Imposed(doc *Document) ([]Page, error) {
	sheets, err := BookletOrder(len(doc.Pages))
	if err != nil {
		return nil, err
	}

	out := make([]Page, 0, len(doc.Pages))
	for _, s := range sheets {
		for _, n := range [...]int{s.Front[0], s.Front[1], s.Back[0], s.Back[1]} {
			out = append(out, doc.Pages[n-1])
		}
	}
	return out, nil
}
