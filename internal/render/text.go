package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const textWidth = 48

// WriteText writes the document as plain text, one block per page
func WriteText(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, doc.Title)
	fmt.Fprintln(bw, strings.Repeat("=", textWidth))

	for _, p := range doc.Pages {
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "--- %d ---\n", p.Number)

		switch p.Kind {
		case PageWeek:
			writeWeekText(bw, p)
		case PageNotes:
			fmt.Fprintln(bw, p.Heading)
		}
	}

	return bw.Flush()
}

func writeWeekText(w io.Writer, p Page) {
	gap := textWidth - len([]rune(p.Heading)) - len(p.Caption)
	if gap < 1 {
		gap = 1
	}
	fmt.Fprintf(w, "%s%s%s\n", p.Heading, strings.Repeat(" ", gap), p.Caption)

	for _, row := range p.Rows {
		fmt.Fprintf(w, "%-12s %2d\n", row.Weekday, row.Day)
		for _, l := range row.Labels {
			fmt.Fprintf(w, "    %s\n", l)
		}
	}
	fmt.Fprintf(w, "(%s)\n", p.Workdays)
}

// WriteJSON writes the document as indented JSON
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
