// Package output renders the board for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
)

// ColumnSeparator frames every column heading.
const ColumnSeparator = "------------"

// EmptyColumn is printed in a column without tasks.
const EmptyColumn = "No tasks yet"

// FormatBoard prints the columns one after another.
func FormatBoard(w io.Writer, cols []core.Column) {
	for i, col := range cols {
		if i > 0 {
			fmt.Fprintln(w)
		}
		FormatColumn(w, col)
	}
}

// FormatColumn prints a heading with the task count, then one line per
// task and an indented line for a description.
func FormatColumn(w io.Writer, col core.Column) {
	fmt.Fprintln(w, ColumnSeparator)
	fmt.Fprintf(w, "%s (%d)\n", col.Title, len(col.Tasks))
	fmt.Fprintln(w, ColumnSeparator)

	if len(col.Tasks) == 0 {
		fmt.Fprintf(w, "    %s\n", EmptyColumn)
		return
	}
	for _, t := range col.Tasks {
		FormatTask(w, t)
	}
}

// FormatTask prints "{ID}  {TITLE}" and the description below it.
func FormatTask(w io.Writer, t core.Task) {
	fmt.Fprintf(w, "    %s  %s\n", t.ID, normalizeText(t.Title))
	if desc := normalizeText(t.Description); desc != "" {
		fmt.Fprintf(w, "        %s\n", desc)
	}
}

// FormatDetail prints every field of one task.
func FormatDetail(w io.Writer, t core.Task) {
	fmt.Fprintf(w, "id:          %s\n", t.ID)
	fmt.Fprintf(w, "title:       %s\n", normalizeText(t.Title))
	fmt.Fprintf(w, "description: %s\n", normalizeText(t.Description))
	fmt.Fprintf(w, "status:      %s\n", t.Status.Label())
	fmt.Fprintf(w, "created:     %s\n", t.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "updated:     %s\n", t.UpdatedAt.UTC().Format("2006-01-02 15:04:05"))
}

// normalizeText folds newlines into spaces and trims.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
