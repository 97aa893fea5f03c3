package lists

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-cruder/pkg/source"
)

// writePagination emits the page control strip: Previous/Next render as
// disabled placeholders at the boundaries, every page number is a link except
// the current page. Single-page collections get no strip at all.
func writePagination(b *strings.Builder, page source.Page) {
	if page.TotalPages <= 1 {
		return
	}

	b.WriteString("  <nav class=\"crud-pagination\" aria-label=\"Page navigation\">\n")
	b.WriteString("    <ul class=\"pagination\">\n")

	if page.HasPrev() {
		fmt.Fprintf(b, "      <li class=\"page-item\"><a class=\"page-link\" href=\"?page=%d\">Previous</a></li>\n",
			page.Number-1)
	} else {
		b.WriteString("      <li class=\"page-item disabled\"><span class=\"page-link\">Previous</span></li>\n")
	}

	for num := 1; num <= page.TotalPages; num++ {
		if num == page.Number {
			fmt.Fprintf(b, "      <li class=\"page-item active\"><span class=\"page-link\">%d</span></li>\n", num)
		} else {
			fmt.Fprintf(b, "      <li class=\"page-item\"><a class=\"page-link\" href=\"?page=%d\">%d</a></li>\n", num, num)
		}
	}

	if page.HasNext() {
		fmt.Fprintf(b, "      <li class=\"page-item\"><a class=\"page-link\" href=\"?page=%d\">Next</a></li>\n",
			page.Number+1)
	} else {
		b.WriteString("      <li class=\"page-item disabled\"><span class=\"page-link\">Next</span></li>\n")
	}

	b.WriteString("    </ul>\n")
	b.WriteString("  </nav>\n")
}
