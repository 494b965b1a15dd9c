package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// tableSelector matches the listing table by a substring of its class attribute.
const tableSelector = `table[class*="table-useragents"]`

// Extract parses an HTML document and returns one Record per body row of the
// user-agent listing table. A document without the table yields an empty slice.
func Extract(document string) []Record {
	records, err := ExtractFrom(strings.NewReader(document))
	if err != nil {
		return []Record{}
	}
	return records
}

// ExtractFrom is Extract over a reader. It only fails when reading r fails;
// markup problems degrade to fewer records.
func ExtractFrom(r io.Reader) ([]Record, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse html: %w", err)
	}
	return extractDocument(goquery.NewDocumentFromNode(root)), nil
}

func extractDocument(doc *goquery.Document) []Record {
	records := make([]Record, 0)

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return records
	}

	// The HTML parser always wraps table rows in a tbody, so header rows
	// only show up here when the page puts th cells in the body.
	table.ChildrenFiltered("tbody").ChildrenFiltered("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() == 0 {
			return
		}

		// Short rows are kept; missing columns stay empty.
		records = append(records, Record{
			UserAgent:       cellText(cells, 0),
			SoftwareVersion: cellText(cells, 1),
			OperatingSystem: cellText(cells, 2),
			HardwareType:    cellText(cells, 3),
			Popularity:      cellText(cells, 4),
		})
	})

	return records
}

func cellText(cells *goquery.Selection, i int) string {
	if i >= cells.Length() {
		return ""
	}
	return strings.TrimSpace(cells.Eq(i).Text())
}
