package dropi

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageTitle extracts the <title> (or first <h1>) of an HTML error page.
// Non-HTML bodies yield "".
func PageTitle(body []byte) string {
	if !bytes.Contains(bytes.ToLower(body), []byte("<html")) {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
