// Package notes renders release documents to markdown and markdown to HTML.
package notes

import (
	"bytes"
	"fmt"
	"strings"

	"release-notes-webhook/internal/entities"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	workItemsHeading    = "# Closed ADO Tickets: "
	pullRequestsHeading = "# Changes Merged: "
)

// Render formats the document. Output depends only on doc.
func Render(doc entities.ReleaseDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n %s\n\n", doc.Metadata.Name, doc.Metadata.Description)

	b.WriteString(workItemsHeading)
	for i, wi := range doc.WorkItems {
		writeItem(&b, i+1, wi.ID, wi.Link, wi.Title)
	}

	b.WriteString("\n\n")
	b.WriteString(pullRequestsHeading)
	for i, pr := range doc.PullRequests {
		writeItem(&b, i+1, pr.ID, pr.Link, pr.Title)
	}

	return b.String()
}

func writeItem(b *strings.Builder, n, id int, link, title string) {
	fmt.Fprintf(b, "\n %d. [%d](%s) - %s", n, id, link, title)
}

var renderer = goldmark.New(
	goldmark.WithExtensions(extension.Linkify),
)

// ToHTML converts a rendered markdown document for display.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
