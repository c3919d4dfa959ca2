// Package extract turns uploaded files into the ordered comment sequence
// the analysis engine consumes: one trimmed, non-empty line per comment,
// capped so a full recompute stays cheap.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"

	"github.com/civicsignal/remark/pkg/remark/internalerr"
)

// DefaultMaxComments caps the number of comments per upload.
const DefaultMaxComments = 100

// Lines splits plain text into comments: one per line, trimmed, blank
// lines removed, capped at max (DefaultMaxComments when max <= 0).
// Returns internalerr.ErrNoComments when nothing usable remains.
func Lines(text string, max int) ([]string, error) {
	if max <= 0 {
		max = DefaultMaxComments
	}

	// Normalize CRLF first so lone classic-Mac \r endings also become
	// line breaks instead of collapsing the file into one comment.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var comments []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		comments = append(comments, line)
		if len(comments) == max {
			break
		}
	}

	if len(comments) == 0 {
		return nil, internalerr.ErrNoComments
	}
	return comments, nil
}

// FromHTML extracts visible text from an HTML document, one comment per
// block-level element.
func FromHTML(data []byte, max int) ([]string, error) {
	root, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var (
		lines   []string
		current strings.Builder
	)
	flush := func() {
		// Collapse source formatting whitespace so one block stays one
		// comment.
		text := strings.Join(strings.Fields(current.String()), " ")
		if text != "" {
			lines = append(lines, text)
		}
		current.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "head":
				return
			}
		case html.TextNode:
			current.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlock(n.Data) {
			flush()
		}
	}
	walk(root)
	flush()

	return Lines(strings.Join(lines, "\n"), max)
}

// FromMarkdown flattens markdown to HTML first, then extracts text, so
// list items and paragraphs become individual comments.
func FromMarkdown(data []byte, max int) ([]string, error) {
	rendered := blackfriday.Run(data, blackfriday.WithNoExtensions())
	return FromHTML(rendered, max)
}

// FromFile dispatches on the file extension: .md/.markdown and
// .html/.htm get structured extraction, everything else is treated as
// plain text.
func FromFile(path string, max int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FromMarkdown(data, max)
	case ".html", ".htm":
		return FromHTML(data, max)
	default:
		return Lines(string(data), max)
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "li", "div", "br", "tr",
		"h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
		return true
	}
	return false
}
