// Package content turns local HTML and text files into taggable
// content items.
package content

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Item is one piece of marketing content ready for tagging.
type Item struct {
	Path  string
	Title string
	Text  string
}

// StripHTML extracts the visible text from an HTML document, skipping
// script and style elements. Text nodes are joined with single spaces
// so word boundaries survive adjacent block elements.
func StripHTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return extractText(doc), nil
}

// LoadItem reads a file into an Item. Files ending in .html or .htm are
// parsed and stripped; anything else is taken as plain text. The title
// comes from the <title> element, falling back to the file name.
func LoadItem(path string) (Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Item{}, fmt.Errorf("read %s: %w", path, err)
	}

	item := Item{Path: path}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		doc, err := html.Parse(bytes.NewReader(data))
		if err != nil {
			return Item{}, fmt.Errorf("parse %s: %w", path, err)
		}
		item.Title = findTitle(doc)
		item.Text = extractText(doc)
	default:
		item.Text = strings.TrimSpace(string(data))
	}

	if item.Title == "" {
		base := filepath.Base(path)
		item.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return item, nil
}

// extractText walks the parse tree collecting visible text.
func extractText(doc *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(parts, " ")
}

// findTitle returns the first <title> element's text.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			return strings.TrimSpace(n.FirstChild.Data)
		}
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}
