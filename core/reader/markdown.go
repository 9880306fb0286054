// ABOUTME: Markdown rendering of extracted article content
// ABOUTME: Converts readable HTML to markdown and prefixes a title and metadata line

package reader

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

var (
	excessNewlines   = regexp.MustCompile(`\n{3,}`)
	trailingSpaces   = regexp.MustCompile(`[ \t]+\n`)
	headerBefore     = regexp.MustCompile(`\n(#{1,6} )`)
	headerAfter      = regexp.MustCompile(`(#{1,6} [^\n]+)\n([^\n])`)
	lineEndingFixups = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// renderMarkdown converts article HTML into a markdown document headed by
// the article's title, author, publication time and source.
func renderMarkdown(article articleMeta, contentHTML string) (string, error) {
	converter := md.NewConverter("", true, nil)
	body, err := converter.ConvertString(contentHTML)
	if err != nil {
		return "", err
	}

	var out strings.Builder

	if article.title != "" {
		out.WriteString("# ")
		out.WriteString(article.title)
		out.WriteString("\n\n")
	}

	var items []string
	if article.author != "" {
		items = append(items, fmt.Sprintf("**Author:** %s", article.author))
	}
	if article.published != "" {
		if parsed, err := time.Parse(time.RFC3339, article.published); err == nil {
			items = append(items, fmt.Sprintf("**Published:** %s", parsed.Format("January 2, 2006 at 3:04 PM")))
		} else {
			items = append(items, fmt.Sprintf("**Published:** %s", article.published))
		}
	}
	if article.source != "" {
		items = append(items, fmt.Sprintf("**Source:** %s", article.source))
	}

	if len(items) > 0 {
		out.WriteString(strings.Join(items, " | "))
		out.WriteString("\n\n---\n\n")
	}

	out.WriteString(cleanMarkdown(body))

	return out.String(), nil
}

// cleanMarkdown normalizes line endings, collapses blank lines and spaces
// headers apart from surrounding paragraphs
func cleanMarkdown(markdown string) string {
	markdown = lineEndingFixups.Replace(markdown)
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	markdown = trailingSpaces.ReplaceAllString(markdown, "\n")
	markdown = headerBefore.ReplaceAllString(markdown, "\n\n$1")
	markdown = headerAfter.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
