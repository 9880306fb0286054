// ABOUTME: HTML metadata extraction for articles using goquery
// ABOUTME: Reads canonical links, Open Graph tags, author, publication time and language

package reader

import (
	"strings"

	timeutil "article-parser-api/pkg/utils/time"

	"github.com/PuerkitoBio/goquery"
)

const defaultArticleType = "article"

// articleMeta is the page-level metadata gathered alongside readability
type articleMeta struct {
	canonical   string
	ogURL       string
	title       string
	description string
	image       string
	author      string
	published   string
	language    string
	source      string
	kind        string
}

// readMetadata collects metadata from the head of doc. Missing values
// stay empty except kind, which defaults to "article".
func readMetadata(doc *goquery.Document) articleMeta {
	meta := articleMeta{
		canonical:   attr(doc, `link[rel="canonical"]`, "href"),
		ogURL:       metaContent(doc, `meta[property="og:url"]`),
		title:       firstNonEmpty(metaContent(doc, `meta[property="og:title"]`), strings.TrimSpace(doc.Find("title").First().Text())),
		description: firstNonEmpty(metaContent(doc, `meta[property="og:description"]`), metaContent(doc, `meta[name="description"]`)),
		image:       firstNonEmpty(metaContent(doc, `meta[property="og:image"]`), metaContent(doc, `meta[name="twitter:image"]`)),
		author:      firstNonEmpty(metaContent(doc, `meta[name="author"]`), metaContent(doc, `meta[property="article:author"]`)),
		source:      metaContent(doc, `meta[property="og:site_name"]`),
		kind:        firstNonEmpty(metaContent(doc, `meta[property="og:type"]`), defaultArticleType),
	}

	published := firstNonEmpty(
		metaContent(doc, `meta[property="article:published_time"]`),
		metaContent(doc, `meta[name="pubdate"]`),
		attr(doc, "time[datetime]", "datetime"),
	)
	if published != "" {
		meta.published = timeutil.Normalize(published)
	}

	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		meta.language = strings.TrimSpace(lang)
	}

	return meta
}

func metaContent(doc *goquery.Document, selector string) string {
	return attr(doc, selector, "content")
}

func attr(doc *goquery.Document, selector, name string) string {
	value, _ := doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// uniqueLinks returns the non-empty links in order, without duplicates
func uniqueLinks(links ...string) []string {
	seen := make(map[string]struct{}, len(links))
	out := make([]string, 0, len(links))
	for _, link := range links {
		if link == "" {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		out = append(out, link)
	}
	return out
}
