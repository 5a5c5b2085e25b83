package plan

import (
	"net/url"
	"strings"
)

const (
	DefaultPassageURL  = "https://www.biblegateway.com/passage/"
	DefaultTranslation = "ESV"
	DefaultESVURL      = "https://api.esv.org/v3/passage/text/"
)

// Links builds the external URLs attached to readings and memory verses.
// Zero fields fall back to the Default* constants.
type Links struct {
	PassageURL  string
	Translation string
	ESVURL      string
}

// ESVRequest is everything needed to fetch a memory verse's text.
type ESVRequest struct {
	URL    string
	Header string // "Authorization: Token <token>"
}

// HeaderKV splits Header into name and value.
func (r *ESVRequest) HeaderKV() (string, string) {
	name, value, _ := strings.Cut(r.Header, ":")
	return strings.TrimSpace(name), strings.TrimSpace(value)
}

// Passage returns a deep link for the passage, or "" when book or chapter is
// missing. Spaces are encoded as %20.
func (l Links) Passage(book, chapter, verse string) string {
	if book == "" || chapter == "" {
		return ""
	}
	query := book + " " + chapter
	if verse != "" {
		query += ":" + verse
	}
	escaped := strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
	return orDefault(l.PassageURL, DefaultPassageURL) + "?search=" + escaped +
		"&version=" + url.QueryEscape(orDefault(l.Translation, DefaultTranslation))
}

// ESV returns the request for fetching the passage text, or nil when token, book
// or chapter is missing. A missing verse defaults to verse 1.
func (l Links) ESV(token, book, chapter, verse string) *ESVRequest {
	if token == "" || book == "" || chapter == "" {
		return nil
	}
	if verse == "" {
		verse = "1"
	}
	query := strings.ReplaceAll(book, " ", "+") + "+" + chapter + ":" + verse
	return &ESVRequest{
		URL:    orDefault(l.ESVURL, DefaultESVURL) + "?q=" + query,
		Header: "Authorization: Token " + token,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
