package reference

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyToken is returned when Parse is called without a reference.
var ErrEmptyToken = errors.New("reference: empty verse token")

// Passage is a single scripture reference. An empty Verse means the whole chapter;
// otherwise it holds a single verse ("1") or a range ("1-31").
type Passage struct {
	Label   string
	Book    string
	Chapter string
	Verse   string
}

// book matches an optional ordinal ("1 ", "2") followed by one or more words,
// e.g. "Genesis", "1 Corinthians", "Song of Solomon", "Gen.".
const book = `((?:\d\s*)?[A-Za-z]+(?:\s+[A-Za-z]+)*)\.?`

// matchers are tried in order (range, single verse, chapter); the first one
// that matches wins.
var matchers = []*regexp.Regexp{
	regexp.MustCompile(`^` + book + `\s+(\d+)\s*:\s*(\d+\s*-\s*\d+)`),
	regexp.MustCompile(`^` + book + `\s+(\d+)\s*:\s*(\d+)`),
	regexp.MustCompile(`^` + book + `\s+(\d+)`),
}

var separatorRe = regexp.MustCompile(`\s*\|\s*`)

// Parse splits token on "|" and parses each piece as a reference. Pieces that
// match none of the supported shapes are dropped, so the result may be empty.
// Only an empty token is an error.
func Parse(token string) ([]Passage, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	var passages []Passage
	for _, piece := range separatorRe.Split(token, -1) {
		if p, ok := parseOne(piece); ok {
			passages = append(passages, p)
		}
	}
	return passages, nil
}

func parseOne(piece string) (Passage, bool) {
	piece = strings.TrimSpace(piece)
	if piece == "" {
		return Passage{}, false
	}
	for _, re := range matchers {
		sub := re.FindStringSubmatch(piece)
		if sub == nil {
			continue
		}
		p := Passage{
			Label:   piece,
			Book:    normalizeBook(sub[1]),
			Chapter: sub[2],
		}
		if len(sub) > 3 {
			p.Verse = strings.Join(strings.Fields(sub[3]), "")
		}
		return p, true
	}
	return Passage{}, false
}

// normalizeBook collapses internal whitespace so "1  Corinthians" and
// "1 Corinthians" name the same book. "2Samuel" is left as written.
func normalizeBook(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// String renders the passage as "Book Chapter[:Verse]".
func (p Passage) String() string {
	if p.Verse == "" {
		return p.Book + " " + p.Chapter
	}
	return p.Book + " " + p.Chapter + ":" + p.Verse
}
