package plan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/jorge-barreto/plancal/internal/reference"
	"go.uber.org/zap"
)

// ErrNoInput is returned by ParseFile when no path is given.
var ErrNoInput = errors.New("plan: input path must be supplied")

var (
	weekRe   = regexp.MustCompile(`(?i)^week\s+\d+\b`)
	memoryRe = regexp.MustCompile(`(?i)^memory\s+verse\s*:(.*)$`)
)

type mode int

const (
	modeReading mode = iota
	modeWeekStart
	modeMemory
)

// Options configures a Parser.
type Options struct {
	Year    int
	Dialect Dialect
	Links   Links
	Token   string // ESV access token; empty disables memory-verse requests
	Logger  *zap.SugaredLogger
}

// Parser turns plan lines into weeks or flat readings.
type Parser struct {
	opts Options
	log  *zap.SugaredLogger
}

// NewParser returns a Parser. A nil Logger discards log output.
func NewParser(opts Options) *Parser {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.Dialect == "" {
		opts.Dialect = DialectWeekly
	}
	return &Parser{opts: opts, log: log}
}

// ParseFile reads and parses the plan at path, one line at a time.
func (p *Parser) ParseFile(path string) (*Plan, error) {
	if path == "" {
		return nil, ErrNoInput
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening plan %s: %w", path, err)
	}
	defer f.Close()

	pl, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading plan %s: %w", path, err)
	}
	return pl, nil
}

// ParseLines parses an in-memory plan.
func (p *Parser) ParseLines(lines []string) (*Plan, error) {
	return p.Parse(strings.NewReader(strings.Join(lines, "\n")))
}

// Parse consumes r line by line. Malformed lines are logged and skipped; only a
// read error fails the parse.
func (p *Parser) Parse(r io.Reader) (*Plan, error) {
	switch p.opts.Dialect {
	case DialectWeekly:
		s := &weeklyState{p: p, mode: modeReading, cur: &Week{}}
		if err := scanLines(r, s.line); err != nil {
			return nil, err
		}
		s.flush()
		return &Plan{Dialect: DialectWeekly, Weeks: s.weeks}, nil
	case DialectFlat:
		pl := &Plan{Dialect: DialectFlat}
		err := scanLines(r, func(n int, line string) {
			pl.Readings = append(pl.Readings, p.flatLine(n, line)...)
		})
		if err != nil {
			return nil, err
		}
		return pl, nil
	default:
		return nil, fmt.Errorf("plan: unknown dialect %q", p.opts.Dialect)
	}
}

// scanLines calls fn with the 1-based number and trimmed text of every
// non-blank line.
func scanLines(r io.Reader, fn func(n int, line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if line == "" {
			continue
		}
		fn(n, line)
	}
	return scanner.Err()
}

// weeklyState is the line state machine for DialectWeekly.
type weeklyState struct {
	p         *Parser
	mode      mode
	cur       *Week
	hasMemory bool
	weeks     []Week
}

func (s *weeklyState) line(n int, line string) {
	if weekRe.MatchString(line) {
		s.flush()
		s.mode = modeWeekStart
		s.cur = &Week{Label: line}
		s.hasMemory = false
		return
	}
	if m := memoryRe.FindStringSubmatch(line); m != nil {
		s.mode = modeMemory
		if s.hasMemory {
			s.p.log.Warnw("extra memory verse ignored", "line", n, "week", s.cur.Label)
			return
		}
		s.hasMemory = true
		s.cur.MemoryVerse = s.p.memoryVerse(n, m[1])
		return
	}

	switch s.mode {
	case modeWeekStart:
		s.mode = modeReading
		fallthrough
	case modeReading:
		date, readings, ok := s.p.readingLine(n, line)
		if !ok {
			return
		}
		s.cur.setDates(date)
		s.cur.Readings = append(s.cur.Readings, readings...)
	case modeMemory:
		s.p.log.Debugw("line after memory verse ignored", "line", n, "text", line)
	}
}

// flush appends the in-progress week unless it is an empty implicit week.
func (s *weeklyState) flush() {
	if s.cur == nil || s.cur.Empty() {
		return
	}
	s.weeks = append(s.weeks, *s.cur)
	s.cur = nil
}

func (p *Parser) flatLine(n int, line string) []Reading {
	if weekRe.MatchString(line) || memoryRe.MatchString(line) {
		p.log.Warnw("heading ignored in flat plan", "line", n, "text", line)
		return nil
	}
	_, readings, _ := p.readingLine(n, line)
	return readings
}

// readingLine splits "<date>,<verses>" and returns the line's date along with one
// Reading per recognized passage. ok is false when the line has no verse part.
func (p *Parser) readingLine(n int, line string) (*time.Time, []Reading, bool) {
	dateToken, verseToken, found := strings.Cut(line, ",")
	if !found || strings.TrimSpace(verseToken) == "" {
		p.log.Warnw("reading line without verses skipped", "line", n, "text", line)
		return nil, nil, false
	}

	date := ParseDate(dateToken, p.opts.Year)
	if date == nil {
		p.log.Warnw("unparseable date", "line", n, "date", strings.TrimSpace(dateToken))
	}

	passages, err := reference.Parse(verseToken)
	if err != nil {
		p.log.Warnw("reading line skipped", "line", n, "error", err)
		return date, nil, true
	}
	if len(passages) == 0 {
		p.log.Warnw("no recognizable passage", "line", n, "verses", strings.TrimSpace(verseToken))
	}

	readings := make([]Reading, 0, len(passages))
	for _, ps := range passages {
		readings = append(readings, Reading{
			Label: ps.Label,
			Date:  date,
			URL:   p.opts.Links.Passage(ps.Book, ps.Chapter, ps.Verse),
		})
	}
	return date, readings, true
}

func (p *Parser) memoryVerse(n int, token string) MemoryVerse {
	if strings.TrimSpace(token) == "" {
		p.log.Warnw("empty memory verse", "line", n)
		return MemoryVerse{}
	}
	passages, err := reference.Parse(token)
	if err != nil || len(passages) == 0 {
		p.log.Warnw("unrecognized memory verse", "line", n, "verse", strings.TrimSpace(token))
		return MemoryVerse{}
	}

	ps := passages[0]
	return MemoryVerse{
		Label: ps.Label,
		URL:   p.opts.Links.Passage(ps.Book, ps.Chapter, ps.Verse),
		API:   p.opts.Links.ESV(p.opts.Token, ps.Book, ps.Chapter, ps.Verse),
	}
}
