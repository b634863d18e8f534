package numbering

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lljaworski/invoicing/internal/entity"
)

const (
	DefaultTemplate = "FV/{year}/{month}/{number}"

	DefaultNumberWidth = 4
	MaxNumberWidth     = 18

	PlaceholderYear   = "{year}"
	PlaceholderMonth  = "{month}"
	PlaceholderNumber = "{number}"
)

var numberPlaceholderRe = regexp.MustCompile(`\{number(:\d+)?\}`)

// TemplateError lists the placeholders a template lacks.
type TemplateError struct {
	Template string
	Missing  []string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%s: %q is missing %s", entity.ErrInvalidTemplate, e.Template, strings.Join(e.Missing, ", "))
}

func (e *TemplateError) Unwrap() error {
	return entity.ErrInvalidTemplate
}

// ValidateTemplate checks that all three placeholders are present. {number:N} counts as
// the number placeholder.
func ValidateTemplate(s string) error {
	var missing []string

	if !strings.Contains(s, PlaceholderYear) {
		missing = append(missing, PlaceholderYear)
	}

	if !strings.Contains(s, PlaceholderMonth) {
		missing = append(missing, PlaceholderMonth)
	}

	if !numberPlaceholderRe.MatchString(s) {
		missing = append(missing, PlaceholderNumber)
	}

	if len(missing) > 0 {
		return &TemplateError{Template: s, Missing: missing}
	}

	return nil
}

type segmentKind uint8

const (
	segmentLiteral segmentKind = iota
	segmentYear
	segmentMonth
	segmentNumber
)

type segment struct {
	kind  segmentKind
	text  string
	width int
}

// Template is a parsed number format. It is immutable and safe for concurrent use.
type Template struct {
	raw      string
	segments []segment
	re       *regexp.Regexp
	// capture group index of the first occurrence of each placeholder
	yearGroup, monthGroup, numberGroup int
}

type Parsed struct {
	Year     int
	Month    int
	Sequence int
}

func ParseTemplate(s string) (Template, error) {
	err := ValidateTemplate(s)
	if err != nil {
		return Template{}, err
	}

	t := Template{raw: s}

	rest := s
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			t.appendLiteral(rest)
			break
		}

		if open > 0 {
			t.appendLiteral(rest[:open])
			rest = rest[open:]
		}

		end := strings.IndexByte(rest, '}')

		// "{a{year}": the first brace is text
		if next := strings.IndexByte(rest[1:], '{'); next >= 0 && (end < 0 || next+1 < end) {
			t.appendLiteral(rest[:next+1])
			rest = rest[next+1:]

			continue
		}

		if end < 0 {
			t.appendLiteral(rest)
			break
		}

		token := rest[:end+1]
		rest = rest[end+1:]

		seg, ok, err := placeholder(token)
		if err != nil {
			return Template{}, err
		}

		if !ok {
			t.appendLiteral(token)
			continue
		}

		t.segments = append(t.segments, seg)
	}

	if n := t.MaxLen() + FallbackSuffixLen; n > entity.MaxNumberLen {
		return Template{}, fmt.Errorf("%w: %q formats numbers of up to %d characters with the retry suffix, limit is %d",
			entity.ErrInvalidTemplate, s, n, entity.MaxNumberLen)
	}

	t.compile()

	return t, nil
}

func placeholder(token string) (segment, bool, error) {
	switch token {
	case PlaceholderYear:
		return segment{kind: segmentYear, width: 4}, true, nil
	case PlaceholderMonth:
		return segment{kind: segmentMonth, width: 2}, true, nil
	case PlaceholderNumber:
		return segment{kind: segmentNumber, width: DefaultNumberWidth}, true, nil
	}

	if numberPlaceholderRe.FindString(token) != token {
		return segment{}, false, nil
	}

	width, err := strconv.Atoi(token[len("{number:") : len(token)-1])
	if err != nil || width < 1 || width > MaxNumberWidth {
		return segment{}, false, fmt.Errorf("%w: number width in %s must be between 1 and %d",
			entity.ErrInvalidTemplate, token, MaxNumberWidth)
	}

	return segment{kind: segmentNumber, width: width}, true, nil
}

func (t *Template) appendLiteral(s string) {
	if n := len(t.segments); n > 0 && t.segments[n-1].kind == segmentLiteral {
		t.segments[n-1].text += s
		return
	}

	t.segments = append(t.segments, segment{kind: segmentLiteral, text: s})
}

func (t *Template) compile() {
	var b strings.Builder

	b.WriteByte('^')

	group := 0

	for _, seg := range t.segments {
		if seg.kind == segmentLiteral {
			b.WriteString(regexp.QuoteMeta(seg.text))
			continue
		}

		group++

		switch seg.kind {
		case segmentYear:
			if t.yearGroup == 0 {
				t.yearGroup = group
			}
		case segmentMonth:
			if t.monthGroup == 0 {
				t.monthGroup = group
			}
		case segmentNumber:
			if t.numberGroup == 0 {
				t.numberGroup = group
			}
		}

		fmt.Fprintf(&b, `(\d{%d})`, seg.width)
	}

	b.WriteByte('$')

	t.re = regexp.MustCompile(b.String())
}

func (t Template) String() string {
	return t.raw
}

// NumberWidth is the zero padding of the first number placeholder.
func (t Template) NumberWidth() int {
	for _, seg := range t.segments {
		if seg.kind == segmentNumber {
			return seg.width
		}
	}

	return DefaultNumberWidth
}

// MaxLen is the length in characters of a formatted number whose sequence fits the padding.
func (t Template) MaxLen() int {
	n := 0

	for _, seg := range t.segments {
		switch seg.kind {
		case segmentLiteral:
			n += utf8.RuneCountInString(seg.text)
		default:
			n += seg.width
		}
	}

	return n
}

// Format substitutes every placeholder. A sequence wider than its padding is written in full.
func (t Template) Format(year, month, sequence int) string {
	var b strings.Builder

	for _, seg := range t.segments {
		switch seg.kind {
		case segmentLiteral:
			b.WriteString(seg.text)
		case segmentYear:
			fmt.Fprintf(&b, "%04d", year)
		case segmentMonth:
			fmt.Fprintf(&b, "%02d", month)
		case segmentNumber:
			fmt.Fprintf(&b, "%0*d", seg.width, sequence)
		}
	}

	return b.String()
}

// Regexp matches numbers of this template by digit count only: month 00 or 13 matches.
func (t Template) Regexp() *regexp.Regexp {
	return t.re
}

func (t Template) Match(number string) bool {
	return t.re.MatchString(number)
}

func (t Template) Parse(number string) (Parsed, bool) {
	m := t.re.FindStringSubmatch(number)
	if m == nil {
		return Parsed{}, false
	}

	// groups are digit-only and at most MaxNumberWidth long
	year, _ := strconv.Atoi(m[t.yearGroup])
	month, _ := strconv.Atoi(m[t.monthGroup])
	seq, _ := strconv.Atoi(m[t.numberGroup])

	return Parsed{Year: year, Month: month, Sequence: seq}, true
}
