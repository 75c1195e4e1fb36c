package rle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-rle/model"
	"github.com/sheikhrachel/go-life-rle/rules"
)

const (
	commentPrefix = "#"
	ruleField     = "rule ="
)

// Document is a parsed RLE file
type Document struct {
	Comments []string // verbatim, including the leading '#'
	Header   string
	Pattern  string // pattern lines concatenated
	Rule     string
	Width    int // as declared by the header, 0 if unreadable
	Height   int
}

// ParseDocument splits an RLE file into comments, header and pattern block.
// Blank lines are ignored and surrounding whitespace is trimmed from every line.
func ParseDocument(content string) (Document, error) {
	var doc Document

	lines := make([]string, 0, strings.Count(content, "\n")+1)
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return doc, errors.Wrap(ErrEmptyInput, "[ParseDocument]")
	}

	var (
		pattern   strings.Builder
		hasHeader bool
	)
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, commentPrefix):
			doc.Comments = append(doc.Comments, line)
		case !hasHeader && isHeader(line):
			doc.Header = line
			hasHeader = true
		default:
			pattern.WriteString(line)
		}
	}
	if !hasHeader {
		return doc, errors.Wrap(ErrMissingHeader, "[ParseDocument]")
	}
	doc.Pattern = pattern.String()

	doc.Rule = extractRule(doc.Header)
	if doc.Rule != rules.Conway {
		return doc, errors.Wrapf(ErrUnsupportedRule, "[ParseDocument] header declares rule %q", doc.Rule)
	}
	doc.Width, doc.Height = extractSize(doc.Header)

	return doc, nil
}

func isHeader(line string) bool {
	return strings.Contains(line, "x") && strings.Contains(line, "y")
}

// extractRule returns the trimmed text after "rule =", or "" when the field is missing
func extractRule(header string) string {
	_, rule, found := strings.Cut(header, ruleField)
	if !found {
		return ""
	}
	return strings.TrimSpace(rule)
}

// extractSize reads the declared x and y fields, leaving 0 for anything unparsable
func extractSize(header string) (width, height int) {
	for _, field := range strings.Split(header, ",") {
		key, value, found := strings.Cut(field, "=")
		if !found {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(key) {
		case "x":
			width = n
		case "y":
			height = n
		}
	}
	return width, height
}

// World decodes the document's pattern block
func (d Document) World() model.World {
	return DecodePattern(d.Pattern)
}

// String reassembles the document with its comments, header and pattern
func (d Document) String() string {
	lines := make([]string, 0, len(d.Comments)+2)
	lines = append(lines, d.Comments...)
	lines = append(lines, d.Header, d.Pattern)
	return strings.Join(lines, "\n")
}

// FormatOptions controls FormatWorldWith
type FormatOptions struct {
	Comments []string // written before the header
	Lossless bool
}

// FormatHeader renders the header line for a pattern of the given size
func FormatHeader(width, height int) string {
	return fmt.Sprintf("x = %d, y = %d, rule = %s", width, height, rules.Conway)
}

// FormatWorld renders w as a header line followed by its pattern block
func FormatWorld(w model.World) string {
	return FormatWorldWith(w, FormatOptions{})
}

// FormatWorldWith renders w, optionally preceded by comment lines
func FormatWorldWith(w model.World, opts FormatOptions) string {
	p := EncodePattern(w)
	if opts.Lossless {
		p = EncodePatternLossless(w)
	}

	lines := make([]string, 0, len(opts.Comments)+2)
	lines = append(lines, opts.Comments...)
	lines = append(lines, FormatHeader(p.Width, p.Height), p.Text)
	return strings.Join(lines, "\n")
}
