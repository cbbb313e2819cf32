package parser

import (
	"regexp"
	"strings"
)

// lineCategory classifies a single codeblock line. The values are listed in
// match priority order: fence-close (when a fence is open) beats
// property-start, which beats fence-open, and text is the fallback that
// always matches.
type lineCategory int

const (
	categoryFenceClose lineCategory = iota
	categoryPropertyStart
	categoryFenceOpen
	categoryText
)

func (c lineCategory) String() string {
	switch c {
	case categoryFenceClose:
		return "fence-close"
	case categoryPropertyStart:
		return "property-start"
	case categoryFenceOpen:
		return "fence-open"
	default:
		return "text"
	}
}

var (
	propertyStartPattern = regexp.MustCompile(`^([a-z-]+)\s*:\s*(.*)$`)
	fenceOpenPattern     = regexp.MustCompile("^(`{3,})([A-Za-z0-9_+-]*)$")
)

// lineMatch carries a line's category plus the substrings captured for it:
// the key and first value segment for property-start lines, the backtick run
// for fence-open lines.
type lineMatch struct {
	category lineCategory
	key      string
	rest     string
	fence    string
}

// lineMatcher classifies lines one at a time. The fence terminator slot is
// the matcher's only state; it is scoped to a single parse invocation, so
// every Parse call builds a fresh matcher.
type lineMatcher struct {
	fenceTerminator string
}

// match expects the line to already be whitespace-trimmed.
func (m *lineMatcher) match(line string) lineMatch {
	if m.fenceTerminator != "" && line == m.fenceTerminator {
		return lineMatch{category: categoryFenceClose}
	}
	if groups := propertyStartPattern.FindStringSubmatch(line); groups != nil {
		return lineMatch{
			category: categoryPropertyStart,
			key:      groups[1],
			rest:     strings.TrimSpace(groups[2]),
		}
	}
	if groups := fenceOpenPattern.FindStringSubmatch(line); groups != nil {
		return lineMatch{category: categoryFenceOpen, fence: groups[1]}
	}
	return lineMatch{category: categoryText}
}

// openFence remembers the exact backtick run so only a line consisting of
// the same run closes the fence.
func (m *lineMatcher) openFence(run string) {
	m.fenceTerminator = run
}

func (m *lineMatcher) closeFence() {
	m.fenceTerminator = ""
}
