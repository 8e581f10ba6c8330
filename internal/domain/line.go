package domain

import (
	"regexp"
	"strings"

	m "github.com/getcord/importfix/internal/model"
)

// Reporter receives diagnostics produced while processing lines.
type Reporter interface {
	Unresolved(file m.Path, spec m.Specifier)
}

// ImportLocator finds the import-path literal of a `from '<path>'` construct
// whose path is relative or starts with a configured namespace.
type ImportLocator struct {
	re *regexp.Regexp
}

// NewImportLocator builds a locator for the given namespaces.
func NewImportLocator(namespaces []m.Namespace) *ImportLocator {
	prefixes := []string{`\./`, `\.\./`}
	for _, ns := range namespaces {
		prefixes = append(prefixes, regexp.QuoteMeta(ns.Prefix))
	}

	start := `(?:` + strings.Join(prefixes, "|") + `)`
	expr := `\bfrom\s*(?:'(` + start + `[^']*)'|"(` + start + `[^"]*)")`

	return &ImportLocator{re: regexp.MustCompile(expr)}
}

// Locate returns the byte offsets of the first import path on line.
func (l *ImportLocator) Locate(line string) (start, end int, ok bool) {
	loc := l.re.FindStringSubmatchIndex(line)
	if loc == nil {
		return 0, 0, false
	}

	for group := 1; group <= 2; group++ {
		if s, e := loc[2*group], loc[2*group+1]; s >= 0 {
			return s, e, true
		}
	}

	return 0, 0, false
}

// LineProcessor rewrites one line of source: rule table first, then the
// import path on the resulting text.
type LineProcessor struct {
	rules    *RuleSet
	resolver *PathResolver
	locator  *ImportLocator
}

// NewLineProcessor wires the line pipeline.
func NewLineProcessor(rules *RuleSet, resolver *PathResolver, locator *ImportLocator) *LineProcessor {
	return &LineProcessor{
		rules:    rules,
		resolver: resolver,
		locator:  locator,
	}
}

// Process returns the rewritten line and true, or the original line and false
// when nothing changed. Unresolved specifiers are sent to reporter, which may be nil.
func (lp *LineProcessor) Process(file m.Path, original string, mode m.Mode, reporter Reporter) (string, bool) {
	if reporter == nil {
		reporter = discardReporter{}
	}

	line := original

	if !mode.Compatible && lp.rules != nil {
		line = lp.rules.Apply(line)
	}

	if start, end, ok := lp.locator.Locate(line); ok {
		spec := m.Specifier(line[start:end])

		res := lp.resolver.Resolve(file, spec)
		switch res.Kind {
		case m.Resolved:
			if res.Specifier != spec {
				line = line[:start] + string(res.Specifier) + line[end:]
			}
		case m.Unresolved:
			reporter.Unresolved(file, spec)
		case m.Unchanged:
		}
	}

	if line == original {
		return original, false
	}

	return line, true
}

type discardReporter struct{}

func (discardReporter) Unresolved(m.Path, m.Specifier) {}
