package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/getcord/importfix/internal/model"
)

const (
	dirnameReplacement  = "path.dirname(url.fileURLToPath(import.meta.url))"
	filenameReplacement = "url.fileURLToPath(import.meta.url)"
)

// compiledRule is a RewriteRule with its pattern compiled once.
type compiledRule struct {
	rule m.RewriteRule
	re   *regexp.Regexp
}

// RuleSet applies an ordered table of rewrite rules to a line.
type RuleSet struct {
	rules []compiledRule
}

// NewRuleSet compiles rules in order. Any invalid pattern fails the whole set.
func NewRuleSet(rules ...m.RewriteRule) (*RuleSet, error) {
	compiled := make([]compiledRule, 0, len(rules))

	for _, rule := range rules {
		cr := compiledRule{rule: rule}

		switch rule.Kind {
		case m.RuleLiteral:
			if rule.Match == "" {
				return nil, fmt.Errorf("rule %q: empty literal match", rule.Name)
			}
		case m.RulePattern:
			re, err := regexp.Compile(rule.Match)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", rule.Name, err)
			}

			cr.re = re
		default:
			return nil, fmt.Errorf("rule %q: unsupported kind %q", rule.Name, rule.Kind)
		}

		compiled = append(compiled, cr)
	}

	return &RuleSet{rules: compiled}, nil
}

// MustRuleSet is like NewRuleSet but panics on error. Intended for fixed tables.
func MustRuleSet(rules ...m.RewriteRule) *RuleSet {
	rs, err := NewRuleSet(rules...)
	if err != nil {
		panic(err)
	}

	return rs
}

// Apply runs every rule once, in table order, each against the output of the
// previous one.
func (rs *RuleSet) Apply(line string) string {
	for _, cr := range rs.rules {
		line = applyRule(cr, line)
	}

	return line
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

const maxPatternPasses = 8

func applyRule(cr compiledRule, line string) string {
	switch cr.rule.Kind {
	case m.RuleLiteral:
		return strings.ReplaceAll(line, cr.rule.Match, cr.rule.Replacement)
	case m.RulePattern:
		// Adjacent matches can share a delimiter, e.g. Ajv(Ajv(x)), so repeat
		// until the line is stable.
		for pass := 0; pass < maxPatternPasses; pass++ {
			next := cr.re.ReplaceAllString(line, cr.rule.Replacement)
			if next == line {
				break
			}

			line = next
		}

		return line
	default:
		return line
	}
}

// DefaultRules builds the legacy-to-ESM conversion table. The order matters:
// the require form becomes a default import before helper calls are rewritten.
func DefaultRules(cfg m.RuleConfig) []m.RewriteRule {
	var rules []m.RewriteRule

	rules = append(rules, m.Pattern(
		"import-equals-require",
		`import\s+([\w$]+)\s*=\s*require\(\s*('[^']+'|"[^"]+")\s*\)`,
		`import $1 from $2`,
	))

	if len(cfg.HelperFunctions) > 0 {
		rules = append(rules, m.Pattern(
			"helper-default-call",
			`(^|[^\w$.])(`+quoteAll(cfg.HelperFunctions)+`)\(`,
			`${1}${2}.default(`,
		))
	}

	for _, call := range cfg.DefaultExportCalls {
		rules = append(rules, m.Literal("default-export-call "+call.From, call.From, call.To))
	}

	rules = append(rules,
		m.Pattern("dirname", `\b__dirname\b`, dirnameReplacement),
		m.Pattern("filename", `\b__filename\b`, filenameReplacement),
	)

	if len(cfg.NamespaceModules) > 0 {
		mods := quoteAll(cfg.NamespaceModules)
		rules = append(rules, m.Pattern(
			"namespace-to-default-import",
			`import\s+\*\s+as\s+([\w$]+)\s+from\s+('(?:`+mods+`)'|"(?:`+mods+`)")`,
			`import $1 from $2`,
		))
	}

	return rules
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}

	return strings.Join(quoted, "|")
}
