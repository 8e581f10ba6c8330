package model

// RuleKind tags the variant of a RewriteRule.
type RuleKind string

const (
	// RuleLiteral replaces every occurrence of Match with Replacement verbatim.
	RuleLiteral RuleKind = "literal"
	// RulePattern treats Match as a regular expression and Replacement as an
	// expansion template ($1, ${name}).
	RulePattern RuleKind = "pattern"
)

// RewriteRule is one entry of the ordered legacy-syntax conversion table.
type RewriteRule struct {
	Name        string
	Kind        RuleKind
	Match       string
	Replacement string
}

// Literal builds a RuleLiteral rule.
func Literal(name, match, replacement string) RewriteRule {
	return RewriteRule{Name: name, Kind: RuleLiteral, Match: match, Replacement: replacement}
}

// Pattern builds a RulePattern rule.
func Pattern(name, expr, template string) RewriteRule {
	return RewriteRule{Name: name, Kind: RulePattern, Match: expr, Replacement: template}
}

// CallRewrite is an exact call-site substitution routed through a default export.
type CallRewrite struct {
	From string
	To   string
}

// RuleConfig holds the closed lists the default rule table is built from.
type RuleConfig struct {
	// HelperFunctions are invoked through their default export: Name( -> Name.default(
	HelperFunctions []string
	// DefaultExportCalls are literal call-site substitutions.
	DefaultExportCalls []CallRewrite
	// NamespaceModules are modules whose namespace import becomes a default import.
	NamespaceModules []string
}
