package model

// Config is the immutable configuration the resolver, rule table and walker
// are built from. Callers derive variants with the With* helpers instead of
// mutating a shared value.
type Config struct {
	// Root is the repository root that namespace directories and walk roots are relative to.
	Root Path
	// Namespaces is the ordered list of roots eligible for resolution.
	Namespaces []Namespace
	// Extensions are candidate suffixes tried, in order, on a missing path.
	Extensions []string
	// SourceExtensions select which walked files are processed.
	SourceExtensions []string
	// WalkRoots are visited in order when no explicit file list is given.
	WalkRoots []Path
	// SkipDirs are directory names pruned while walking.
	SkipDirs []string
	Rules    RuleConfig
}

// DefaultConfig returns the configuration for the monorepo layout.
func DefaultConfig() Config {
	return Config{
		Root: ".",
		Namespaces: []Namespace{
			{Prefix: "@cord-sdk/", Dir: "opensource/sdk-js/packages/", Aliased: true},
			{Prefix: "common/"},
			{Prefix: "server/"},
			{Prefix: "external/"},
			{Prefix: "sdk/"},
			{Prefix: "docs/"},
			{Prefix: "ops/"},
			{Prefix: "opensource/"},
			{Prefix: "database/"},
			{Prefix: "scripts/"},
		},
		Extensions:       []string{".ts", ".tsx", "/index.ts", "/index.tsx", ".js", ".d.ts"},
		SourceExtensions: []string{".ts", ".tsx"},
		WalkRoots: []Path{
			"server/src",
			"common",
			"external/src",
			"sdk",
			"docs",
			"ops",
			"opensource/sdk-js/packages",
			"database",
			"scripts",
		},
		SkipDirs: []string{"node_modules", "dist", ".git"},
		Rules: RuleConfig{
			HelperFunctions: []string{"Ajv", "addFormats", "isEmail", "isURL", "isUUID", "isMobilePhone"},
			DefaultExportCalls: []CallRewrite{
				{From: "sgMail.send(", To: "sgMail.default.send("},
				{From: "sgMail.sendMultiple(", To: "sgMail.default.sendMultiple("},
				{From: "sgMail.setApiKey(", To: "sgMail.default.setApiKey("},
				{From: "mjml2html(", To: "mjml2html.default("},
			},
			NamespaceModules: []string{"pg", "jsonwebtoken", "cookie", "js-yaml", "@sendgrid/mail", "dayjs", "express"},
		},
	}
}

// WithRoot returns a copy of c rooted at root. An empty root keeps the current one.
func (c Config) WithRoot(root Path) Config {
	if root != "" {
		c.Root = root
	}

	return c
}
