// Package model defines the data structures shared by the import resolver and rewriter.
package model

// Path represents a file system path.
type Path string

// Specifier is a module reference exactly as written inside an import statement.
type Specifier string

// Namespace is a logical root eligible for resolution.
type Namespace struct {
	// Prefix is matched against the start of a specifier, e.g. "@cord-sdk/" or "server/".
	Prefix string
	// Dir is the physical directory, relative to the repository root, that an
	// aliased prefix stands for. Empty for filesystem namespaces.
	Dir string
	// Aliased marks package-style prefixes that are substituted by Dir.
	Aliased bool
}

// Mode controls which parts of the line pipeline run.
type Mode struct {
	// Compatible disables the rewrite rules while keeping path resolution.
	Compatible bool
}

// ResolutionKind is the outcome category of resolving a specifier.
type ResolutionKind int

const (
	// Unchanged means the specifier needs no rewrite.
	Unchanged ResolutionKind = iota
	// Resolved means a candidate file was found and Specifier holds the new form.
	Resolved
	// Unresolved means no candidate exists on disk.
	Unresolved
)

func (k ResolutionKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Resolved:
		return "resolved"
	case Unresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving one specifier.
type Resolution struct {
	Kind      ResolutionKind
	Specifier Specifier // set only when Kind is Resolved
}
