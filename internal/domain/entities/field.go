package entities

// FieldKind identifies the category of a recognized version-bearing field.
type FieldKind string

const (
	// FieldLanguageVersion is a Java language level setting
	// (java.version, maven.compiler.source/target, sourceCompatibility, ...).
	FieldLanguageVersion FieldKind = "language-version"
	// FieldFrameworkVersion is a framework/platform version setting
	// (spring-boot.version, the Spring Boot parent declaration, ...).
	FieldFrameworkVersion FieldKind = "framework-version"
	// FieldDependency is a dependency declaration with a coordinate and a
	// declared version.
	FieldDependency FieldKind = "dependency"
	// FieldPlugin is a build plugin declaration with a declared version.
	FieldPlugin FieldKind = "plugin"
	// FieldNamespace is a source-level namespace reference (import prefix).
	FieldNamespace FieldKind = "namespace"
	// FieldAnnotation is a source-level annotation usage.
	FieldAnnotation FieldKind = "annotation"
)

// Span marks a byte range within the original text. Replacements only ever
// touch the bytes inside a span; everything outside is preserved verbatim.
type Span struct {
	Start int
	End   int
}

// Field is one recognized, individually addressable version-bearing location
// within a descriptor or source file. Duplicated settings (e.g. separate
// source/target compatibility keys) are tracked as separate fields even when
// they share the same target.
type Field struct {
	Kind       FieldKind
	Key        string // named setting key (e.g. "java.version"); empty for declarations
	Coordinate string // "group:artifact" or plugin id; empty for named settings
	Value      string // current value as written
	Span       Span   // span of the value within the original text
	Line       int    // 1-based line of the field in the original text
	Unresolved bool   // value is a variable reference bound elsewhere
}

// CatalogKey returns the key used to query the version catalog for this field.
func (f Field) CatalogKey() string {
	if f.Coordinate != "" {
		return f.Coordinate
	}
	return f.Key
}

// Subject returns the human-facing identifier of the field for change records.
func (f Field) Subject() string {
	return f.CatalogKey()
}

// DescriptorModel is the in-memory structural view of a descriptor's
// recognized fields, ordered by appearance in the source text. Unrecognized
// text is never represented; it survives rewriting by construction.
type DescriptorModel struct {
	Format string
	Fields []Field
}
