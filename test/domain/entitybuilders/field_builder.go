package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/modernize/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// FieldBuilder helps create test fields with a fluent interface.
type FieldBuilder struct {
	*testkit.BaseBuilder
	kind       entities.FieldKind
	key        string
	coordinate string
	value      string
	span       entities.Span
	line       int
	unresolved bool
}

// NewFieldBuilder creates a new field builder with sensible defaults.
func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		kind:        entities.FieldDependency,
		coordinate:  "org.springframework.boot:spring-boot-starter-web",
		value:       "2.7.0",
		span:        entities.Span{Start: 0, End: 5},
		line:        1,
	}
}

// WithKind sets the field kind.
func (b *FieldBuilder) WithKind(kind entities.FieldKind) *FieldBuilder {
	b.kind = kind
	return b
}

// WithKey sets the named setting key and clears the coordinate.
func (b *FieldBuilder) WithKey(key string) *FieldBuilder {
	b.key = key
	b.coordinate = ""
	return b
}

// WithCoordinate sets the declaration coordinate.
func (b *FieldBuilder) WithCoordinate(coordinate string) *FieldBuilder {
	b.coordinate = coordinate
	return b
}

// WithValue sets the current value.
func (b *FieldBuilder) WithValue(value string) *FieldBuilder {
	b.value = value
	return b
}

// WithSpan sets the value span.
func (b *FieldBuilder) WithSpan(start, end int) *FieldBuilder {
	b.span = entities.Span{Start: start, End: end}
	return b
}

// WithLine sets the line number.
func (b *FieldBuilder) WithLine(line int) *FieldBuilder {
	b.line = line
	return b
}

// WithUnresolved marks the value as a variable reference.
func (b *FieldBuilder) WithUnresolved() *FieldBuilder {
	b.unresolved = true
	return b
}

// Build creates the field (satisfies testkit.Builder interface).
func (b *FieldBuilder) Build() interface{} {
	return b.BuildField()
}

// BuildField creates the field with a concrete return type.
func (b *FieldBuilder) BuildField() entities.Field {
	return entities.Field{
		Kind:       b.kind,
		Key:        b.key,
		Coordinate: b.coordinate,
		Value:      b.value,
		Span:       b.span,
		Line:       b.line,
		Unresolved: b.unresolved,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *FieldBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.kind = entities.FieldDependency
	b.key = ""
	b.coordinate = "org.springframework.boot:spring-boot-starter-web"
	b.value = "2.7.0"
	b.span = entities.Span{Start: 0, End: 5}
	b.line = 1
	b.unresolved = false
	return b
}

// Clone creates a deep copy of the FieldBuilder.
func (b *FieldBuilder) Clone() testkit.Builder {
	return &FieldBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		kind:        b.kind,
		key:         b.key,
		coordinate:  b.coordinate,
		value:       b.value,
		span:        b.span,
		line:        b.line,
		unresolved:  b.unresolved,
	}
}
