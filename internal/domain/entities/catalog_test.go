package entities //nolint:testpackage // tests unexported state alongside exported helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCatalog(t *testing.T) {
	t.Parallel()

	t.Run("should copy the input map", func(t *testing.T) {
		t.Parallel()

		// given
		source := map[string]string{"org.example:lib": "1.0.0"}
		catalog := NewVersionCatalog(source)

		// when
		source["org.example:lib"] = "mutated"

		// then
		value, ok := catalog.Lookup("org.example:lib")
		require.True(t, ok)
		assert.Equal(t, "1.0.0", value)
	})
}

func TestVersionCatalog_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("should report false for unknown keys", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := NewVersionCatalog(map[string]string{"a": "1"})

		// when
		_, ok := catalog.Lookup("unknown")

		// then
		assert.False(t, ok)
	})
}

func TestVersionCatalog_Merge(t *testing.T) {
	t.Parallel()

	t.Run("should apply overrides without mutating the receiver", func(t *testing.T) {
		t.Parallel()

		// given
		base := NewVersionCatalog(map[string]string{"a": "1", "b": "2"})

		// when
		merged := base.Merge(map[string]string{"b": "override", "c": "3"})

		// then
		baseValue, _ := base.Lookup("b")
		assert.Equal(t, "2", baseValue)
		mergedValue, _ := merged.Lookup("b")
		assert.Equal(t, "override", mergedValue)
		addedValue, _ := merged.Lookup("c")
		assert.Equal(t, "3", addedValue)
		assert.Equal(t, 3, merged.Len())
	})
}

func TestDefaultVersionCatalog(t *testing.T) {
	t.Parallel()

	t.Run("should target Java 21 and Spring Boot 3.x", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := DefaultVersionCatalog()

		// when
		javaVersion, javaOk := catalog.Lookup("java.version")
		parentVersion, parentOk := catalog.Lookup("org.springframework.boot:spring-boot-starter-parent")

		// then
		require.True(t, javaOk)
		assert.Equal(t, "21", javaVersion)
		require.True(t, parentOk)
		assert.Equal(t, "3.2.0", parentVersion)
	})
}

func TestIsNewerVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  string
		target   string
		expected bool
	}{
		{
			name:     "should report a newer major version",
			current:  "2.7.0",
			target:   "3.2.0",
			expected: true,
		},
		{
			name:     "should report an older target as not newer",
			current:  "3.2.0",
			target:   "2.7.0",
			expected: false,
		},
		{
			name:     "should report equal versions as not newer",
			current:  "3.2.0",
			target:   "3.2.0",
			expected: false,
		},
		{
			name:     "should handle bare major versions",
			current:  "11",
			target:   "21",
			expected: true,
		},
		{
			name:     "should handle .RELEASE suffixed versions",
			current:  "2.3.4.RELEASE",
			target:   "3.2.0",
			expected: true,
		},
		{
			name:     "should handle two-segment versions",
			current:  "1.8",
			target:   "21",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			current, target := tt.current, tt.target

			// when
			result := IsNewerVersion(current, target)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
