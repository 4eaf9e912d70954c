package maven //nolint:testpackage // tests unexported extractor functions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/modernize/internal/domain/entities"
	"github.com/rios0rios0/modernize/internal/rewrite"
)

const samplePom = `<?xml version="1.0" encoding="UTF-8"?>
<project>
    <parent>
        <groupId>org.springframework.boot</groupId>
        <artifactId>spring-boot-starter-parent</artifactId>
        <version>2.7.0</version>
    </parent>
    <properties>
        <java.version>11</java.version>
    </properties>
    <dependencies>
        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-web</artifactId>
            <version>2.7.0</version>
        </dependency>
        <dependency>
            <groupId>com.internal</groupId>
            <artifactId>private-lib</artifactId>
            <version>1.0.0</version>
        </dependency>
    </dependencies>
</project>
`

func writePom(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pom.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUpdaterRepository_Matches(t *testing.T) {
	t.Parallel()

	t.Run("should recognize pom.xml only", func(t *testing.T) {
		t.Parallel()

		// given
		repo := NewUpdaterRepository()

		// then
		assert.True(t, repo.Matches("pom.xml"))
		assert.True(t, repo.Matches("sub/module/pom.xml"))
		assert.False(t, repo.Matches("build.gradle"))
		assert.False(t, repo.Matches("pom.xml.bak"))
	})
}

func TestUpdaterRepository_Update(t *testing.T) {
	t.Parallel()

	t.Run("should update outdated fields and add the marker", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePom(t, samplePom)
		catalog := entities.DefaultVersionCatalog()
		repo := NewUpdaterRepository()

		// when
		result, err := repo.Update(path, catalog, entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.Written)
		assert.Len(t, result.Changes, 3)

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		updated := string(content)
		assert.Contains(t, updated, "<version>3.2.0</version>")
		assert.Contains(t, updated, "<java.version>21</java.version>")
		assert.NotContains(t, updated, "<version>2.7.0</version>")
		assert.Equal(t, 1, strings.Count(updated, rewrite.MarkerText))
	})

	t.Run("should anchor the marker directly after the XML declaration", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePom(t, samplePom)
		repo := NewUpdaterRepository()

		// when
		_, err := repo.Update(path, entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.True(t, strings.HasPrefix(string(content),
			"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<!-- "+rewrite.MarkerText+" -->\n"))
	})

	t.Run("should be idempotent across repeated runs", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePom(t, samplePom)
		catalog := entities.DefaultVersionCatalog()
		repo := NewUpdaterRepository()
		_, err := repo.Update(path, catalog, entities.UpdateOptions{})
		require.NoError(t, err)
		firstPass, readErr := os.ReadFile(path)
		require.NoError(t, readErr)

		// when
		result, err := repo.Update(path, catalog, entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.Written)
		assert.Empty(t, result.Changes)

		secondPass, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, string(firstPass), string(secondPass))
		assert.Equal(t, 1, strings.Count(string(secondPass), rewrite.MarkerText))
	})

	t.Run("should leave unknown coordinates untouched", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePom(t, samplePom)
		repo := NewUpdaterRepository()

		// when
		_, err := repo.Update(path, entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "<version>1.0.0</version>")
	})

	t.Run("should not attribute a nested dependency version to a version-less plugin", func(t *testing.T) {
		t.Parallel()

		// given
		pluginPom := `<?xml version="1.0"?>
<project>
    <build>
        <plugins>
            <plugin>
                <groupId>org.apache.maven.plugins</groupId>
                <artifactId>maven-surefire-plugin</artifactId>
                <dependencies>
                    <dependency>
                        <groupId>org.junit.platform</groupId>
                        <artifactId>junit-platform-surefire-provider</artifactId>
                        <version>1.3.2</version>
                    </dependency>
                </dependencies>
            </plugin>
        </plugins>
    </build>
</project>
`
		path := writePom(t, pluginPom)
		repo := NewUpdaterRepository()

		// when
		result, err := repo.Update(path, entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.Written)
		assert.Empty(t, result.Changes)

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, pluginPom, string(content))
	})

	t.Run("should rewrite a catalogued nested plugin dependency exactly once", func(t *testing.T) {
		t.Parallel()

		// given
		pluginPom := `<?xml version="1.0"?>
<project>
    <build>
        <plugins>
            <plugin>
                <groupId>org.apache.maven.plugins</groupId>
                <artifactId>maven-surefire-plugin</artifactId>
                <dependencies>
                    <dependency>
                        <groupId>org.junit.jupiter</groupId>
                        <artifactId>junit-jupiter</artifactId>
                        <version>5.8.0</version>
                    </dependency>
                </dependencies>
            </plugin>
        </plugins>
    </build>
</project>
`
		path := writePom(t, pluginPom)
		repo := NewUpdaterRepository()

		// when
		result, err := repo.Update(path, entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Len(t, result.Changes, 1)

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "<version>5.9.3</version>")
	})

	t.Run("should preserve formatting outside replaced spans", func(t *testing.T) {
		t.Parallel()

		// given
		oddPom := "<?xml version=\"1.0\"?>\n<project>\n\t<properties>\n\t\t  <java.version>  11  </java.version>\n\t</properties>\n\t<!-- keep me -->\n</project>\n"
		path := writePom(t, oddPom)
		repo := NewUpdaterRepository()

		// when
		_, err := repo.Update(path, entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "<java.version>  21  </java.version>")
		assert.Contains(t, string(content), "\t\t  <java.version>")
		assert.Contains(t, string(content), "<!-- keep me -->")
	})

	t.Run("should not touch a malformed manifest and report a parse error", func(t *testing.T) {
		t.Parallel()

		// given
		malformed := "<?xml version=\"1.0\"?>\n<project>\n  <properties>\n"
		path := writePom(t, malformed)
		repo := NewUpdaterRepository()

		// when
		result, err := repo.Update(path, entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.Error(t, err)
		assert.True(t, entities.IsParseError(err))
		require.NotNil(t, result)
		assert.False(t, result.Success)

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, malformed, string(content))
	})

	t.Run("should not rewrite unresolved variable references", func(t *testing.T) {
		t.Parallel()

		// given
		variablePom := `<?xml version="1.0"?>
<project>
    <dependencies>
        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-web</artifactId>
            <version>${spring.version}</version>
        </dependency>
    </dependencies>
</project>
`
		path := writePom(t, variablePom)
		repo := NewUpdaterRepository()

		// when
		result, err := repo.Update(path, entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.False(t, result.Written)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, variablePom, string(content))
	})

	t.Run("should not write in dry-run mode", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePom(t, samplePom)
		repo := NewUpdaterRepository()

		// when
		result, err := repo.Update(path, entities.DefaultVersionCatalog(),
			entities.UpdateOptions{DryRun: true})

		// then
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.Written)
		assert.Len(t, result.Changes, 3)

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, samplePom, string(content))
	})
}

func TestUpdaterRepository_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("should report outdated fields without modifying the file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writePom(t, samplePom)
		repo := NewUpdaterRepository()

		// when
		info, err := repo.Inspect(path, entities.DefaultVersionCatalog())

		// then
		require.NoError(t, err)
		assert.Equal(t, "maven", info.Format)
		assert.Len(t, info.Fields, 4)
		assert.Equal(t, 3, info.OutdatedCount())

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, samplePom, string(content))
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("should order fields by position and carry line numbers", func(t *testing.T) {
		t.Parallel()

		// given / when
		model, err := extract("pom.xml", samplePom)

		// then
		require.NoError(t, err)
		require.Len(t, model.Fields, 4)
		for i := 1; i < len(model.Fields); i++ {
			assert.Greater(t, model.Fields[i].Span.Start, model.Fields[i-1].Span.Start)
		}
		parent := model.Fields[0]
		assert.Equal(t, entities.FieldFrameworkVersion, parent.Kind)
		assert.Equal(t, "org.springframework.boot:spring-boot-starter-parent", parent.Coordinate)
		assert.Equal(t, 3, parent.Line)
	})

	t.Run("should skip declarations without a version", func(t *testing.T) {
		t.Parallel()

		// given
		managedPom := `<?xml version="1.0"?>
<project>
    <dependencies>
        <dependency>
            <groupId>org.springframework.boot</groupId>
            <artifactId>spring-boot-starter-web</artifactId>
        </dependency>
    </dependencies>
</project>
`

		// when
		model, err := extract("pom.xml", managedPom)

		// then
		require.NoError(t, err)
		assert.Empty(t, model.Fields)
	})

	t.Run("should take a plugin version only from before its nested blocks", func(t *testing.T) {
		t.Parallel()

		// given
		pom := `<?xml version="1.0"?>
<project>
    <build>
        <plugins>
            <plugin>
                <groupId>org.apache.maven.plugins</groupId>
                <artifactId>maven-compiler-plugin</artifactId>
                <version>3.8.0</version>
                <configuration>
                    <release>11</release>
                </configuration>
                <dependencies>
                    <dependency>
                        <groupId>com.internal</groupId>
                        <artifactId>compiler-extension</artifactId>
                        <version>1.0.0</version>
                    </dependency>
                </dependencies>
            </plugin>
        </plugins>
    </build>
</project>
`

		// when
		model, err := extract("pom.xml", pom)

		// then
		require.NoError(t, err)
		require.Len(t, model.Fields, 2)
		plugin := model.Fields[0]
		assert.Equal(t, entities.FieldPlugin, plugin.Kind)
		assert.Equal(t, "org.apache.maven.plugins:maven-compiler-plugin", plugin.Coordinate)
		assert.Equal(t, "3.8.0", plugin.Value)
		nested := model.Fields[1]
		assert.Equal(t, entities.FieldDependency, nested.Kind)
		assert.Equal(t, "com.internal:compiler-extension", nested.Coordinate)
	})

	t.Run("should mark property references as unresolved", func(t *testing.T) {
		t.Parallel()

		// given
		pom := `<?xml version="1.0"?>
<project>
    <properties>
        <java.version>${target.java}</java.version>
    </properties>
</project>
`

		// when
		model, err := extract("pom.xml", pom)

		// then
		require.NoError(t, err)
		require.Len(t, model.Fields, 1)
		assert.True(t, model.Fields[0].Unresolved)
	})

	t.Run("should reject a document with no root element", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := extract("pom.xml", "<?xml version=\"1.0\"?>\n")

		// then
		require.Error(t, err)
		assert.True(t, entities.IsParseError(err))
	})
}
