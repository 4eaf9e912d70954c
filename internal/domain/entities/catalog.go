package entities

// VersionCatalog is the immutable mapping from a dependency coordinate or a
// named setting key to its modernization target. It is constructed once at
// startup and passed explicitly to the engine; there is no mutation API.
type VersionCatalog struct {
	entries map[string]string
}

// NewVersionCatalog builds a catalog from the given mappings. The input map
// is copied, so later mutation of it does not affect the catalog.
func NewVersionCatalog(entries map[string]string) *VersionCatalog {
	copied := make(map[string]string, len(entries))
	for key, value := range entries {
		copied[key] = value
	}
	return &VersionCatalog{entries: copied}
}

// Lookup returns the target value for a key. Unknown keys report false and
// are left unchanged by the rewrite engine; absence is never an error.
func (c *VersionCatalog) Lookup(key string) (string, bool) {
	value, ok := c.entries[key]
	return value, ok
}

// Len returns the number of mappings in the catalog.
func (c *VersionCatalog) Len() int {
	return len(c.entries)
}

// Merge returns a new catalog with the overrides applied on top of this one.
// Neither input is modified.
func (c *VersionCatalog) Merge(overrides map[string]string) *VersionCatalog {
	merged := make(map[string]string, len(c.entries)+len(overrides))
	for key, value := range c.entries {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return &VersionCatalog{entries: merged}
}

// DefaultVersionCatalog returns the built-in modernization targets:
// Java 21 and the Spring Boot 3.x dependency stack.
func DefaultVersionCatalog() *VersionCatalog {
	return NewVersionCatalog(map[string]string{
		// Language level settings (manifest and script keys are tracked
		// as separate fields sharing the same target).
		"java.version":          "21",
		"maven.compiler.source": "21",
		"maven.compiler.target": "21",
		"sourceCompatibility":   "21",
		"targetCompatibility":   "21",

		// Framework/platform settings.
		"spring-boot.version": "3.2.0",
		"org.springframework.boot:spring-boot-starter-parent": "3.2.0",
		// Gradle plugin id.
		"org.springframework.boot": "3.2.0",

		// Spring Boot 3.x starters.
		"org.springframework.boot:spring-boot":                  "3.2.0",
		"org.springframework.boot:spring-boot-starter":          "3.2.0",
		"org.springframework.boot:spring-boot-starter-web":      "3.2.0",
		"org.springframework.boot:spring-boot-starter-data-jpa": "3.2.0",
		"org.springframework.boot:spring-boot-starter-security": "3.2.0",
		"org.springframework.boot:spring-boot-starter-actuator": "3.2.0",
		"org.springframework.boot:spring-boot-starter-logging":  "3.2.0",
		"org.springframework.boot:spring-boot-starter-test":     "3.2.0",
		"org.springframework.boot:spring-boot-maven-plugin":     "3.2.0",

		// Spring Framework 6.x.
		"org.springframework:spring-context":                "6.1.0",
		"org.springframework:spring-core":                   "6.1.0",
		"org.springframework:spring-web":                    "6.1.0",
		"org.springframework:spring-webmvc":                 "6.1.0",
		"org.springframework.data:spring-data-jpa":          "3.2.0",
		"org.springframework.security:spring-security-core": "6.2.0",
		"org.springframework.security:spring-security-web":  "6.2.0",

		// Spring Cloud.
		"org.springframework.cloud:spring-cloud-starter-netflix-eureka-client": "4.1.0",
		"org.springframework.cloud:spring-cloud-starter-config":                "4.1.0",
		"org.springframework.cloud:spring-cloud-starter-netflix-hystrix":       "4.1.0",

		// Jackson.
		"com.fasterxml.jackson.core:jackson-databind":    "2.15.2",
		"com.fasterxml.jackson.core:jackson-core":        "2.15.2",
		"com.fasterxml.jackson.core:jackson-annotations": "2.15.2",

		// Testing.
		"org.junit.jupiter:junit-jupiter":   "5.9.3",
		"org.mockito:mockito-core":          "5.3.0",
		"org.mockito:mockito-junit-jupiter": "5.3.0",

		// Logging.
		"ch.qos.logback:logback-classic": "1.4.11",
		"org.slf4j:slf4j-api":            "2.0.7",

		// Jakarta EE APIs.
		"jakarta.servlet:jakarta.servlet-api":         "6.0.0",
		"jakarta.persistence:jakarta.persistence-api": "3.1.0",

		// Maven build plugins.
		"org.apache.maven.plugins:maven-surefire-plugin": "3.1.2",
		"org.apache.maven.plugins:maven-compiler-plugin": "3.11.0",
	})
}
