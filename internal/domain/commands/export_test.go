package commands

// ValidateProjectPath exports validateProjectPath for testing.
var ValidateProjectPath = validateProjectPath //nolint:gochecknoglobals // test export

// CommitChanges exports commitChanges for testing.
var CommitChanges = commitChanges //nolint:gochecknoglobals // test export

// ModernizeBranchName exports modernizeBranchName for testing.
const ModernizeBranchName = modernizeBranchName
