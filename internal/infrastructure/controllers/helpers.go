package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// loadSettings resolves configuration for a command invocation: an explicit
// --config path, then the standard locations, then the built-in defaults.
// Running without a config file is the normal case.
func loadSettings(cmd *cobra.Command) *entities.Settings {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debug("No config file found, using built-in defaults")
			return entities.DefaultSettings()
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	settings, err := entities.NewSettings(configPath)
	if err != nil {
		logger.Errorf("Failed to load config, using built-in defaults: %v", err)
		return entities.DefaultSettings()
	}
	return settings
}

// logOutcome prints the per-file result of an update or transform.
func logOutcome(outcome *entities.FileOutcome) {
	if outcome.Result != nil {
		logger.Infof("%s: %s", outcome.Path, outcome.Result.Message)
		for _, change := range outcome.Result.Changes {
			logger.Infof("  - %s", change.Description)
		}
	}
	for _, finding := range outcome.Findings {
		logFinding(outcome.Path, finding)
	}
}

func logFinding(path string, finding entities.Finding) {
	message := finding.Message
	if finding.Suggestion != "" {
		message += " (" + finding.Suggestion + ")"
	}
	switch finding.Severity {
	case entities.SeverityWarning:
		logger.Warnf("%s:%d [%s] %s", path, finding.Line, finding.Rule, message)
	default:
		logger.Infof("%s:%d [%s] %s", path, finding.Line, finding.Rule, message)
	}
}
