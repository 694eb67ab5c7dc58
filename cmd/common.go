package cmd

import (
	"appliance-portcfg/internal/adapter/infrastructure/meraki"
	"appliance-portcfg/internal/pkg/config"
	"appliance-portcfg/internal/pkg/logging"
	"appliance-portcfg/internal/pkg/version"
)

// loadConfig loads, overrides and validates the configuration for a run,
// then initializes logging from it.
func loadConfig(inputOverride string) (*config.Config, error) {
	return loadConfigWith(inputOverride, (*config.Config).Validate)
}

// loadDashboardConfig is loadConfig for commands that never read the input file.
func loadDashboardConfig() (*config.Config, error) {
	return loadConfigWith("", (*config.Config).ValidateDashboard)
}

func loadConfigWith(inputOverride string, validate func(*config.Config) error) (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, withExitCode(ExitConfigInvalid, err)
	}

	if inputOverride != "" {
		cfg.Input.CSVFile = inputOverride
	}

	if err := validate(cfg); err != nil {
		return nil, withExitCode(ExitConfigInvalid, err)
	}

	logging.InitLogger(cfg.Logging)
	return cfg, nil
}

// newDashboardClient creates the dashboard API adapter from configuration.
func newDashboardClient(cfg *config.Config) (*meraki.Client, error) {
	client, err := meraki.NewClient(meraki.Options{
		BaseURL:    cfg.Meraki.BaseURL,
		APIKey:     cfg.Meraki.APIKey,
		UserAgent:  version.UserAgent(),
		MaxRetries: cfg.Meraki.MaxRetries,
		RetryWait:  cfg.Meraki.RetryWait,
		Timeout:    cfg.Meraki.Timeout,
	})
	if err != nil {
		return nil, withExitCode(ExitConfigInvalid, err)
	}
	return client, nil
}
