package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"appliance-portcfg/internal/pkg/logging"

	"github.com/caarlos0/env/v9"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultDotEnvFile is read from the working directory when present.
const DefaultDotEnvFile = ".env"

// MerakiConfig represents the dashboard API settings
type MerakiConfig struct {
	OrgID      string        `yaml:"org_id" env:"ORG_ID" validate:"required"`
	APIKey     string        `yaml:"api_key" env:"MERAKI_API_KEY" validate:"required"`
	BaseURL    string        `yaml:"base_url" env:"MERAKI_BASE_URL" validate:"required,url"`
	MaxRetries int           `yaml:"max_retries" env:"MERAKI_MAX_RETRIES" validate:"gte=0"`
	RetryWait  time.Duration `yaml:"retry_wait" env:"MERAKI_RETRY_WAIT" validate:"gte=0"`
	Timeout    time.Duration `yaml:"timeout" env:"MERAKI_TIMEOUT" validate:"gt=0"`
}

// InputConfig represents the CSV input settings
type InputConfig struct {
	CSVFile           string        `yaml:"csv_file" env:"CSV_FILE_NAME" validate:"required"`
	NetworkNameColumn string        `yaml:"network_name_column" env:"NETWORK_NAME_COLUMN" validate:"required"`
	PortIDColumn      string        `yaml:"port_id_column" env:"PORT_ID_COLUMN" validate:"required,nefield=NetworkNameColumn"`
	NotProvided       string        `yaml:"not_provided_value" env:"NOT_PROVIDED_VALUE"`
	RowDelay          time.Duration `yaml:"row_delay" env:"ROW_DELAY" validate:"gte=0"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Meraki  MerakiConfig      `yaml:"meraki"`
	Input   InputConfig       `yaml:"input"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "simple",
		},
		Meraki: MerakiConfig{
			BaseURL:    "https://api.meraki.com/api/v1",
			MaxRetries: 25,
			RetryWait:  time.Second,
			Timeout:    60 * time.Second,
		},
		Input: InputConfig{
			CSVFile:           "appliance_ports.csv",
			NetworkNameColumn: "Network Name",
			PortIDColumn:      "portId",
			NotProvided:       "Unknown",
			RowDelay:          300 * time.Millisecond,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML settings
// file, the .env file in the working directory and the process environment,
// in that order of increasing precedence.
func Load(configPath string) (*Config, error) {
	return LoadFiles(configPath, DefaultDotEnvFile)
}

// LoadFiles is Load with an explicit .env path. Empty paths are skipped.
func LoadFiles(configPath, dotEnvPath string) (*Config, error) {
	config := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if dotEnvPath != "" {
		// Variables already present in the environment win over the file
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", dotEnvPath, err)
		}
	}

	if err := env.Parse(&config.Logging); err != nil {
		return nil, fmt.Errorf("parsing logging env: %w", err)
	}
	if err := env.Parse(&config.Meraki); err != nil {
		return nil, fmt.Errorf("parsing meraki env: %w", err)
	}
	if err := env.Parse(&config.Input); err != nil {
		return nil, fmt.Errorf("parsing input env: %w", err)
	}

	return config, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// section is one validated part of the configuration, named by its yaml key.
type section struct {
	name  string
	value interface{}
}

// Validate validates the whole configuration, as needed by a run.
func (c *Config) Validate() error {
	return validateSections(
		section{"logging", &c.Logging},
		section{"meraki", &c.Meraki},
		section{"input", &c.Input},
	)
}

// ValidateDashboard validates only what is needed to talk to the dashboard.
// The input section is left unchecked.
func (c *Config) ValidateDashboard() error {
	return validateSections(
		section{"logging", &c.Logging},
		section{"meraki", &c.Meraki},
	)
}

func validateSections(sections ...section) error {
	var messages []string
	for _, s := range sections {
		err := validate.Struct(s.value)
		if err == nil {
			continue
		}

		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("config validation: %w", err)
		}
		for _, fe := range validationErrors {
			messages = append(messages, describe(s.name, fe))
		}
	}

	if len(messages) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}

func describe(sectionName string, fe validator.FieldError) string {
	// "MerakiConfig.org_id" -> "meraki.org_id"
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	field = sectionName + "." + field

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
}

// MaskedAPIKey returns the API key with all but the last four characters hidden.
func (c *MerakiConfig) MaskedAPIKey() string {
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}

// Summary returns the settings shown in the start-up configuration table.
func (c *Config) Summary() [][2]string {
	return [][2]string{
		{"ORG_ID", c.Meraki.OrgID},
		{"MERAKI_API_KEY", c.Meraki.MaskedAPIKey()},
		{"MERAKI_BASE_URL", c.Meraki.BaseURL},
		{"MERAKI_MAX_RETRIES", fmt.Sprintf("%d", c.Meraki.MaxRetries)},
		{"CSV_FILE_NAME", c.Input.CSVFile},
		{"NETWORK_NAME_COLUMN", c.Input.NetworkNameColumn},
		{"PORT_ID_COLUMN", c.Input.PortIDColumn},
		{"ROW_DELAY", c.Input.RowDelay.String()},
	}
}
