package gantt

import (
	"errors"
	"os"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v3"
)

const (
	FormatSVG      = "svg"
	FormatTerminal = "terminal"

	DefaultWidth       = 960
	DefaultPanelHeight = 240
)

// Config is the optional YAML file of the CLI, flags override its values.
type Config struct {
	Title           string `yaml:"title"`
	TimeLabel       string `yaml:"time_label"`
	JobsSource      string `yaml:"jobs"`
	ResourcesSource string `yaml:"resources"`
	Format          string `yaml:"format" valid:"in(svg|terminal)"`
	Output          string `yaml:"output"`

	Seed        int64 `yaml:"seed"`
	Width       int   `yaml:"width"`
	PanelHeight int   `yaml:"panel_height"`

	SkipInvalid bool `yaml:"skip_invalid"`
	Interactive bool `yaml:"interactive"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:           DefaultTitle,
		TimeLabel:       DefaultTimeLabel,
		JobsSource:      DefaultJobsSource,
		ResourcesSource: DefaultResourcesSource,
		Format:          FormatSVG,
		Output:          "gantt.svg",

		Seed:        DefaultSeed,
		Width:       DefaultWidth,
		PanelHeight: DefaultPanelHeight,
	}
}

func (cfg *Config) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(cfg); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Config",
			Caller:      "IsValid",
			Issue:       errValidation,
		}
	}

	if cfg.Width <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Config",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Width",
			},
		}
	}

	if cfg.PanelHeight <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - Config",
			Issue: goerrors.ErrNegativeInput{
				InputName: "PanelHeight",
			},
		}
	}

	return nil
}

// LoadConfig overlays the file on the defaults. Keys absent from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	content, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil,
			ErrIOUnavailable{
				Source: path,
				Issue:  errRead,
			}
	}

	result := DefaultConfig()

	if errUnmarshal := yaml.Unmarshal(content, result); errUnmarshal != nil {
		return nil,
			ErrMalformedData{
				Document: "config",
				Index:    -1,
				Field:    path,
				Issue:    errUnmarshal,
			}
	}

	if errValidation := result.IsValid(); errValidation != nil {
		return nil, errValidation
	}

	return result, nil
}

// LoadConfigOrDefault tolerates a missing file only.
func LoadConfigOrDefault(path string) (*Config, error) {
	cfg, errLoad := LoadConfig(path)
	if errLoad != nil && errors.Is(errLoad, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	return cfg, errLoad
}

func (cfg *Config) ParamsPrepareChart() ParamsPrepareChart {
	seed := cfg.Seed

	return ParamsPrepareChart{
		JobsSource:      cfg.JobsSource,
		ResourcesSource: cfg.ResourcesSource,
		Title:           cfg.Title,
		TimeLabel:       cfg.TimeLabel,
		Seed:            &seed,
		SkipInvalid:     cfg.SkipInvalid,
	}
}
