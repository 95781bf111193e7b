// Package config loads and validates the renderer's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/exporter"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/logging"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
	Scene  SceneConfig  `yaml:"scene"`
	Log    LogConfig    `yaml:"log"`
	S3     S3Config     `yaml:"s3"`
}

// RenderConfig overrides the scene's own image settings. Zero values keep the scene's choice.
type RenderConfig struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`  // -1 keeps the scene's depth
	Seed            int64  `yaml:"seed"`       // 0 means seed from the clock
	Integrator      string `yaml:"integrator"` // recursive or iterative
}

// OutputConfig describes where the image goes
type OutputConfig struct {
	Path           string `yaml:"path"` // Format follows the extension
	ThumbnailPath  string `yaml:"thumbnail_path"`
	ThumbnailWidth uint   `yaml:"thumbnail_width"`
}

// SceneConfig selects a built-in scene by name or a YAML scene file
type SceneConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file"` // Takes precedence over Name
	Dir  string `yaml:"dir"`  // Directory searched by --list-scenes
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Console bool   `yaml:"console"` // Also log to stdout when File is set
}

// S3Config contains settings for uploading the finished image
type S3Config struct {
	Enabled   bool   `yaml:"enabled"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // Optional, for S3-compatible stores
	Prefix    string `yaml:"prefix"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:           0,
			Height:          0,
			SamplesPerPixel: 0,
			MaxDepth:        -1,
			Seed:            0,
			Integrator:      integrator.Recursive,
		},
		Output: OutputConfig{
			Path:           "output/render.ppm",
			ThumbnailPath:  "",
			ThumbnailWidth: 160,
		},
		Scene: SceneConfig{
			Name: "default",
			Dir:  "scenes",
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		S3: S3Config{
			Enabled: false,
			Region:  "us-east-1",
			Prefix:  "renders/",
		},
	}
}

// LoadConfig loads the configuration from a file.
// On error the defaults are returned alongside it, so callers may carry on.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration can drive a render
func (c *Config) Validate() error {
	var errs []error

	if c.Render.Width < 0 || c.Render.Height < 0 {
		errs = append(errs, fmt.Errorf("image size %dx%d must not be negative", c.Render.Width, c.Render.Height))
	}
	if c.Render.SamplesPerPixel < 0 {
		errs = append(errs, fmt.Errorf("samples_per_pixel %d must not be negative", c.Render.SamplesPerPixel))
	}
	if c.Render.MaxDepth < -1 {
		errs = append(errs, fmt.Errorf("max_depth %d must be -1 or more", c.Render.MaxDepth))
	}
	if _, err := integrator.New(c.Render.Integrator, 0); err != nil {
		errs = append(errs, err)
	}

	if c.Output.Path == "" {
		errs = append(errs, errors.New("output path is required"))
	} else if format, err := exporter.FormatFromPath(c.Output.Path); err != nil {
		errs = append(errs, err)
	} else if c.Output.ThumbnailPath != "" && format == exporter.FormatPPM {
		errs = append(errs, errors.New("thumbnails need a raster output format, not ppm"))
	}
	if c.Output.ThumbnailPath != "" && c.Output.ThumbnailWidth == 0 {
		errs = append(errs, errors.New("thumbnail_width must be positive when thumbnail_path is set"))
	}

	if c.Scene.Name == "" && c.Scene.File == "" {
		errs = append(errs, errors.New("scene name or file is required"))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if c.S3.Enabled && c.S3.Bucket == "" {
		errs = append(errs, errors.New("s3 bucket is required when upload is enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
