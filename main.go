package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/exporter"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/logging"
	"github.com/df07/go-sphere-raytracer/pkg/publish"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/joho/godotenv"
)

// options holds the command line; only flags the user actually set override the config file
type options struct {
	configPath string
	envPath    string
	listScenes bool
	set        map[string]bool

	sceneName      string
	sceneFile      string
	output         string
	thumbnail      string
	thumbnailWidth uint
	width          int
	height         int
	samples        int
	depth          int
	seed           int64
	integrator     string
	logLevel       string
	upload         bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "config.yaml", "YAML config file (missing file means defaults)")
	fs.StringVar(&opts.envPath, "env", ".env", "Environment file with S3 credentials")
	fs.BoolVar(&opts.listScenes, "list-scenes", false, "List available scenes and exit")
	fs.StringVar(&opts.sceneName, "scene", "default", "Built-in scene name or name of a file in the scenes directory")
	fs.StringVar(&opts.sceneFile, "scene-file", "", "Path to a YAML scene file")
	fs.StringVar(&opts.output, "output", "output/render.ppm", "Output image (.ppm, .png, .bmp, .tif)")
	fs.StringVar(&opts.thumbnail, "thumbnail", "", "Optional thumbnail path (raster outputs only)")
	fs.UintVar(&opts.thumbnailWidth, "thumbnail-width", 160, "Thumbnail width in pixels")
	fs.IntVar(&opts.width, "width", 0, "Image width (0 keeps the scene's)")
	fs.IntVar(&opts.height, "height", 0, "Image height (0 keeps the scene's)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 keeps the scene's)")
	fs.IntVar(&opts.depth, "depth", -1, "Maximum bounce depth (-1 keeps the scene's)")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	fs.StringVar(&opts.integrator, "integrator", integrator.Recursive, "Path tracer: recursive or iterative")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.upload, "upload", false, "Upload the result to S3")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	return opts, nil
}

// applyFlags overlays explicitly set flags on the loaded config
func applyFlags(cfg *config.Config, opts *options) {
	if opts.set["scene"] {
		cfg.Scene.Name = opts.sceneName
		cfg.Scene.File = ""
	}
	if opts.set["scene-file"] {
		cfg.Scene.File = opts.sceneFile
	}
	if opts.set["output"] {
		cfg.Output.Path = opts.output
	}
	if opts.set["thumbnail"] {
		cfg.Output.ThumbnailPath = opts.thumbnail
	}
	if opts.set["thumbnail-width"] {
		cfg.Output.ThumbnailWidth = opts.thumbnailWidth
	}
	if opts.set["width"] {
		cfg.Render.Width = opts.width
	}
	if opts.set["height"] {
		cfg.Render.Height = opts.height
	}
	if opts.set["samples"] {
		cfg.Render.SamplesPerPixel = opts.samples
	}
	if opts.set["depth"] {
		cfg.Render.MaxDepth = opts.depth
	}
	if opts.set["seed"] {
		cfg.Render.Seed = opts.seed
	}
	if opts.set["integrator"] {
		cfg.Render.Integrator = opts.integrator
	}
	if opts.set["log-level"] {
		cfg.Log.Level = opts.logLevel
	}
	if opts.set["upload"] {
		cfg.S3.Enabled = opts.upload
	}
}

// getEnv returns the environment variable or the fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// applyEnv lets S3_* variables (from the environment or a .env file) fill in S3 settings
func applyEnv(cfg *config.Config) {
	cfg.S3.Bucket = getEnv("S3_BUCKET", cfg.S3.Bucket)
	cfg.S3.Region = getEnv("S3_REGION", cfg.S3.Region)
	cfg.S3.Endpoint = getEnv("S3_ENDPOINT", cfg.S3.Endpoint)
	cfg.S3.AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3.AccessKey)
	cfg.S3.SecretKey = getEnv("S3_SECRET_KEY", cfg.S3.SecretKey)
}

func newLogger(cfg config.LogConfig) (*logging.Logger, error) {
	switch {
	case cfg.File == "":
		return logging.NewLogger(cfg.Level), nil
	case cfg.Console:
		return logging.NewMultiLogger(cfg.Level, cfg.File)
	default:
		return logging.NewFileLogger(cfg.Level, cfg.File)
	}
}

// createScene loads the configured scene file, a file named after the scene in the scenes
// directory, or a built-in scene, and applies the render overrides
func createScene(cfg *config.Config, seed int64) (*scene.Scene, error) {
	var s *scene.Scene
	var err error

	switch {
	case cfg.Scene.File != "":
		s, err = scene.LoadSceneFile(cfg.Scene.File)
	default:
		s, err = scene.ByName(cfg.Scene.Name, seed)
		if errors.Is(err, scene.ErrUnknownScene) && cfg.Scene.Dir != "" {
			candidate := filepath.Join(cfg.Scene.Dir, cfg.Scene.Name+".yaml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				s, err = scene.LoadSceneFile(candidate)
			}
		}
	}
	if err != nil {
		return nil, err
	}

	if cfg.Render.Width > 0 {
		s.Width = cfg.Render.Width
	}
	if cfg.Render.Height > 0 {
		s.Height = cfg.Render.Height
	}
	if cfg.Render.Width > 0 || cfg.Render.Height > 0 {
		s.Camera.AspectRatio = float32(s.Width) / float32(s.Height)
	}
	if cfg.Render.SamplesPerPixel > 0 {
		s.Sampling.SamplesPerPixel = cfg.Render.SamplesPerPixel
	}
	if cfg.Render.MaxDepth >= 0 {
		s.Sampling.MaxDepth = cfg.Render.MaxDepth
	}

	return s, nil
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("error creating output directory: %w", err)
		}
	}
	return os.Create(path)
}

// renderToFile renders the scene into cfg.Output.Path (and the thumbnail, if configured)
func renderToFile(s *scene.Scene, cfg *config.Config, sampler core.Sampler, logger core.Logger) (stats renderer.RenderStats, err error) {
	format, err := exporter.FormatFromPath(cfg.Output.Path)
	if err != nil {
		return stats, err
	}

	camera, err := s.NewCamera()
	if err != nil {
		return stats, err
	}
	rt, err := renderer.NewRaytracer(s, camera, s.Width, s.Height, s.Sampling, sampler, logger)
	if err != nil {
		return stats, err
	}
	integratorInst, err := integrator.New(cfg.Render.Integrator, s.Sampling.MaxDepth)
	if err != nil {
		return stats, err
	}
	rt.SetIntegrator(integratorInst)

	file, err := createFile(cfg.Output.Path)
	if err != nil {
		return stats, err
	}
	// A failed render leaves no partial image behind
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", cfg.Output.Path, closeErr)
		}
		if err != nil {
			os.Remove(cfg.Output.Path)
		}
	}()

	var exp exporter.Exporter
	if format == exporter.FormatPPM {
		if exp, err = exporter.NewPPMExporter(file, s.Width, s.Height); err != nil {
			return stats, err
		}
	} else {
		var imageExp *exporter.ImageExporter
		if imageExp, err = exporter.NewImageExporter(file, format, s.Width, s.Height); err != nil {
			return stats, err
		}
		if cfg.Output.ThumbnailPath != "" {
			var thumb *os.File
			if thumb, err = createFile(cfg.Output.ThumbnailPath); err != nil {
				return stats, err
			}
			defer func() {
				if closeErr := thumb.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("error closing %s: %w", cfg.Output.ThumbnailPath, closeErr)
				}
				if err != nil {
					os.Remove(cfg.Output.ThumbnailPath)
				}
			}()
			imageExp.WithThumbnail(thumb, cfg.Output.ThumbnailWidth)
		}
		exp = imageExp
	}

	return rt.Render(exp)
}

func printScenes(w io.Writer, dir string) error {
	fmt.Fprintln(w, "Built-in scenes:")
	for _, info := range scene.BuiltInScenes() {
		fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.Description)
	}

	files, err := scene.ListSceneFiles(dir)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		fmt.Fprintf(w, "\nScene files in %s:\n", dir)
		for _, info := range files {
			fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.DisplayName)
		}
	}
	return nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	// Without an explicit --config, a missing default file just means defaults
	cfg, cfgErr := config.LoadConfig(opts.configPath)
	if cfgErr != nil && (opts.set["config"] || !errors.Is(cfgErr, os.ErrNotExist)) {
		return cfgErr
	}
	applyFlags(cfg, opts)

	if opts.listScenes {
		return printScenes(stdout, cfg.Scene.Dir)
	}

	if cfg.S3.Enabled {
		// A missing .env file is fine; credentials may already be in the environment
		if err := godotenv.Load(opts.envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", opts.envPath, err)
		}
		applyEnv(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()

	if cfgErr != nil {
		logger.Debugf("No config file at %s, using defaults", opts.configPath)
	}

	seed := cfg.Render.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := createScene(cfg, seed)
	if err != nil {
		return err
	}

	logger.Infof("Rendering scene %q at %dx%d, %d samples per pixel, max depth %d, seed %d",
		s.Name, s.Width, s.Height, s.Sampling.SamplesPerPixel, s.Sampling.MaxDepth, seed)
	logger.Infof("Scene has %d spheres and %d materials, %s integrator",
		s.GetPrimitiveCount(), len(s.Materials()), cfg.Render.Integrator)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
	stats, err := renderToFile(s, cfg, sampler, logger)
	if err != nil {
		return err
	}

	logger.Infof("Render finished: %s", stats.Summary())
	logger.Infof("Render saved as %s", cfg.Output.Path)

	if cfg.S3.Enabled {
		publisher, err := publish.NewS3Publisher(cfg.S3, logger)
		if err != nil {
			return err
		}
		paths := []string{cfg.Output.Path}
		if cfg.Output.ThumbnailPath != "" {
			paths = append(paths, cfg.Output.ThumbnailPath)
		}
		for _, path := range paths {
			if _, err := publisher.Publish(context.Background(), path); err != nil {
				return err
			}
		}
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
