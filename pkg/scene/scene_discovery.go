package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// ErrUnknownScene is returned when a scene name matches neither a built-in scene nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a scene that can be rendered
type SceneInfo struct {
	ID          string // Name used on the command line
	DisplayName string // Human readable name
	Description string // Optional description
	Type        string // "builtin" or "file"
	FilePath    string // Path to the scene file (file type only)
}

var builtInScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Default Scene",
		Description: "Diffuse, metal and glass spheres on a ground sphere",
		Type:        "builtin",
	},
	{
		ID:          "center",
		DisplayName: "Center Sphere",
		Description: "One diffuse sphere on a ground sphere, camera at the origin",
		Type:        "builtin",
	},
	{
		ID:          "sphere-grid",
		DisplayName: "Sphere Grid",
		Description: "10x10 grid of spheres with random materials",
		Type:        "builtin",
	},
}

// BuiltInScenes lists the scenes compiled into the renderer
func BuiltInScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	copy(scenes, builtInScenes)
	return scenes
}

// ByName creates a built-in scene. The seed only affects randomly generated scenes.
func ByName(name string, seed int64) (*Scene, error) {
	switch name {
	case "default", "":
		return NewDefaultScene(), nil
	case "center":
		return NewCenterScene(), nil
	case "sphere-grid":
		return NewSphereGridScene(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
}

// ListSceneFiles scans dir for YAML scene files and returns their metadata, sorted by display name.
// A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a scene file.
// The display name falls back to the file name when the file has none.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          nameWithoutExt,
		DisplayName: titleCase(nameWithoutExt),
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to read scene file %s: %w", filePath, err)
	}

	var header struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return info, fmt.Errorf("failed to parse scene file %s: %w", filePath, err)
	}

	if header.Name != "" {
		info.DisplayName = header.Name
	}
	info.Description = header.Description
	return info, nil
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
