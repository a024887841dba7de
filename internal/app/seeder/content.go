package seeder

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

//go:embed content.yaml
var starterContent string

// ContentItem is one educational content entry in a seed file.
type ContentItem struct {
	Title        string `yaml:"title"`
	Category     string `yaml:"category"`
	Content      string `yaml:"content"`
	Language     string `yaml:"language"`
	Downloadable bool   `yaml:"downloadable"`
}

func (c ContentItem) validate() error {
	switch {
	case strings.TrimSpace(c.Title) == "":
		return fmt.Errorf("title is required")
	case strings.TrimSpace(c.Category) == "":
		return fmt.Errorf("%q: category is required", c.Title)
	case strings.TrimSpace(c.Content) == "":
		return fmt.Errorf("%q: content is required", c.Title)
	case !domain.Language(c.Language).IsValid():
		return fmt.Errorf("%q: unknown language %q", c.Title, c.Language)
	}
	return nil
}

// ParseContent decodes a YAML list of content items.
func ParseContent(r io.Reader) ([]ContentItem, error) {
	var items []ContentItem
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return items, nil
}

// loadContent reads path, or the built-in starter set when path is empty.
func loadContent(path string) ([]ContentItem, error) {
	if path == "" {
		return ParseContent(strings.NewReader(starterContent))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()

	return ParseContent(f)
}
