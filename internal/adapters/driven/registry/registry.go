// Package registry loads the topic knowledge base from TOML into the
// immutable domain registry. The default registry ships embedded in the
// binary; an alternative file can be supplied at startup.
package registry

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
	"github.com/marikraa/metropolia-first-year-helper/internal/logger"
)

//go:embed topics.toml
var defaultTopics []byte

// topicsFile is the TOML file shape.
type topicsFile struct {
	Topics []topicRecord `toml:"topics"`
}

// topicRecord is one topic as authored in TOML.
type topicRecord struct {
	ID               string       `toml:"id"`
	Title            string       `toml:"title"`
	ShortDescription string       `toml:"short_description"`
	Details          string       `toml:"details"`
	Tags             []string     `toml:"tags"`
	ExampleQuestions []string     `toml:"example_questions"`
	Links            []linkRecord `toml:"links"`
}

// linkRecord is one labelled URL as authored in TOML.
type linkRecord struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

// Default builds the registry from the embedded topic file.
func Default() (*domain.Registry, error) {
	return Parse(defaultTopics)
}

// LoadFile builds the registry from a TOML file on disk.
func LoadFile(path string) (*domain.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topics file: %w", err)
	}

	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse topics file %s: %w", path, err)
	}
	logger.Info("loaded %d topics from %s", reg.Len(), path)
	return reg, nil
}

// Parse builds the registry from TOML bytes. The file must contain at
// least one topic and topic IDs must be unique.
func Parse(data []byte) (*domain.Registry, error) {
	var file topicsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode topics: %w", err)
	}

	topics := make([]domain.Topic, 0, len(file.Topics))
	for _, rec := range file.Topics {
		links := make([]domain.Link, 0, len(rec.Links))
		for _, l := range rec.Links {
			links = append(links, domain.Link{Label: l.Label, URL: l.URL})
		}
		topics = append(topics, domain.Topic{
			ID:               rec.ID,
			Title:            rec.Title,
			ShortDescription: rec.ShortDescription,
			Details:          rec.Details,
			Tags:             rec.Tags,
			ExampleQuestions: rec.ExampleQuestions,
			Links:            links,
		})
	}

	return domain.NewRegistry(topics)
}
