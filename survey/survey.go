// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestions []byte

var ErrInvalidQuestionnaire = errors.New("invalid questionnaire")

// Questionnaire is the multi-page form the front end renders.
type Questionnaire struct {
	Title string `json:"title" yaml:"title"`
	Pages []Page `json:"pages" yaml:"pages"`
}

type Page struct {
	Name      string     `json:"name" yaml:"name"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question mirrors the front end's question model. Only Name is interpreted
// by the server; the rest is passed through.
type Question struct {
	Name       string   `json:"name" yaml:"name"`
	Title      string   `json:"title,omitempty" yaml:"title"`
	Type       string   `json:"type" yaml:"type"`
	Choices    []string `json:"choices,omitempty" yaml:"choices"`
	HasOther   bool     `json:"hasOther,omitempty" yaml:"hasOther"`
	IsRequired bool     `json:"isRequired,omitempty" yaml:"isRequired"`
	VisibleIf  string   `json:"visibleIf,omitempty" yaml:"visibleIf"`
}

// Default returns the built-in questionnaire.
func Default() (*Questionnaire, error) {
	return Parse(defaultQuestions)
}

// Load reads a questionnaire from a YAML file. An empty path means Default.
func Load(path string) (*Questionnaire, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading questionnaire: %w", err)
	}
	q, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}

// Parse decodes YAML and checks that question names are present and unique.
func Parse(raw []byte) (*Questionnaire, error) {
	var q Questionnaire
	if err := yaml.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestionnaire, err)
	}
	if len(q.Pages) == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrInvalidQuestionnaire)
	}

	seen := make(map[string]bool)
	for i, page := range q.Pages {
		for j, question := range page.Questions {
			name := strings.TrimSpace(question.Name)
			if name == "" {
				return nil, fmt.Errorf("%w: page %d question %d has no name", ErrInvalidQuestionnaire, i+1, j+1)
			}
			if seen[name] {
				return nil, fmt.Errorf("%w: duplicate question name %q", ErrInvalidQuestionnaire, name)
			}
			seen[name] = true
		}
	}

	return &q, nil
}

// Questions returns every question in page order.
func (q *Questionnaire) Questions() []Question {
	var all []Question
	for _, page := range q.Pages {
		all = append(all, page.Questions...)
	}
	return all
}
