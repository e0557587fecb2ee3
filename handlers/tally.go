// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"

	"github.com/danielhkuo/quickly-survey/models"
	"github.com/danielhkuo/quickly-survey/survey"
)

// ComputeTally counts answers per question across responses.
//
// Strings count as themselves, arrays count each element, and numbers and
// booleans count by their JSON text. Objects and nulls are not counted.
// Questions come in questionnaire order with every listed choice present;
// answers to unknown questions follow, sorted by name.
func ComputeTally(q *survey.Questionnaire, responses []models.SurveyResponse) models.ResultsResponse {
	tallies := make(map[string]*models.QuestionTally)
	var order []string

	if q != nil {
		for _, question := range q.Questions() {
			tally := &models.QuestionTally{
				Name:   question.Name,
				Title:  question.Title,
				Counts: make(map[string]int, len(question.Choices)),
			}
			for _, choice := range question.Choices {
				tally.Counts[choice] = 0
			}
			tallies[question.Name] = tally
			order = append(order, question.Name)
		}
	}

	var extra []string
	for _, response := range responses {
		answers, err := decodeAnswers(response.Data)
		if err != nil {
			slog.Warn("skipping undecodable survey response", "id", response.ID, "error", err)
			continue
		}

		for name, value := range answers {
			values := answerValues(value)
			if len(values) == 0 {
				continue
			}

			tally, ok := tallies[name]
			if !ok {
				tally = &models.QuestionTally{Name: name, Counts: make(map[string]int)}
				tallies[name] = tally
				extra = append(extra, name)
			}

			tally.Answered++
			for _, v := range values {
				tally.Counts[v]++
			}
		}
	}

	sort.Strings(extra)
	order = append(order, extra...)

	questions := make([]models.QuestionTally, 0, len(order))
	for _, name := range order {
		questions = append(questions, *tallies[name])
	}

	return models.ResultsResponse{
		TotalResponses: len(responses),
		Questions:      questions,
	}
}

func decodeAnswers(data json.RawMessage) (map[string]any, error) {
	answers := make(map[string]any)
	if len(bytes.TrimSpace(data)) == 0 {
		return answers, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// answerValues flattens one answer into the strings it counts as.
func answerValues(value any) []string {
	switch v := value.(type) {
	case []any:
		var values []string
		for _, item := range v {
			if s, ok := scalarValue(item); ok {
				values = append(values, s)
			}
		}
		return values
	default:
		if s, ok := scalarValue(v); ok {
			return []string{s}
		}
		return nil
	}
}

func scalarValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
