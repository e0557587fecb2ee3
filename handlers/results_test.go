// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-survey/models"
	"github.com/danielhkuo/quickly-survey/store"
	"github.com/danielhkuo/quickly-survey/survey"
	"github.com/danielhkuo/quickly-survey/testutil"
)

func defaultQuestionnaire(t *testing.T) *survey.Questionnaire {
	t.Helper()
	q, err := survey.Default()
	require.NoError(t, err)
	return q
}

func responsesOf(data ...string) []models.SurveyResponse {
	responses := make([]models.SurveyResponse, len(data))
	for i, d := range data {
		responses[i] = models.SurveyResponse{ID: int64(i + 1), UserID: int64(i + 1), Data: json.RawMessage(d)}
	}
	return responses
}

func tallyByName(results models.ResultsResponse) map[string]models.QuestionTally {
	byName := make(map[string]models.QuestionTally, len(results.Questions))
	for _, q := range results.Questions {
		byName[q.Name] = q
	}
	return byName
}

func TestComputeTally_NoResponses(t *testing.T) {
	results := ComputeTally(defaultQuestionnaire(t), nil)

	assert.Zero(t, results.TotalResponses)
	require.Len(t, results.Questions, 3)

	assert.Equal(t, "frameworkUsing", results.Questions[0].Name)
	assert.Equal(t, map[string]int{"Yes": 0, "No": 0}, results.Questions[0].Counts)
	assert.Equal(t, "framework", results.Questions[1].Name)
	assert.Equal(t, map[string]int{"React": 0, "Vue": 0, "Angular": 0, "jQuery": 0}, results.Questions[1].Counts)
	assert.Equal(t, "about", results.Questions[2].Name)
	assert.Empty(t, results.Questions[2].Counts)
	assert.NotNil(t, results.Questions[2].Counts)
}

func TestComputeTally_CountsAnswers(t *testing.T) {
	responses := responsesOf(
		`{"frameworkUsing":"Yes","framework":["React","Vue"]}`,
		`{"frameworkUsing":"Yes","framework":["Vue","other"],"framework-Comment":"Svelte"}`,
		`{"frameworkUsing":"No","about":"Mostly backend"}`,
		`{}`,
	)

	results := ComputeTally(defaultQuestionnaire(t), responses)
	assert.Equal(t, 4, results.TotalResponses)

	byName := tallyByName(results)

	assert.Equal(t, 3, byName["frameworkUsing"].Answered)
	assert.Equal(t, map[string]int{"Yes": 2, "No": 1}, byName["frameworkUsing"].Counts)

	assert.Equal(t, 2, byName["framework"].Answered)
	assert.Equal(t, map[string]int{"React": 1, "Vue": 2, "Angular": 0, "jQuery": 0, "other": 1}, byName["framework"].Counts)
	assert.Equal(t, "What front-end framework do you use?", byName["framework"].Title)

	assert.Equal(t, 1, byName["about"].Answered)
	assert.Equal(t, map[string]int{"Mostly backend": 1}, byName["about"].Counts)

	assert.Equal(t, map[string]int{"Svelte": 1}, byName["framework-Comment"].Counts)
}

func TestComputeTally_UnknownQuestionsSortedAfterKnown(t *testing.T) {
	responses := responsesOf(
		`{"technology":["Vue","Node.js"],"favoriteColor":"green"}`,
		`{"favoriteColor":"red","technology":["Angular","TypeScript"]}`,
	)

	results := ComputeTally(defaultQuestionnaire(t), responses)

	var names []string
	for _, q := range results.Questions {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"frameworkUsing", "framework", "about", "favoriteColor", "technology"}, names)

	byName := tallyByName(results)
	assert.Equal(t, map[string]int{"green": 1, "red": 1}, byName["favoriteColor"].Counts)
	assert.Equal(t, 2, byName["technology"].Answered)
	assert.Equal(t, map[string]int{"Vue": 1, "Node.js": 1, "Angular": 1, "TypeScript": 1}, byName["technology"].Counts)
}

func TestComputeTally_ScalarsAndSkippedValues(t *testing.T) {
	responses := responsesOf(
		`{"rating":5,"subscribe":true,"profile":{"age":30},"skipped":null,"none":[]}`,
		`{"rating":4.5,"subscribe":false,"mixed":[1,"two",{"three":3},[4]]}`,
	)

	byName := tallyByName(ComputeTally(nil, responses))

	assert.Equal(t, map[string]int{"5": 1, "4.5": 1}, byName["rating"].Counts)
	assert.Equal(t, map[string]int{"true": 1, "false": 1}, byName["subscribe"].Counts)
	assert.Equal(t, map[string]int{"1": 1, "two": 1}, byName["mixed"].Counts)

	for _, skipped := range []string{"profile", "skipped", "none"} {
		_, ok := byName[skipped]
		assert.False(t, ok, "%s should not be tallied", skipped)
	}
}

func TestComputeTally_SkipsUndecodableData(t *testing.T) {
	responses := responsesOf(`{"frameworkUsing":"Yes"}`, `not json`)

	results := ComputeTally(defaultQuestionnaire(t), responses)
	assert.Equal(t, 2, results.TotalResponses)
	assert.Equal(t, 1, tallyByName(results)["frameworkUsing"].Counts["Yes"])
}

func TestGetResults(t *testing.T) {
	responseStore := store.NewResponseStore(testutil.SetupTestDB(t))
	ctx := context.Background()

	for _, data := range []string{
		`{"frameworkUsing":"Yes","framework":["React"]}`,
		`{"frameworkUsing":"No"}`,
	} {
		_, err := responseStore.Create(ctx, 1, json.RawMessage(data))
		require.NoError(t, err)
	}

	handler := NewResultsHandler(responseStore, defaultQuestionnaire(t))
	w := httptest.NewRecorder()
	handler.GetResults(w, testutil.MakeRequest("GET", "/results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	assert.Equal(t, 2, results.TotalResponses)
	assert.Equal(t, map[string]int{"Yes": 1, "No": 1}, tallyByName(results)["frameworkUsing"].Counts)
	assert.Equal(t, 1, tallyByName(results)["framework"].Counts["React"])
}

func TestGetResults_StoreFailure(t *testing.T) {
	handler := NewResultsHandler(failingStore{}, defaultQuestionnaire(t))

	w := httptest.NewRecorder()
	handler.GetResults(w, testutil.MakeRequest("GET", "/results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestGetSurvey(t *testing.T) {
	handler := NewResultsHandler(failingStore{}, defaultQuestionnaire(t))

	w := httptest.NewRecorder()
	handler.GetSurvey(w, testutil.MakeRequest("GET", "/survey", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var q survey.Questionnaire
	testutil.AssertJSON(t, w, &q)
	assert.Equal(t, "What technologies do you use?", q.Title)
	require.Len(t, q.Pages, 2)
	assert.Equal(t, "{frameworkUsing} = 'Yes'", q.Pages[0].Questions[1].VisibleIf)
}
