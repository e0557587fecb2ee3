// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey API.

# Handler Types

Each handler is a struct built from its dependencies:

  - SurveyResponseHandler: submit and list survey responses
  - ResultsHandler: questionnaire and aggregated results

	responses := handlers.NewSurveyResponseHandler(responseStore)
	results := handlers.NewResultsHandler(responseStore, questionnaire)

Both accept any ResponseStore; store.ResponseStore is the real one.

# Submissions

	POST /survey-responses → Create
	GET  /survey-responses → List

Create must sit behind auth.RequireBearer. The stored userId always comes
from the verified token; a userId in the body is ignored. The body is
{"data": {...}} and data must be a JSON object.

# Results

	GET /results → GetResults
	GET /survey  → GetSurvey

ComputeTally counts answers per question:

	results := handlers.ComputeTally(questionnaire, responses)

Every choice the questionnaire lists appears in the counts, even at zero.
Answers to questions the questionnaire does not know are reported after the
known ones.
*/
package handlers
