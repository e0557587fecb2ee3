// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateSurveyResponseRequest: data (arbitrary JSON object)

# Response Types

Types for JSON responses:

  - ListSurveyResponsesResponse: surveyResponses
  - ResultsResponse: totalResponses, questions (per-question answer counts)
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - SurveyResponse: id, userId, data, createdAt, updatedAt

Field names are camelCase on the wire to match the survey front end.
SurveyResponse.Data is kept as raw JSON so answers round-trip exactly as
submitted.
*/
package models
