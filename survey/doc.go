// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey defines the questionnaire served to the front end.

The default questionnaire is embedded from questions.yaml. Operators can
replace it with their own file:

	q, err := survey.Load(cfg.QuestionsFile)

Loading only checks that every question has a unique, non-empty name. The
rest of the question model (type, choices, visibleIf) is passed through to
the client untouched.
*/
package survey
