package app

import "errors"

var (
	errDescriptionRequired = errors.New(
		"please provide a description for the session",
	)

	errIndexRequired = errors.New(
		"please provide a valid session number",
	)

	errNothingToResume = errors.New(
		"there are no sessions to resume",
	)
)
