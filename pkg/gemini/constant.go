package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-pro"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// DefaultTemperature is the sampling temperature used for plan generation
	DefaultTemperature = 0.6

	// MIMETypeJSON asks the model for a raw JSON body.
	MIMETypeJSON = "application/json"
)
