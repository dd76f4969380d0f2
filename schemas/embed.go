// Package schemas ships the JSON Schema contracts for structured data
// exchanged with the model, embedded at compile time.
package schemas

import _ "embed"

// Assessment is the JSON Schema for validated model assessments.
//
//go:embed assessment.schema.json
var Assessment string
