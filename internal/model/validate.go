package model

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchemaJSON string

var resumeSchema = gojsonschema.NewStringLoader(resumeSchemaJSON)

// ErrInvalidRecord is returned (wrapped) when a record does not match the resume schema.
var ErrInvalidRecord = errors.New("invalid resume record")

// ValidateRecord checks a decoded record against the embedded resume schema.
// Only field types and the required, non-blank name/email are checked; dates and skill
// levels are free text.
func ValidateRecord(rec ResumeRecord) error {
	return validate(gojsonschema.NewGoLoader(rec))
}

// ValidateJSON checks a raw request body before it is decoded, so type
// mismatches are reported per field instead of as a decode failure.
func ValidateJSON(raw []byte) error {
	return validate(gojsonschema.NewBytesLoader(raw))
}

func validate(doc gojsonschema.JSONLoader) error {
	res, err := gojsonschema.Validate(resumeSchema, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(msgs, "; "))
}
