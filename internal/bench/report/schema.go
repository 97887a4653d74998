package report

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/results.schema.json
var resultsSchema []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resultsSchema))
})

// ValidateDocument checks serialized results against the embedded schema.
func ValidateDocument(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load results schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate results: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return apperr.NewValidation("results do not match schema: " + strings.Join(msgs, "; "))
}
