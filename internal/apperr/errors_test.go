package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/judge-bench/internal/apperr"
	"github.com/stretchr/testify/assert"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("no judges configured")

	assert.Equal(t, "no judges configured", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("yaml: line 3: mapping values are not allowed")
	err := apperr.NewValidationWrap("invalid experiment spec", inner)

	assert.Equal(t, "invalid experiment spec: yaml: line 3: mapping values are not allowed", err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("results are missing dimension impact")

	wrapped := fmt.Errorf("validate hypotheses: %w", original)
	doubleWrapped := fmt.Errorf("run experiment: %w", wrapped)

	var ve *apperr.ValidationError
	if assert.True(t, errors.As(doubleWrapped, &ve)) {
		assert.Equal(t, "results are missing dimension impact", ve.Message)
	}
	assert.True(t, apperr.IsValidation(doubleWrapped))
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("open data/llm_judge_results.json: permission denied")
	wrapped := fmt.Errorf("write report: %w", plain)

	assert.False(t, apperr.IsValidation(wrapped))
}
