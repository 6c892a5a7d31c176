package surf

import (
	"context"

	"github.com/arikatz123/SurfScout/internal/models"
)

// Fallback explanations carried inside an Assessment when no real score
// could be produced. The UI renders these as warnings instead of a score.
const (
	ExplanationKeyRequired  = "OpenAI API key is required for surf quality assessment."
	ExplanationAssessFailed = "Could not assess surf quality due to an error with the OpenAI API."
)

// Assessor scores surf conditions for a named beach. Implementations must
// always return a usable Assessment: on failure the score is absent and the
// explanation holds a human-readable reason, with the error describing the
// underlying cause for diagnostics.
type Assessor interface {
	Assess(ctx context.Context, conditions models.Conditions, beachName string) (models.Assessment, error)
}
