package models

// ScoreBand buckets a surf quality score for display purposes.
type ScoreBand string

const (
	BandExcellent ScoreBand = "Excellent" // score >= 7
	BandDecent    ScoreBand = "Decent"    // score >= 4
	BandPoor      ScoreBand = "Poor"      // score < 4
)

// Assessment is the language-model verdict for a Conditions record. A nil
// Score signals an unrecoverable upstream failure, in which case Explanation
// carries the reason instead of surf commentary.
type Assessment struct {
	Score       *float64
	Explanation string
}

// HasScore reports whether the assessment produced a usable score.
func (a Assessment) HasScore() bool {
	return a.Score != nil
}

// Band returns the display band for the score. Only meaningful when
// HasScore() is true; an absent score maps to BandPoor.
func (a Assessment) Band() ScoreBand {
	if a.Score == nil {
		return BandPoor
	}
	switch {
	case *a.Score >= 7:
		return BandExcellent
	case *a.Score >= 4:
		return BandDecent
	default:
		return BandPoor
	}
}
