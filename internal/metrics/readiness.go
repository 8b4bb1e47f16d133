package metrics

// Band is a readiness narrative band. Bands drive label and narrative
// selection only; no gating logic keys off them.
type Band string

// Readiness bands.
const (
	BandStrong     Band = "Strong"
	BandModerate   Band = "Moderate"
	BandDeveloping Band = "Developing"
	BandEarlyStage Band = "Early Stage"
)

// ReadinessBand maps a 0-100 readiness score to its band:
// >=80 Strong, 60-79 Moderate, 40-59 Developing, below Early Stage.
func ReadinessBand(score int) Band {
	switch {
	case score >= 80:
		return BandStrong
	case score >= 60:
		return BandModerate
	case score >= 40:
		return BandDeveloping
	default:
		return BandEarlyStage
	}
}
