package zerror

// Kind classifies a failed check.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindStructuralMismatch: a required key is missing or has the wrong type.
	KindStructuralMismatch
	// KindConstraintViolation: a present field is outside its documented domain.
	KindConstraintViolation
	// KindProjectionViolation: a field selection returned extra or missing fields.
	KindProjectionViolation
	// KindRelevanceViolation: a search hit does not contain the query.
	KindRelevanceViolation
	// KindTimingViolation: latency exceeded the configured ceiling.
	KindTimingViolation
)

func (k Kind) String() string {
	switch k {
	case KindStructuralMismatch:
		return "StructuralMismatch"
	case KindConstraintViolation:
		return "ConstraintViolation"
	case KindProjectionViolation:
		return "ProjectionViolation"
	case KindRelevanceViolation:
		return "RelevanceViolation"
	case KindTimingViolation:
		return "TimingViolation"
	default:
		return "Unknown"
	}
}
