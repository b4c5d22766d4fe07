package pricing

// Effect value formula constants
const (
	// MagnitudeExponent scales magnitude super-linearly
	MagnitudeExponent = 1.5
	// DurationDivisor converts seconds into the duration factor
	DurationDivisor = 10.0
)
