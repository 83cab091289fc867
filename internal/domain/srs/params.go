package srs

// Params defines all configurable parameters for the SRS transition rules.
type Params struct {
	// MinFactor is the floor applied after any factor decrease. A factor is
	// never lowered past this value, only raised above it by easy reviews.
	MinFactor float64

	// Factor adjustments for the different recall signals.
	HardFactorPenalty    float64 // subtracted on a hard (wrong) review
	PartialFactorPenalty float64 // subtracted on a partial recall
	EasyFactorBonus      float64 // added on an effortless review

	// PartialMultiplier is the interval growth applied on partial recall,
	// deliberately smaller than any ease factor.
	PartialMultiplier float64
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values mean "keep the default".
type ParamsConfig struct {
	MinFactor            float64
	HardFactorPenalty    float64
	PartialFactorPenalty float64
	EasyFactorBonus      float64
	PartialMultiplier    float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinFactor: 1.30,

		HardFactorPenalty:    0.20,
		PartialFactorPenalty: 0.15,
		EasyFactorBonus:      0.15,

		PartialMultiplier: 1.2,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinFactor > 0 {
		params.MinFactor = config.MinFactor
	}
	if config.HardFactorPenalty > 0 {
		params.HardFactorPenalty = config.HardFactorPenalty
	}
	if config.PartialFactorPenalty > 0 {
		params.PartialFactorPenalty = config.PartialFactorPenalty
	}
	if config.EasyFactorBonus > 0 {
		params.EasyFactorBonus = config.EasyFactorBonus
	}
	if config.PartialMultiplier > 0 {
		params.PartialMultiplier = config.PartialMultiplier
	}

	return params
}
