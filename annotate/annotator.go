package annotate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wugsim/internal/rng"
	"github.com/katalvlaran/wugsim/wugraph"
)

// Config parameterizes an Annotator. See NewAnnotator for validation.
type Config struct {
	// ErrorSampler draws the noise magnitude applied to a true weight.
	ErrorSampler ErrorSampler
	// Lo, Hi bound the output Likert scale (typically 1, 4).
	Lo, Hi int
	// PMissing is the probability of abstaining regardless of the true weight.
	PMissing float64
	// SignPolicy decides which direction the error is applied.
	SignPolicy SignPolicy
}

// Annotator produces a (possibly noisy) judgement of a ground-truth
// edge weight.
type Annotator struct {
	cfg Config
	rng *rng.Rand
}

// NewAnnotator validates cfg and constructs an Annotator seeded by seed.
// Fails fast: PMissing out of [0,1] or Lo >= Hi return ErrInvalidConfig.
func NewAnnotator(cfg Config, seed int64) (*Annotator, error) {
	if cfg.PMissing < 0 || cfg.PMissing > 1 {
		return nil, fmt.Errorf("%w: PMissing=%v must be in [0,1]", ErrInvalidConfig, cfg.PMissing)
	}
	if cfg.Lo >= cfg.Hi {
		return nil, fmt.Errorf("%w: Lo=%d must be < Hi=%d", ErrInvalidConfig, cfg.Lo, cfg.Hi)
	}
	if cfg.ErrorSampler == nil {
		return nil, fmt.Errorf("%w: ErrorSampler must not be nil", ErrInvalidConfig)
	}

	return &Annotator{cfg: cfg, rng: rng.New(seed)}, nil
}

// Judge produces a judgement for a ground-truth edge whose true weight
// is (t, ok). If ok is false (no comparison exists), Judge always
// returns wugraph.MissingJudgement.
//
// Otherwise:
//  1. With probability PMissing, return MISSING.
//  2. Draw e from the error sampler.
//  3. Apply e to round(t) per SignPolicy, then clamp to [Lo, Hi].
func (a *Annotator) Judge(t float64, ok bool) wugraph.Judgement {
	if !ok {
		return wugraph.MissingJudgement
	}
	if a.rng.Float64() < a.cfg.PMissing {
		return wugraph.MissingJudgement
	}

	errMag := a.cfg.ErrorSampler.Sample()
	base := int(math.Round(t))

	var signed int
	switch a.cfg.SignPolicy {
	case SignTowardCenter:
		// Compare against the exact midpoint (Lo+Hi)/2 without integer
		// truncation, so a base of 2 on a 1-4 scale moves up toward 2.5.
		if 2*base < a.cfg.Lo+a.cfg.Hi {
			signed = base + errMag
		} else {
			signed = base - errMag
		}
	default: // SignRandom
		if a.rng.Intn(2) == 0 {
			signed = base + errMag
		} else {
			signed = base - errMag
		}
	}

	if signed < a.cfg.Lo {
		signed = a.cfg.Lo
	}
	if signed > a.cfg.Hi {
		signed = a.cfg.Hi
	}

	return wugraph.ValueJudgement(float64(signed))
}
