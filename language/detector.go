package language

// DetectorConfig holds the tunable constants for language detection.
type DetectorConfig struct {
	// DiacriticWeight multiplies the diacritic-hit term of the score. A
	// single diacritic character (ọ, ẹ, ị, ụ, ɗ) is a much stronger
	// language signal than a common word shared across languages, so this
	// is well above the marker-word term's implicit weight of 1.
	DiacriticWeight float64

	// MinConfidence is the score below which detection returns the
	// "unknown" sentinel instead of a language guess.
	MinConfidence float64

	// TieEpsilon is the score margin within which two languages are
	// considered tied. Ties against English resolve to the non-English
	// candidate: code-switched devotional text should be attributed to
	// the regional language.
	TieEpsilon float64
}

// DefaultDetectorConfig returns the default detection constants.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		DiacriticWeight: 3.0,
		MinConfidence:   0.05,
		TieEpsilon:      0.02,
	}
}

// Detection is the result of detecting the language of a text.
type Detection struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"` // Clamped to [0,1]
}

// Detector scores text against every registered language signature and
// picks the best match. It is stateless and safe for concurrent use.
type Detector struct {
	registry *Registry
	config   DetectorConfig
}

// NewDetector creates a detector over the given registry with default
// configuration.
func NewDetector(registry *Registry) *Detector {
	return NewDetectorWithConfig(registry, DefaultDetectorConfig())
}

// NewDetectorWithConfig creates a detector with explicit constants.
func NewDetectorWithConfig(registry *Registry, config DetectorConfig) *Detector {
	if config.DiacriticWeight <= 0 {
		config.DiacriticWeight = DefaultDetectorConfig().DiacriticWeight
	}
	if config.MinConfidence <= 0 {
		config.MinConfidence = DefaultDetectorConfig().MinConfidence
	}
	if config.TieEpsilon <= 0 {
		config.TieEpsilon = DefaultDetectorConfig().TieEpsilon
	}
	return &Detector{registry: registry, config: config}
}

// Detect returns the best-matching language for text along with a
// confidence score in [0,1]. Empty text, and text containing no registry
// tokens at all, yield the "unknown" sentinel. Detect never fails.
func (d *Detector) Detect(text string) Detection {
	normalized := Normalize(text)
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Detection{Code: CodeUnknown, Name: NameUnknown, Confidence: 0}
	}

	charCount := 0
	for range normalized {
		charCount++
	}

	best := Detection{Code: CodeUnknown, Name: NameUnknown, Confidence: 0}
	bestScore := -1.0
	scores := make(map[string]float64, len(d.registry.order))

	for _, code := range d.registry.order {
		score := d.score(code, tokens, normalized, charCount)
		scores[code] = score
		if score > bestScore {
			bestScore = score
			best = Detection{Code: code, Name: d.registry.Name(code), Confidence: clamp01(score)}
		}
	}

	// Tie-break: within epsilon of an English top score, prefer the
	// strongest non-English candidate.
	if best.Code == CodeEnglish {
		runnerCode := ""
		runnerScore := -1.0
		for _, code := range d.registry.order {
			if code == CodeEnglish {
				continue
			}
			if scores[code] > runnerScore {
				runnerScore = scores[code]
				runnerCode = code
			}
		}
		if runnerCode != "" && bestScore-runnerScore <= d.config.TieEpsilon {
			bestScore = runnerScore
			best = Detection{Code: runnerCode, Name: d.registry.Name(runnerCode), Confidence: clamp01(runnerScore)}
		}
	}

	if bestScore < d.config.MinConfidence {
		// No real signal: never hand callers a confident label here.
		return Detection{Code: CodeUnknown, Name: NameUnknown, Confidence: clamp01(bestScore)}
	}

	return best
}

// score computes the weighted match score for one language:
// marker-word hits over token count, plus diacritic-character hits over
// character count scaled by DiacriticWeight.
func (d *Detector) score(code string, tokens []string, normalized string, charCount int) float64 {
	markerHits := 0
	for _, token := range tokens {
		if d.registry.isMarker(code, token) {
			markerHits++
		}
	}

	diacriticHits := 0
	for _, ch := range normalized {
		if d.registry.isDiacritic(code, ch) {
			diacriticHits++
		}
	}

	score := float64(markerHits) / float64(len(tokens))
	if charCount > 0 {
		score += float64(diacriticHits) / float64(charCount) * d.config.DiacriticWeight
	}
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
