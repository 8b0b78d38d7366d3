package violation

import moderation "github.com/gospelwave/moderation"

// Translator translates provider-specific labels to unified violations.
type Translator interface {
	// Provider returns the provider name this translator handles.
	Provider() string

	// Translate converts provider-specific labels to unified violations.
	// scores carries per-label confidence when the provider reports one.
	Translate(labels []string, scores map[string]float64) UnifiedList
}

// LabelMapping maps a provider label to a unified domain.
type LabelMapping struct {
	Domain     Domain
	Severity   moderation.RiskLevel
	Confidence float64 // Default confidence if the provider reports none
}

// BaseTranslator provides common translation over a static label map.
type BaseTranslator struct {
	providerName string
	labelMap     map[string]LabelMapping
}

// NewBaseTranslator creates a new base translator.
func NewBaseTranslator(provider string, labelMap map[string]LabelMapping) *BaseTranslator {
	return &BaseTranslator{
		providerName: provider,
		labelMap:     labelMap,
	}
}

// Provider returns the provider name.
func (t *BaseTranslator) Provider() string {
	return t.providerName
}

// Translate converts labels to unified violations. Unknown labels map to
// DomainOther at low risk rather than being dropped, so a new provider
// label never silently passes.
func (t *BaseTranslator) Translate(labels []string, scores map[string]float64) UnifiedList {
	var violations UnifiedList

	for _, label := range labels {
		mapping, ok := t.labelMap[label]
		if !ok {
			violations = append(violations, Unified{
				Domain:          DomainOther,
				Severity:        moderation.RiskLow,
				Confidence:      0.5,
				SourceProviders: []string{t.providerName},
				OriginalLabels:  []string{label},
			})
			continue
		}

		confidence := mapping.Confidence
		if score, ok := scores[label]; ok {
			confidence = score
		}

		violations = append(violations, Unified{
			Domain:          mapping.Domain,
			Severity:        mapping.Severity,
			Confidence:      confidence,
			SourceProviders: []string{t.providerName},
			OriginalLabels:  []string{label},
		})
	}

	return violations
}

// Merge merges violations from multiple providers, collapsing duplicates
// per domain onto the higher severity and confidence.
func Merge(lists ...UnifiedList) UnifiedList {
	domainMap := make(map[Domain]*Unified)
	var order []Domain

	for _, list := range lists {
		for _, v := range list {
			if existing, ok := domainMap[v.Domain]; ok {
				if v.Severity > existing.Severity {
					existing.Severity = v.Severity
				}
				if v.Confidence > existing.Confidence {
					existing.Confidence = v.Confidence
				}
				existing.SourceProviders = mergeStrings(existing.SourceProviders, v.SourceProviders)
				existing.OriginalLabels = mergeStrings(existing.OriginalLabels, v.OriginalLabels)
			} else {
				copied := v
				domainMap[v.Domain] = &copied
				order = append(order, v.Domain)
			}
		}
	}

	result := make(UnifiedList, 0, len(order))
	for _, d := range order {
		result = append(result, *domainMap[d])
	}
	return result
}

func mergeStrings(a, b []string) []string {
	seen := make(map[string]bool)
	for _, s := range a {
		seen[s] = true
	}
	result := append([]string{}, a...)
	for _, s := range b {
		if !seen[s] {
			result = append(result, s)
		}
	}
	return result
}
