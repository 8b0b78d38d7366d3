package violation

import moderation "github.com/gospelwave/moderation"

// Unified represents a platform-agnostic violation reported by a screen.
type Unified struct {
	Domain          Domain               `json:"domain"`
	Severity        moderation.RiskLevel `json:"severity"`
	Confidence      float64              `json:"confidence"`
	SourceProviders []string             `json:"source_providers"`
	OriginalLabels  []string             `json:"original_labels"`
}

// UnifiedList is a collection of unified violations.
type UnifiedList []Unified

// HighestSeverity returns the highest severity in the list.
func (ul UnifiedList) HighestSeverity() moderation.RiskLevel {
	highest := moderation.RiskLow
	for _, v := range ul {
		if v.Severity > highest {
			highest = v.Severity
		}
	}
	return highest
}

// HasDomain checks if any violation has the given domain.
func (ul UnifiedList) HasDomain(d Domain) bool {
	for _, v := range ul {
		if v.Domain == d {
			return true
		}
	}
	return false
}

// Decide converts violations to a pipeline decision: severe and high risk
// block outright, medium and low risk queue for human review, an empty
// list passes.
func (ul UnifiedList) Decide() moderation.Decision {
	if len(ul) == 0 {
		return moderation.DecisionPass
	}
	switch ul.HighestSeverity() {
	case moderation.RiskSevere, moderation.RiskHigh:
		return moderation.DecisionBlock
	default:
		return moderation.DecisionReview
	}
}

// Reasons converts the list to review reasons for logging and storage.
func (ul UnifiedList) Reasons() []moderation.Reason {
	var reasons []moderation.Reason
	for _, v := range ul {
		reasons = append(reasons, moderation.Reason{
			Code:     string(v.Domain),
			Message:  GetDomainInfo(v.Domain).Description,
			Provider: firstOrEmpty(v.SourceProviders),
			HitTags:  append([]string(nil), v.OriginalLabels...),
		})
	}
	return reasons
}

func firstOrEmpty(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}
