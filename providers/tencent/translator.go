package tencent

import (
	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/violation"
)

// Tencent TMS label to unified-domain mapping, based on the TMS text
// moderation documentation.
var labelMappings = map[string]labelMapping{
	// Pornography
	"Porn":   {domain: "pornography", severity: 4},
	"Sexy":   {domain: "sexual_hint", severity: 2},
	"Sexual": {domain: "pornography", severity: 3},

	// Violence and extremism
	"Terror":   {domain: "violence", severity: 4},
	"Violence": {domain: "violence", severity: 3},

	// Abuse
	"Abuse":  {domain: "abuse", severity: 2},
	"Insult": {domain: "abuse", severity: 2},
	"Hate":   {domain: "hate_speech", severity: 3},

	// Spam & Ads
	"Ad":   {domain: "ads", severity: 1},
	"Spam": {domain: "spam", severity: 1},

	// Prohibited
	"Illegal":  {domain: "illegal", severity: 4},
	"Polity":   {domain: "illegal", severity: 3},
	"Politics": {domain: "illegal", severity: 3},

	// Fraud
	"Fraud": {domain: "fraud", severity: 3},

	// Minor safety
	"Minor": {domain: "minor_safety", severity: 4},

	// Pass labels
	"Normal": {domain: "", severity: 0},
	"Pass":   {domain: "", severity: 0},
}

type labelMapping struct {
	domain   string
	severity int
}

type translator struct {
	*violation.BaseTranslator
}

func newTranslator() violation.Translator {
	labelMap := make(map[string]violation.LabelMapping)

	for label, mapping := range labelMappings {
		if mapping.domain == "" {
			continue // Skip pass labels
		}

		labelMap[label] = violation.LabelMapping{
			Domain:     violation.Domain(mapping.domain),
			Severity:   moderation.RiskLevel(mapping.severity),
			Confidence: 0.9,
		}
	}

	return &translator{
		BaseTranslator: violation.NewBaseTranslator(providerName, labelMap),
	}
}
