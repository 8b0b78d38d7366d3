// Package violation provides unified violation categories that abstract
// away differences between cloud screening providers. The rule engine
// produces approval flags on its own; these domains exist so that cloud
// provider labels can be merged into one decision vocabulary.
package violation

import moderation "github.com/gospelwave/moderation"

// Domain represents a high-level violation category. Platform-agnostic;
// used for decision making when a cloud screen reports a hit.
type Domain string

const (
	DomainPornography Domain = "pornography"
	DomainSexualHint  Domain = "sexual_hint"
	DomainViolence    Domain = "violence"
	DomainIllegal     Domain = "illegal"
	DomainFraud       Domain = "fraud"
	DomainHateSpeech  Domain = "hate_speech"
	DomainAbuse       Domain = "abuse"
	DomainMinorSafety Domain = "minor_safety"
	DomainSpam        Domain = "spam"
	DomainAds         Domain = "ads"
	DomainOther       Domain = "other"
)

// DomainInfo provides metadata about a violation domain.
type DomainInfo struct {
	Domain      Domain
	Name        string
	Description string
	DefaultRisk moderation.RiskLevel
}

// DomainRegistry maps domains to their metadata.
var DomainRegistry = map[Domain]DomainInfo{
	DomainPornography: {
		Domain:      DomainPornography,
		Name:        "Pornography",
		Description: "Sexually explicit content",
		DefaultRisk: moderation.RiskSevere,
	},
	DomainSexualHint: {
		Domain:      DomainSexualHint,
		Name:        "Sexual Hint",
		Description: "Suggestive or sexually implicit content",
		DefaultRisk: moderation.RiskMedium,
	},
	DomainViolence: {
		Domain:      DomainViolence,
		Name:        "Violence",
		Description: "Violent or graphic content",
		DefaultRisk: moderation.RiskHigh,
	},
	DomainIllegal: {
		Domain:      DomainIllegal,
		Name:        "Illegal",
		Description: "Content promoting illegal activities",
		DefaultRisk: moderation.RiskSevere,
	},
	DomainFraud: {
		Domain:      DomainFraud,
		Name:        "Fraud",
		Description: "Fraudulent or deceptive content",
		DefaultRisk: moderation.RiskHigh,
	},
	DomainHateSpeech: {
		Domain:      DomainHateSpeech,
		Name:        "Hate Speech",
		Description: "Hateful or discriminatory content",
		DefaultRisk: moderation.RiskHigh,
	},
	DomainAbuse: {
		Domain:      DomainAbuse,
		Name:        "Abuse",
		Description: "Abusive content",
		DefaultRisk: moderation.RiskHigh,
	},
	DomainMinorSafety: {
		Domain:      DomainMinorSafety,
		Name:        "Minor Safety",
		Description: "Content endangering minors",
		DefaultRisk: moderation.RiskSevere,
	},
	DomainSpam: {
		Domain:      DomainSpam,
		Name:        "Spam",
		Description: "Spam or unsolicited content",
		DefaultRisk: moderation.RiskLow,
	},
	DomainAds: {
		Domain:      DomainAds,
		Name:        "Ads",
		Description: "Unauthorized advertising",
		DefaultRisk: moderation.RiskLow,
	},
	DomainOther: {
		Domain:      DomainOther,
		Name:        "Other",
		Description: "Other violations",
		DefaultRisk: moderation.RiskLow,
	},
}

// GetDomainInfo returns the metadata for a domain.
func GetDomainInfo(d Domain) DomainInfo {
	if info, ok := DomainRegistry[d]; ok {
		return info
	}
	return DomainRegistry[DomainOther]
}
