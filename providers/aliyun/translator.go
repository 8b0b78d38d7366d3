package aliyun

import (
	moderation "github.com/gospelwave/moderation"
	"github.com/gospelwave/moderation/violation"
)

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
