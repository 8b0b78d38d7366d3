// Package aliyun provides an Alibaba Cloud text moderation screen for the
// provider pipeline.
package aliyun

import (
	"time"

	"github.com/gospelwave/moderation/providers"
)

// Config holds the configuration for the Aliyun provider.
type Config struct {
	providers.ProviderConfig

	// Service is the detection service for the Aliyun Green SDK text API.
	Service string
}

// DefaultConfig returns the default Aliyun configuration.
func DefaultConfig() Config {
	return Config{
		ProviderConfig: providers.ProviderConfig{
			Region:   "cn-shanghai",
			Endpoint: "green-cip.cn-shanghai.aliyuncs.com",
			Timeout:  30 * time.Second,
		},
		Service: "comment_detection",
	}
}

// Aliyun text label to unified-domain mapping, based on the Aliyun Green
// SDK text documentation.
var labelMappings = map[string]labelMapping{
	// Pornography
	"porn":          {domain: "pornography", severity: 4},
	"sexy":          {domain: "sexual_hint", severity: 2},
	"sexual":        {domain: "pornography", severity: 3},
	"adult_content": {domain: "pornography", severity: 4},

	// Violence
	"violence":  {domain: "violence", severity: 3},
	"bloody":    {domain: "violence", severity: 3},
	"terrorism": {domain: "violence", severity: 4},

	// Prohibited
	"contraband": {domain: "illegal", severity: 4},
	"drug":       {domain: "illegal", severity: 4},
	"weapon":     {domain: "illegal", severity: 3},

	// Spam & Ads
	"spam":         {domain: "spam", severity: 1},
	"ad":           {domain: "ads", severity: 1},
	"contact_info": {domain: "spam", severity: 2},
	"promotion":    {domain: "ads", severity: 1},
	"meaningless":  {domain: "spam", severity: 1},

	// Fraud
	"fraud":    {domain: "fraud", severity: 3},
	"gambling": {domain: "fraud", severity: 3},

	// Abuse
	"abuse":          {domain: "abuse", severity: 2},
	"insult":         {domain: "abuse", severity: 2},
	"hate":           {domain: "hate_speech", severity: 3},
	"discrimination": {domain: "hate_speech", severity: 3},

	// Minor safety
	"minor_sexual": {domain: "minor_safety", severity: 4},
	"child_abuse":  {domain: "minor_safety", severity: 4},

	// Pass labels
	"normal":   {domain: "", severity: 0},
	"nonLabel": {domain: "", severity: 0},
}

type labelMapping struct {
	domain   string
	severity int
}
