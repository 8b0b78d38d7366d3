package violation

import (
	"testing"

	moderation "github.com/gospelwave/moderation"
)

func TestUnifiedList_Decide(t *testing.T) {
	tests := []struct {
		name string
		list UnifiedList
		want moderation.Decision
	}{
		{
			name: "empty passes",
			list: nil,
			want: moderation.DecisionPass,
		},
		{
			name: "severe blocks",
			list: UnifiedList{{Domain: DomainPornography, Severity: moderation.RiskSevere}},
			want: moderation.DecisionBlock,
		},
		{
			name: "high blocks",
			list: UnifiedList{{Domain: DomainViolence, Severity: moderation.RiskHigh}},
			want: moderation.DecisionBlock,
		},
		{
			name: "medium reviews",
			list: UnifiedList{{Domain: DomainSexualHint, Severity: moderation.RiskMedium}},
			want: moderation.DecisionReview,
		},
		{
			name: "low reviews",
			list: UnifiedList{{Domain: DomainAds, Severity: moderation.RiskLow}},
			want: moderation.DecisionReview,
		},
		{
			name: "highest severity wins",
			list: UnifiedList{
				{Domain: DomainAds, Severity: moderation.RiskLow},
				{Domain: DomainIllegal, Severity: moderation.RiskSevere},
			},
			want: moderation.DecisionBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Decide(); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnifiedList_HighestSeverity(t *testing.T) {
	list := UnifiedList{
		{Domain: DomainAds, Severity: moderation.RiskLow},
		{Domain: DomainFraud, Severity: moderation.RiskHigh},
		{Domain: DomainSexualHint, Severity: moderation.RiskMedium},
	}

	if got := list.HighestSeverity(); got != moderation.RiskHigh {
		t.Errorf("HighestSeverity() = %v, want RiskHigh", got)
	}

	var empty UnifiedList
	if got := empty.HighestSeverity(); got != moderation.RiskLow {
		t.Errorf("HighestSeverity() on empty = %v, want RiskLow", got)
	}
}

func TestUnifiedList_HasDomain(t *testing.T) {
	list := UnifiedList{
		{Domain: DomainSpam},
		{Domain: DomainFraud},
	}

	if !list.HasDomain(DomainFraud) {
		t.Error("HasDomain(fraud) = false, want true")
	}
	if list.HasDomain(DomainViolence) {
		t.Error("HasDomain(violence) = true, want false")
	}
}

func TestUnifiedList_Reasons(t *testing.T) {
	list := UnifiedList{
		{
			Domain:          DomainFraud,
			Severity:        moderation.RiskHigh,
			SourceProviders: []string{"tencent"},
			OriginalLabels:  []string{"Fraud"},
		},
	}

	reasons := list.Reasons()
	if len(reasons) != 1 {
		t.Fatalf("len(Reasons()) = %d, want 1", len(reasons))
	}

	r := reasons[0]
	if r.Code != string(DomainFraud) {
		t.Errorf("Code = %q, want %q", r.Code, DomainFraud)
	}
	if r.Provider != "tencent" {
		t.Errorf("Provider = %q, want tencent", r.Provider)
	}
	if r.Message == "" {
		t.Error("Message is empty")
	}
	if len(r.HitTags) != 1 || r.HitTags[0] != "Fraud" {
		t.Errorf("HitTags = %v, want [Fraud]", r.HitTags)
	}
}

func TestGetDomainInfo_UnknownFallsBackToOther(t *testing.T) {
	info := GetDomainInfo(Domain("nonexistent"))
	if info.Domain != DomainOther {
		t.Errorf("GetDomainInfo(unknown).Domain = %q, want %q", info.Domain, DomainOther)
	}
}
