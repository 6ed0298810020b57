package service

import (
	"strings"
	"testing"

	"brightforge/internal/catalog"
	"brightforge/internal/domain"
)

func midTierProfile() domain.BusinessProfile {
	return domain.BusinessProfile{
		UserID:          "user-1",
		PreferredBudget: "$5,000 - $15,000",
		CompanySize:     "11-50",
		Industry:        "technology",
		ProjectTimeline: "3-6 months",
		BusinessGoals:   "growth and automation",
		FirstName:       "Dana",
		Company:         "Acme Labs",
	}
}

func TestScorePackageAlwaysInRange(t *testing.T) {
	profiles := []domain.BusinessProfile{
		{},
		midTierProfile(),
		{PreferredBudget: "$100,000+", CompanySize: "1000+", Industry: "finance", ProjectTimeline: "12+ months", BusinessGoals: "scale security compliance integration"},
		{PreferredBudget: "nonsense bracket", CompanySize: "weird", Industry: "underwater basket weaving", ProjectTimeline: "someday", BusinessGoals: "???"},
	}

	for _, profile := range profiles {
		for _, pkg := range catalog.Packages {
			score := ScorePackage(profile, pkg)
			if score < 0 || score > 100 {
				t.Fatalf("score out of range for package %s: %d", pkg.ID, score)
			}
		}
	}
}

func TestScorePackageAllUnknownIsNeutral(t *testing.T) {
	for _, pkg := range catalog.Packages {
		score := ScorePackage(domain.BusinessProfile{}, pkg)
		if score != 50 {
			t.Fatalf("expected neutral score 50 for package %s, got %d", pkg.ID, score)
		}
	}
}

func TestScorePackageDeterministic(t *testing.T) {
	profile := midTierProfile()
	for _, pkg := range catalog.Packages {
		first := ScorePackage(profile, pkg)
		for i := 0; i < 10; i++ {
			if got := ScorePackage(profile, pkg); got != first {
				t.Fatalf("non-deterministic score for package %s: %d then %d", pkg.ID, first, got)
			}
		}
	}
}

func TestScoreBudgetNoOverlapIsZero(t *testing.T) {
	pkg := domain.PackageDefinition{TargetBudget: domain.BudgetRange{Min: 50000, Max: 100000}}
	if got := scoreBudget("Under $5,000", pkg); got != 0 {
		t.Fatalf("expected zero for disjoint ranges, got %f", got)
	}
}

func TestScoreBudgetExactBracketIsFull(t *testing.T) {
	pkg := domain.PackageDefinition{TargetBudget: domain.BudgetRange{Min: 5000, Max: 15000}}
	if got := scoreBudget("$5,000 - $15,000", pkg); got != 1 {
		t.Fatalf("expected full budget score, got %f", got)
	}
}

func TestSubScoresDefaultToNeutralWhenAbsent(t *testing.T) {
	pkg := catalog.Packages[1]
	if got := scoreBudget("", pkg); got != neutralScore {
		t.Fatalf("budget: expected %f, got %f", neutralScore, got)
	}
	if got := scoreCompanySize("", pkg); got != neutralScore {
		t.Fatalf("company size: expected %f, got %f", neutralScore, got)
	}
	if got := scoreTimeline("", pkg); got != neutralScore {
		t.Fatalf("timeline: expected %f, got %f", neutralScore, got)
	}
	if got := scoreIndustry("", pkg); got != neutralScore {
		t.Fatalf("industry: expected %f, got %f", neutralScore, got)
	}
	if got := scoreGoals("", pkg); got != neutralScore {
		t.Fatalf("goals: expected %f, got %f", neutralScore, got)
	}
}

func TestScoreCompanySizeUnknownTokenFallsBackToLiteral(t *testing.T) {
	pkg := domain.PackageDefinition{TargetCompanySizes: []string{"enterprise"}}
	if got := scoreCompanySize("Enterprise", pkg); got != 1 {
		t.Fatalf("expected literal fallback to match, got %f", got)
	}
	if got := scoreCompanySize("tiny shop", pkg); got != 0 {
		t.Fatalf("expected literal fallback miss, got %f", got)
	}
}

func TestScoreIndustryBidirectionalSubstring(t *testing.T) {
	pkg := domain.PackageDefinition{TargetIndustries: []string{"technology"}}
	if got := scoreIndustry("Tech", pkg); got != 1 {
		t.Fatalf("expected substring match user⊂target, got %f", got)
	}
	if got := scoreIndustry("financial technology consulting", pkg); got != 1 {
		t.Fatalf("expected substring match target⊂user, got %f", got)
	}
	if got := scoreIndustry("agriculture", pkg); got != 0 {
		t.Fatalf("expected miss, got %f", got)
	}
}

func TestScoreGoalsPartialCredit(t *testing.T) {
	pkg := domain.PackageDefinition{TargetKeywords: []string{"growth", "automation", "marketing", "leads"}}
	got := scoreGoals("growth and automation", pkg)
	if got != 0.5 {
		t.Fatalf("expected 2/4 keywords = 0.5, got %f", got)
	}
}

func TestRecommendTieBreakPrefersFirstDeclared(t *testing.T) {
	// Perfil vacío: los tres paquetes empatan en 50, debe ganar el primero.
	result := Recommend(domain.BusinessProfile{})
	if result.PackageID != catalog.Packages[0].ID {
		t.Fatalf("expected first-declared package %s on tie, got %s", catalog.Packages[0].ID, result.PackageID)
	}
	if result.Score != 50 {
		t.Fatalf("expected tie score 50, got %d", result.Score)
	}
}

func TestRecommendMidTierProfileEndToEnd(t *testing.T) {
	result := Recommend(midTierProfile())

	if result.PackageID != "growth-accelerator" {
		t.Fatalf("expected growth-accelerator, got %s", result.PackageID)
	}
	if result.Score < 70 {
		t.Fatalf("expected score >= 70, got %d", result.Score)
	}
	if len(result.Factors) != 5 {
		t.Fatalf("expected 5 factors, got %d", len(result.Factors))
	}

	weights := map[string]int{
		"budget":       30,
		"company_size": 25,
		"timeline":     20,
		"industry":     15,
		"goals":        10,
	}
	for _, factor := range result.Factors {
		want, ok := weights[factor.Factor]
		if !ok {
			t.Fatalf("unexpected factor %s", factor.Factor)
		}
		if factor.Weight != want {
			t.Fatalf("factor %s: expected weight %d, got %d", factor.Factor, want, factor.Weight)
		}
		if factor.Impact != factor.Value*float64(factor.Weight) {
			t.Fatalf("factor %s: impact %f does not match value %f * weight %d", factor.Factor, factor.Impact, factor.Value, factor.Weight)
		}
	}
}

func TestBuildReasonClausesFollowImpactThreshold(t *testing.T) {
	result := Recommend(midTierProfile())

	// Presupuesto (30) y tamaño (25) superan los 15 puntos: sus cláusulas
	// deben aparecer. Goals aporta 5 puntos: la suya no.
	if !strings.Contains(result.Reason, reasonClauses["budget"]) {
		t.Fatalf("expected budget clause in reason: %s", result.Reason)
	}
	if !strings.Contains(result.Reason, reasonClauses["company_size"]) {
		t.Fatalf("expected company size clause in reason: %s", result.Reason)
	}
	if strings.Contains(result.Reason, reasonClauses["goals"]) {
		t.Fatalf("goals clause should not appear below threshold: %s", result.Reason)
	}
	if !strings.Contains(result.Reason, `"growth and automation"`) {
		t.Fatalf("expected goals quoted back in reason: %s", result.Reason)
	}
	if !strings.Contains(result.Reason, "Dana") {
		t.Fatalf("expected first name in reason: %s", result.Reason)
	}
}

func TestBuildReasonWithoutGoalsSkipsQuote(t *testing.T) {
	profile := midTierProfile()
	profile.BusinessGoals = ""
	result := Recommend(profile)

	if strings.Contains(result.Reason, "You mentioned") {
		t.Fatalf("expected no goals quote for empty goals: %s", result.Reason)
	}
}
