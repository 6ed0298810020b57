package service

import (
	"fmt"
	"math"
	"strings"

	"brightforge/internal/catalog"
	"brightforge/internal/domain"
)

// Pesos de los cinco factores del scorer. Expresados en puntos absolutos
// suman 100; como fracciones ponderan los sub-puntajes [0,1].
const (
	weightBudget      = 30
	weightCompanySize = 25
	weightTimeline    = 20
	weightIndustry    = 15
	weightGoals       = 10
)

// neutralScore es el sub-puntaje asignado cuando el campo del perfil está
// ausente: la falta de datos nunca castiga ni premia a un paquete.
const neutralScore = 0.5

// timelineToleranceMonths es la distancia máxima en meses para considerar
// compatible el plazo del usuario con un plazo objetivo del paquete.
const timelineToleranceMonths = 3

// ScorePackage calcula el puntaje de aptitud [0,100] de un paquete para un
// perfil de negocio. Pura y determinista; jamás falla por datos faltantes.
func ScorePackage(profile domain.BusinessProfile, pkg domain.PackageDefinition) int {
	total := scoreBudget(profile.PreferredBudget, pkg)*float64(weightBudget) +
		scoreCompanySize(profile.CompanySize, pkg)*float64(weightCompanySize) +
		scoreTimeline(profile.ProjectTimeline, pkg)*float64(weightTimeline) +
		scoreIndustry(profile.Industry, pkg)*float64(weightIndustry) +
		scoreGoals(profile.BusinessGoals, pkg)*float64(weightGoals)

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	return score
}

func scoreBudget(budgetLabel string, pkg domain.PackageDefinition) float64 {
	userRange, ok := catalog.BudgetBrackets[strings.TrimSpace(budgetLabel)]
	if !ok {
		return neutralScore
	}
	pkgSize := pkg.TargetBudget.Size()
	if pkgSize <= 0 {
		return 0
	}

	low := userRange.Min
	if pkg.TargetBudget.Min > low {
		low = pkg.TargetBudget.Min
	}
	high := userRange.Max
	if pkg.TargetBudget.Max < high {
		high = pkg.TargetBudget.Max
	}
	overlap := high - low
	if overlap <= 0 {
		return 0
	}

	score := float64(overlap) / float64(pkgSize)
	if score > 1 {
		score = 1
	}
	return score
}

func scoreCompanySize(sizeToken string, pkg domain.PackageDefinition) float64 {
	token := strings.TrimSpace(sizeToken)
	if token == "" {
		return neutralScore
	}

	categories, ok := catalog.CompanySizeCategories[token]
	if !ok {
		categories = []string{strings.ToLower(token)}
	}
	for _, category := range categories {
		for _, target := range pkg.TargetCompanySizes {
			if substringMatch(category, target) {
				return 1
			}
		}
	}
	return 0
}

func scoreTimeline(timelineLabel string, pkg domain.PackageDefinition) float64 {
	userMonths, ok := catalog.TimelineMonths[strings.TrimSpace(timelineLabel)]
	if !ok {
		return neutralScore
	}
	for _, target := range pkg.TargetTimelines {
		targetMonths, ok := catalog.TimelineMonths[target]
		if !ok {
			continue
		}
		if math.Abs(targetMonths-userMonths) <= timelineToleranceMonths {
			return 1
		}
	}
	return 0
}

func scoreIndustry(industry string, pkg domain.PackageDefinition) float64 {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return neutralScore
	}
	for _, target := range pkg.TargetIndustries {
		if substringMatch(industry, target) {
			return 1
		}
	}
	return 0
}

func scoreGoals(goals string, pkg domain.PackageDefinition) float64 {
	goals = strings.TrimSpace(goals)
	if goals == "" {
		return neutralScore
	}
	if len(pkg.TargetKeywords) == 0 {
		return 0
	}

	lowered := strings.ToLower(goals)
	found := 0
	for _, keyword := range pkg.TargetKeywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			found++
		}
	}
	return float64(found) / float64(len(pkg.TargetKeywords))
}

// substringMatch compara dos términos por inclusión bidireccional, sin
// distinguir mayúsculas.
func substringMatch(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Recommend evalúa el catálogo completo y arma la recomendación. El mejor
// puntaje se busca con comparación estricta: ante empate gana el paquete
// declarado primero en el catálogo.
func Recommend(profile domain.BusinessProfile) domain.RecommendationResult {
	bestIdx := 0
	bestScore := -1
	for i, pkg := range catalog.Packages {
		if score := ScorePackage(profile, pkg); score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	winner := catalog.Packages[bestIdx]
	factors := scoreFactors(profile, winner)

	return domain.RecommendationResult{
		PackageID: winner.ID,
		Score:     bestScore,
		Reason:    buildReason(profile, winner, factors),
		Factors:   factors,
	}
}

// scoreFactors recalcula los cinco sub-puntajes del ganador expresados en
// puntos absolutos.
func scoreFactors(profile domain.BusinessProfile, pkg domain.PackageDefinition) []domain.ScoreFactor {
	entries := []struct {
		name   string
		weight int
		value  float64
	}{
		{"budget", weightBudget, scoreBudget(profile.PreferredBudget, pkg)},
		{"company_size", weightCompanySize, scoreCompanySize(profile.CompanySize, pkg)},
		{"timeline", weightTimeline, scoreTimeline(profile.ProjectTimeline, pkg)},
		{"industry", weightIndustry, scoreIndustry(profile.Industry, pkg)},
		{"goals", weightGoals, scoreGoals(profile.BusinessGoals, pkg)},
	}

	factors := make([]domain.ScoreFactor, 0, len(entries))
	for _, entry := range entries {
		factors = append(factors, domain.ScoreFactor{
			Factor: entry.name,
			Weight: entry.weight,
			Value:  entry.value,
			Impact: entry.value * float64(entry.weight),
		})
	}
	return factors
}

// reasonClauses mapea cada factor a la cláusula que se agrega al texto
// cuando su impacto supera los 15 puntos.
var reasonClauses = map[string]string{
	"budget":       "it fits comfortably within your stated budget",
	"company_size": "it is sized for teams like yours",
	"timeline":     "it can be delivered on your timeline",
	"industry":     "it has a strong track record in your industry",
	"goals":        "it directly supports the goals you described",
}

// reasonFactorThreshold: solo los factores con más de 15 puntos de impacto
// aparecen en la explicación.
const reasonFactorThreshold = 15

func buildReason(profile domain.BusinessProfile, pkg domain.PackageDefinition, factors []domain.ScoreFactor) string {
	var sb strings.Builder

	name := strings.TrimSpace(profile.FirstName)
	company := strings.TrimSpace(profile.Company)
	switch {
	case name != "" && company != "":
		fmt.Fprintf(&sb, "%s, based on what you told us about %s, we recommend the %s package.", name, company, pkg.Name)
	case name != "":
		fmt.Fprintf(&sb, "%s, based on your profile, we recommend the %s package.", name, pkg.Name)
	default:
		fmt.Fprintf(&sb, "Based on your profile, we recommend the %s package.", pkg.Name)
	}

	for _, factor := range factors {
		if factor.Impact <= reasonFactorThreshold {
			continue
		}
		clause, ok := reasonClauses[factor.Factor]
		if !ok {
			continue
		}
		sb.WriteString(" We picked it because ")
		sb.WriteString(clause)
		sb.WriteString(".")
	}

	if goals := strings.TrimSpace(profile.BusinessGoals); goals != "" {
		fmt.Fprintf(&sb, " You mentioned %q, and this package was built with exactly that in mind.", goals)
	}

	sb.WriteString(" Our team is ready to walk you through the details whenever you are.")
	return sb.String()
}
