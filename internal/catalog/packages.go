package catalog

import "brightforge/internal/domain"

// Packages es el catálogo ordenado de paquetes. El orden de declaración
// importa: ante empate de puntaje gana el paquete declarado primero.
var Packages = []domain.PackageDefinition{
	{
		ID:                 "digital-foundation",
		Name:               "Digital Foundation",
		Price:              4500,
		TargetBudget:       domain.BudgetRange{Min: 1000, Max: 5000},
		TargetCompanySizes: []string{"startup", "small"},
		TargetIndustries:   []string{"services", "retail", "hospitality", "local"},
		TargetTimelines:    []string{"ASAP", "1-3 months"},
		TargetKeywords:     []string{"website", "presence", "brand", "launch"},
		Features: []string{
			"Responsive marketing site",
			"Basic SEO setup",
			"Contact and quote forms",
			"Analytics dashboard",
		},
	},
	{
		ID:                 "growth-accelerator",
		Name:               "Growth Accelerator",
		Price:              12000,
		TargetBudget:       domain.BudgetRange{Min: 5000, Max: 15000},
		TargetCompanySizes: []string{"small", "medium"},
		TargetIndustries:   []string{"technology", "ecommerce", "saas", "professional services"},
		TargetTimelines:    []string{"1-3 months", "3-6 months"},
		TargetKeywords:     []string{"growth", "automation", "marketing", "leads"},
		Features: []string{
			"Everything in Digital Foundation",
			"Marketing automation workflows",
			"CRM integration",
			"Conversion funnel optimization",
			"A/B testing suite",
		},
	},
	{
		ID:                 "enterprise-solution",
		Name:               "Enterprise Solution",
		Price:              45000,
		TargetBudget:       domain.BudgetRange{Min: 15000, Max: 100000},
		TargetCompanySizes: []string{"large", "enterprise"},
		TargetIndustries:   []string{"finance", "healthcare", "technology", "manufacturing"},
		TargetTimelines:    []string{"6-12 months", "12+ months"},
		TargetKeywords:     []string{"scale", "integration", "security", "compliance"},
		Features: []string{
			"Everything in Growth Accelerator",
			"Custom platform development",
			"SSO and compliance tooling",
			"Dedicated infrastructure",
			"24/7 support SLA",
		},
	},
}

// BudgetBrackets mapea las cinco etiquetas fijas de presupuesto a rangos
// numéricos. Etiquetas fuera de la tabla se tratan como presupuesto ausente.
var BudgetBrackets = map[string]domain.BudgetRange{
	"Under $5,000":       {Min: 1000, Max: 5000},
	"$5,000 - $15,000":   {Min: 5000, Max: 15000},
	"$15,000 - $50,000":  {Min: 15000, Max: 50000},
	"$50,000 - $100,000": {Min: 50000, Max: 100000},
	"$100,000+":          {Min: 100000, Max: 250000},
}

// CompanySizeCategories traduce el token de tamaño de empresa a categorías
// comparables con los targets del catálogo. Un token desconocido cae al
// literal en minúsculas.
var CompanySizeCategories = map[string][]string{
	"1-10":     {"startup", "small"},
	"11-50":    {"small", "medium"},
	"51-200":   {"medium", "large"},
	"201-1000": {"large", "enterprise"},
	"1000+":    {"enterprise"},
}

// TimelineMonths aproxima cada etiqueta de plazo a una cantidad de meses.
var TimelineMonths = map[string]float64{
	"ASAP":        1,
	"1-3 months":  2,
	"3-6 months":  4,
	"6-12 months": 9,
	"12+ months":  18,
}
