package domain

// BudgetRange delimita un rango de presupuesto en dólares.
type BudgetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Size devuelve el ancho del rango.
func (r BudgetRange) Size() int {
	return r.Max - r.Min
}

// PackageDefinition es una entrada del catálogo de paquetes. El catálogo
// es estático y su orden de declaración resuelve empates de puntaje.
type PackageDefinition struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Price              int         `json:"price"`
	TargetBudget       BudgetRange `json:"target_budget"`
	TargetCompanySizes []string    `json:"target_company_sizes"`
	TargetIndustries   []string    `json:"target_industries"`
	TargetTimelines    []string    `json:"target_timelines"`
	TargetKeywords     []string    `json:"target_keywords"`
	Features           []string    `json:"features"`
}

// ReminderContent es la ficha estática usada para armar el correo de
// recordatorio de un packageType.
type ReminderContent struct {
	Name        string
	Price       string
	Description string
	Features    []string
	CTA         string
	URL         string
}
