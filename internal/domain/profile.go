package domain

import "time"

// BusinessProfile describe el negocio del usuario tal como lo declaró.
// Todos los campos son opcionales: un campo vacío degrada a un puntaje
// neutro en el scorer, nunca a un error.
type BusinessProfile struct {
	UserID          string    `json:"user_id"`
	PreferredBudget string    `json:"preferred_budget,omitempty"`
	CompanySize     string    `json:"company_size,omitempty"`
	Industry        string    `json:"industry,omitempty"`
	ProjectTimeline string    `json:"project_timeline,omitempty"`
	BusinessGoals   string    `json:"business_goals,omitempty"`
	FirstName       string    `json:"first_name,omitempty"`
	Company         string    `json:"company,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}
