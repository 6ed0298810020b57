package domain

import "time"

// PackageViewEvent registra una vista de página de un paquete. El log es
// append-only: la única mutación in situ es LastReminderSent, escrita
// exclusivamente por el scheduler de recordatorios.
type PackageViewEvent struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id,omitempty"`
	SessionID        string     `json:"session_id,omitempty"`
	PackageName      string     `json:"package_name"`
	PackageType      string     `json:"package_type"`
	ViewDuration     int        `json:"view_duration"`
	PageURL          string     `json:"page_url,omitempty"`
	ViewCount        int        `json:"view_count"`
	ViewedAt         time.Time  `json:"viewed_at"`
	LastReminderSent *time.Time `json:"last_reminder_sent,omitempty"`
}

// Views devuelve el contador de vistas con el default 1 aplicado.
func (e PackageViewEvent) Views() int {
	if e.ViewCount <= 0 {
		return 1
	}
	return e.ViewCount
}

// EngagementSummary es la vista que expone la capa HTTP sobre el paquete
// más visitado de un usuario.
type EngagementSummary struct {
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	ViewCount     int       `json:"view_count"`
	TotalViewTime int       `json:"total_view_time"`
	LastViewed    time.Time `json:"last_viewed"`
}
