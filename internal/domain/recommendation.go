package domain

// ScoreFactor detalla el aporte de un factor al puntaje del paquete ganador.
type ScoreFactor struct {
	Factor string  `json:"factor"`
	Weight int     `json:"weight"`
	Value  float64 `json:"value"`
	Impact float64 `json:"impact"`
}

// RecommendationResult es la salida de una evaluación de perfil.
type RecommendationResult struct {
	PackageID string        `json:"package_id"`
	Score     int           `json:"score"`
	Reason    string        `json:"reason"`
	Factors   []ScoreFactor `json:"factors"`
}
