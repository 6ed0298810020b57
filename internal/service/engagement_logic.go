package service

import "brightforge/internal/domain"

// engagementBucket acumula las vistas de un packageType. Los agregados solo
// sirven para rankear; el evento crudo más reciente es lo que se devuelve.
type engagementBucket struct {
	packageType   string
	count         int
	totalDuration int
	latest        domain.PackageViewEvent
}

// score pondera frecuencia sobre permanencia: cada vista vale 10 segundos.
func (b engagementBucket) score() int {
	return b.count*10 + b.totalDuration
}

// aggregateViews agrupa eventos por packageType preservando el orden de
// primera aparición. Dos eventos con el mismo tipo y distinto nombre caen en
// el mismo balde; el evento "latest" decide el nombre visible.
func aggregateViews(events []domain.PackageViewEvent) []engagementBucket {
	var (
		order   []string
		buckets = make(map[string]*engagementBucket)
	)

	for _, event := range events {
		bucket, ok := buckets[event.PackageType]
		if !ok {
			bucket = &engagementBucket{
				packageType: event.PackageType,
				latest:      event,
			}
			buckets[event.PackageType] = bucket
			order = append(order, event.PackageType)
		}

		bucket.count += event.Views()
		if event.ViewDuration > 0 {
			bucket.totalDuration += event.ViewDuration
		}
		// Comparación estricta: ante timestamps iguales queda el primero visto.
		if event.ViewedAt.After(bucket.latest.ViewedAt) {
			bucket.latest = event
		}
	}

	result := make([]engagementBucket, 0, len(order))
	for _, packageType := range order {
		result = append(result, *buckets[packageType])
	}
	return result
}

// MostEngagedPackage devuelve el evento crudo más reciente del packageType
// con mayor puntaje de engagement, o nil si no hay vistas. El ganador se
// busca con comparación estricta: ante empate gana el balde visto primero.
func MostEngagedPackage(events []domain.PackageViewEvent) *domain.PackageViewEvent {
	buckets := aggregateViews(events)
	if len(buckets) == 0 {
		return nil
	}

	best := buckets[0]
	for _, bucket := range buckets[1:] {
		if bucket.score() > best.score() {
			best = bucket
		}
	}

	latest := best.latest
	return &latest
}

// SummarizeEngagement arma la vista agregada que expone la capa HTTP para el
// packageType ganador. El segundo valor es false cuando no hay vistas.
func SummarizeEngagement(events []domain.PackageViewEvent) (domain.EngagementSummary, bool) {
	buckets := aggregateViews(events)
	if len(buckets) == 0 {
		return domain.EngagementSummary{}, false
	}

	best := buckets[0]
	for _, bucket := range buckets[1:] {
		if bucket.score() > best.score() {
			best = bucket
		}
	}

	return domain.EngagementSummary{
		Name:          best.latest.PackageName,
		Type:          best.packageType,
		ViewCount:     best.count,
		TotalViewTime: best.totalDuration,
		LastViewed:    best.latest.ViewedAt,
	}, true
}
