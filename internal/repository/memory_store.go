package repository

import (
	"context"
	"sync"
	"time"

	"brightforge/internal/domain"
)

// MemoryStore implementa los tres repositorios sobre mapas en memoria.
// Se usa cuando STORE_BACKEND=memory y en tests. El log de vistas crece sin
// límite, igual que el backend relacional: no hay política de expulsión.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	profiles map[string]domain.BusinessProfile
	recs     map[string]domain.RecommendationResult
	views    []domain.PackageViewEvent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]domain.User),
		profiles: make(map[string]domain.BusinessProfile),
		recs:     make(map[string]domain.RecommendationResult),
	}
}

var (
	_ UserRepository      = (*MemoryStore)(nil)
	_ ProfileRepository   = (*MemoryStore)(nil)
	_ ViewEventRepository = (*MemoryStore)(nil)
)

func (s *MemoryStore) Create(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) ListVerified(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var users []domain.User
	for _, u := range s.users {
		if u.IsVerified() {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *MemoryStore) GetByUserID(_ context.Context, userID string) (domain.BusinessProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return domain.BusinessProfile{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) SaveWithRecommendation(_ context.Context, profile domain.BusinessProfile, result domain.RecommendationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = profile
	s.recs[profile.UserID] = result
	return nil
}

func (s *MemoryStore) GetRecommendation(_ context.Context, userID string) (domain.RecommendationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recs[userID]
	if !ok {
		return domain.RecommendationResult{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) Append(_ context.Context, event domain.PackageViewEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = append(s.views, event)
	return nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]domain.PackageViewEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var events []domain.PackageViewEvent
	for _, e := range s.views {
		if e.UserID == userID {
			events = append(events, e)
		}
	}
	return events, nil
}

func (s *MemoryStore) ListBySession(_ context.Context, sessionID string) ([]domain.PackageViewEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var events []domain.PackageViewEvent
	for _, e := range s.views {
		if e.SessionID == sessionID {
			events = append(events, e)
		}
	}
	return events, nil
}

func (s *MemoryStore) SetLastReminderSent(_ context.Context, userID, packageType string, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.views {
		if s.views[i].UserID == userID && s.views[i].PackageType == packageType {
			sent := ts
			s.views[i].LastReminderSent = &sent
		}
	}
	return nil
}
