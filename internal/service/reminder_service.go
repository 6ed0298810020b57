package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"brightforge/internal/catalog"
	"brightforge/internal/email"
	"brightforge/internal/repository"
)

// ReminderScheduler recorre periódicamente los usuarios verificados y envía
// a lo sumo un recordatorio por (usuario, packageType) por ventana de
// cadencia. Es un objeto explícito: lo construye y arranca el entry point
// del proceso, nunca un efecto colateral de carga.
type ReminderScheduler struct {
	logger     *zap.Logger
	users      repository.UserRepository
	views      repository.ViewEventRepository
	engagement *EngagementService
	sender     email.Sender
	guard      CadenceGuard
	interval   time.Duration
	cooldown   time.Duration
	now        func() time.Time

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

func NewReminderScheduler(
	logger *zap.Logger,
	users repository.UserRepository,
	views repository.ViewEventRepository,
	engagement *EngagementService,
	sender email.Sender,
	guard CadenceGuard,
	interval time.Duration,
	cooldown time.Duration,
) *ReminderScheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if cooldown <= 0 {
		cooldown = 7 * 24 * time.Hour
	}
	return &ReminderScheduler{
		logger:     logger,
		users:      users,
		views:      views,
		engagement: engagement,
		sender:     sender,
		guard:      guard,
		interval:   interval,
		cooldown:   cooldown,
		now:        time.Now,
	}
}

// Start pasa el scheduler de idle a running: dispara un barrido inmediato y
// programa los siguientes. Llamarlo en running es un no-op.
func (s *ReminderScheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	stop := make(chan struct{})
	s.stopCh = stop
	s.mu.Unlock()

	s.logger.Info("reminder scheduler started", zap.Duration("interval", s.interval))

	go func() {
		s.Sweep(context.Background())

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep(context.Background())
			case <-stop:
				return
			}
		}
	}()
}

// Stop cancela los barridos futuros. No aborta un barrido en curso.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stopCh)
	s.running = false
	s.logger.Info("reminder scheduler stopped")
}

// Sweep procesa todos los usuarios verificados. Cualquier falla (o pánico)
// al procesar un usuario queda contenida en ese usuario; el resto del lote
// continúa.
func (s *ReminderScheduler) Sweep(ctx context.Context) {
	users, err := s.users.ListVerified(ctx)
	if err != nil {
		s.logger.Error("reminder sweep aborted: list users", zap.Error(err))
		return
	}

	sent := 0
	for _, user := range users {
		if s.processUser(ctx, user.ID, user.Email, user.FirstName) {
			sent++
		}
	}
	s.logger.Info("reminder sweep finished", zap.Int("users", len(users)), zap.Int("sent", sent))
}

func (s *ReminderScheduler) processUser(ctx context.Context, userID, userEmail, firstName string) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("reminder sweep: panic processing user",
				zap.String("user_id", userID),
				zap.Any("panic", r),
			)
			sent = false
		}
	}()

	event, err := s.engagement.MostEngaged(ctx, userID)
	if err != nil {
		s.logger.Warn("reminder sweep: engagement lookup failed", zap.String("user_id", userID), zap.Error(err))
		return false
	}
	if event == nil {
		return false
	}

	now := s.now().UTC()
	if !shouldSendReminder(event.LastReminderSent, now, s.cooldown) {
		return false
	}

	content, ok := catalog.ReminderCatalog[event.PackageType]
	if !ok {
		// Tipo fuera del catálogo: se omite sin cortar el barrido.
		s.logger.Warn("reminder sweep: unknown package type",
			zap.String("user_id", userID),
			zap.String("package_type", event.PackageType),
		)
		return false
	}

	if s.guard != nil && !s.guard.Acquire(userID, event.PackageType) {
		return false
	}

	subject, body, err := renderReminderEmail(firstName, content)
	if err != nil {
		s.logger.Error("reminder sweep: render failed", zap.String("user_id", userID), zap.Error(err))
		s.releaseGuard(userID, event.PackageType)
		return false
	}

	if err := s.sender.Send(ctx, userEmail, subject, body); err != nil {
		// Best-effort: sin reintento inmediato. Al no sellar el timestamp,
		// el próximo barrido vuelve a intentar.
		s.logger.Warn("reminder sweep: send failed", zap.String("user_id", userID), zap.Error(err))
		s.releaseGuard(userID, event.PackageType)
		return false
	}

	if err := s.views.SetLastReminderSent(ctx, userID, event.PackageType, now); err != nil {
		s.logger.Error("reminder sweep: persist last reminder failed",
			zap.String("user_id", userID),
			zap.String("package_type", event.PackageType),
			zap.Error(err),
		)
		return true
	}

	s.logger.Info("reminder sent",
		zap.String("user_id", userID),
		zap.String("package_type", event.PackageType),
	)
	return true
}

func (s *ReminderScheduler) releaseGuard(userID, packageType string) {
	if s.guard != nil {
		s.guard.Release(userID, packageType)
	}
}

// shouldSendReminder aplica la regla de cadencia: nunca enviado, o enviado
// hace al menos la ventana completa.
func shouldSendReminder(lastSent *time.Time, now time.Time, cooldown time.Duration) bool {
	if lastSent == nil {
		return true
	}
	return now.Sub(*lastSent) >= cooldown
}

// String describe el estado actual, útil en logs de arranque.
func (s *ReminderScheduler) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := "idle"
	if s.running {
		state = "running"
	}
	return fmt.Sprintf("ReminderScheduler(%s, every %s)", state, s.interval)
}
