// Package notification manages the appointment reminder policy and renders
// reminder messages from the admin-editable template.
package notification

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/email"
	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository"
	"github.com/bellezapura/salon-api/pkg/errors"
)

// Placeholders the template may reference. Anything else is left verbatim.
const (
	placeholderClient       = "{clientName}"
	placeholderService      = "{serviceName}"
	placeholderProfessional = "{professionalName}"
	placeholderDate         = "{date}"
	placeholderTime         = "{time}"
)

type Service struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	serviceRepo repository.ServiceRepository
	profRepo    repository.ProfessionalRepository
	sender      email.Sender

	mu       sync.RWMutex
	settings model.ReminderSettings
}

func NewService(
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceRepository,
	profRepo repository.ProfessionalRepository,
	sender email.Sender,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		profRepo:    profRepo,
		sender:      sender,
		settings:    model.DefaultReminderSettings(),
	}
}

func (s *Service) Settings(ctx context.Context) model.ReminderSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the reminder policy. An enabled policy must carry
// a template and at least one timing; timings are deduplicated and sorted
// descending so reminders fire farthest-first.
func (s *Service) UpdateSettings(ctx context.Context, req *model.UpdateReminderSettingsRequest) (model.ReminderSettings, error) {
	if req.Enabled {
		if strings.TrimSpace(req.Template) == "" {
			return model.ReminderSettings{}, errors.Validation("template", "is required when reminders are enabled")
		}
		if len(req.Timings) == 0 {
			return model.ReminderSettings{}, errors.Validation("timings", "at least one timing is required when reminders are enabled")
		}
	}

	seen := make(map[int]bool)
	timings := make([]int, 0, len(req.Timings))
	for _, h := range req.Timings {
		if !seen[h] {
			seen[h] = true
			timings = append(timings, h)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(timings)))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = model.ReminderSettings{
		Enabled:  req.Enabled,
		Timings:  timings,
		Channels: req.Channels,
		Template: req.Template,
	}
	return s.settings, nil
}

// RenderForBooking substitutes the template placeholders with the booking's
// client, service, professional, date and time.
func (s *Service) RenderForBooking(ctx context.Context, bookingID uuid.UUID) (string, error) {
	booking, err := s.bookingRepo.Get(ctx, bookingID)
	if err != nil {
		return "", fmt.Errorf("failed to get booking: %w", err)
	}
	user, err := s.userRepo.Get(ctx, booking.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	svc, err := s.serviceRepo.Get(ctx, booking.ServiceID)
	if err != nil {
		return "", fmt.Errorf("failed to get service: %w", err)
	}

	professionalName := ""
	if prof, err := s.profRepo.Get(ctx, booking.ProfessionalID); err == nil {
		professionalName = prof.Name
	}

	s.mu.RLock()
	template := s.settings.Template
	s.mu.RUnlock()

	replacer := strings.NewReplacer(
		placeholderClient, user.Name,
		placeholderService, svc.Name,
		placeholderProfessional, professionalName,
		placeholderDate, booking.Date.Format("02/01/2006"),
		placeholderTime, booking.Date.Format("15:04"),
	)
	return replacer.Replace(template), nil
}

// SendTest renders the reminder for a booking and emails it to the given
// address, so the admin can proof the template before enabling it.
func (s *Service) SendTest(ctx context.Context, bookingID uuid.UUID, to string) error {
	s.mu.RLock()
	emailEnabled := s.settings.Channels.Email
	s.mu.RUnlock()
	if !emailEnabled {
		return errors.Validation("channels.email", "email channel is disabled")
	}

	body, err := s.RenderForBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := s.sender.Send(to, "Lembrete de agendamento", body); err != nil {
		return fmt.Errorf("failed to send test reminder: %w", err)
	}
	return nil
}
