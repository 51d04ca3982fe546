package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"slotwise-backend/models"
	"slotwise-backend/services"
	"slotwise-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxOfferedSlots = 4

type ChatRequest struct {
	BusinessID uuid.UUID
	From       string
	Message    string
}

type ChatReply struct {
	Reply  string  `json:"reply"`
	Intent *Intent `json:"intent,omitempty"`
}

// ChatService drives the WhatsApp-simulator conversation: extract the
// intent, resolve a service by name, look up open slots, and complete a
// booking when the sender picks one of the offered times.
type ChatService struct {
	extractor IntentExtractor
	sessions  SessionStore
	catalog   ServiceCatalog
	directory ProfessionalDirectory
	finder    SlotFinder
	bookings  BookingCreator
	logger    *zap.Logger
}

func NewChatService(
	extractor IntentExtractor,
	sessions SessionStore,
	catalog ServiceCatalog,
	directory ProfessionalDirectory,
	finder SlotFinder,
	bookings BookingCreator,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		extractor: extractor,
		sessions:  sessions,
		catalog:   catalog,
		directory: directory,
		finder:    finder,
		bookings:  bookings,
		logger:    logger,
	}
}

func (s *ChatService) Handle(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	session, err := s.sessions.Get(ctx, req.From)
	if err != nil {
		// A lost session only costs conversational continuity.
		s.logger.Warn("chat session load failed", zap.String("from", req.From), zap.Error(err))
		session = &Session{}
	}

	intent, err := s.extractor.Extract(ctx, req.Message)
	if err != nil {
		s.logger.Warn("intent extraction failed", zap.Error(err))
		intent = &Intent{Intent: IntentSmallTalk}
	}

	// A time in the message while slots are on offer means the sender
	// is picking one.
	if picked := pickTime(intent, req.Message); picked != "" && len(session.OfferedSlots) > 0 {
		return s.bookOffered(ctx, req, session, picked)
	}

	switch intent.Intent {
	case IntentCheckAvailability, IntentCreateBooking:
		return s.offerSlots(ctx, req, intent)
	default:
		return &ChatReply{
			Reply:  "Hi! I can show services, check availability and book a time. Try: do you have availability for a haircut tomorrow?",
			Intent: intent,
		}, nil
	}
}

func (s *ChatService) offerSlots(ctx context.Context, req ChatRequest, intent *Intent) (*ChatReply, error) {
	servicesList, err := s.catalog.List(ctx, &req.BusinessID)
	if err != nil {
		return nil, err
	}
	if len(servicesList) == 0 {
		return &ChatReply{Reply: "This business has no bookable services yet.", Intent: intent}, nil
	}

	service := matchService(servicesList, intent.Service)
	if service == nil && len(servicesList) == 1 {
		service = &servicesList[0]
	}
	if service == nil {
		var sb strings.Builder
		sb.WriteString("Which service do you want?\n")
		for _, svc := range servicesList {
			fmt.Fprintf(&sb, "\u2022 %s\n", svc.Name)
		}
		return &ChatReply{Reply: strings.TrimRight(sb.String(), "\n"), Intent: intent}, nil
	}

	date := intent.Date
	if date == "" || !utils.ValidateDateOnly(date) {
		date = time.Now().UTC().Format(utils.DateOnlyLayout)
	}

	professionals, err := s.directory.List(ctx, &req.BusinessID, &service.ID)
	if err != nil {
		return nil, err
	}
	if len(professionals) == 0 {
		return &ChatReply{
			Reply:  fmt.Sprintf("Nobody offers %s right now. Try another service.", service.Name),
			Intent: intent,
		}, nil
	}
	professional := professionals[0]

	slots, err := s.finder.Compute(ctx, req.BusinessID, service.ID, professional.ID, date)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return &ChatReply{
			Reply:  fmt.Sprintf("I did not find availability for %s on %s. Try another day.", service.Name, date),
			Intent: intent,
		}, nil
	}

	offered := make([]time.Time, 0, maxOfferedSlots)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here are the next times for %s with %s on %s:\n", service.Name, professional.Name, date)
	for i, slot := range slots {
		if i == maxOfferedSlots {
			break
		}
		offered = append(offered, slot.Start)
		fmt.Fprintf(&sb, "\u2022 %s\n", slot.Start.Format("15:04"))
	}
	sb.WriteString("Reply with a time to book.")

	session := &Session{
		ServiceID:      service.ID.String(),
		ProfessionalID: professional.ID.String(),
		Date:           date,
		OfferedSlots:   offered,
	}
	if err := s.sessions.Set(ctx, req.From, session); err != nil {
		s.logger.Warn("chat session save failed", zap.String("from", req.From), zap.Error(err))
	}

	return &ChatReply{Reply: sb.String(), Intent: intent}, nil
}

func (s *ChatService) bookOffered(ctx context.Context, req ChatRequest, session *Session, picked string) (*ChatReply, error) {
	var chosen *time.Time
	for _, slot := range session.OfferedSlots {
		if slot.Format("15:04") == picked {
			t := slot
			chosen = &t
			break
		}
	}
	if chosen == nil {
		return &ChatReply{Reply: "That time was not one of the offered slots. Pick one of the times I listed."}, nil
	}

	serviceID, err := uuid.Parse(session.ServiceID)
	if err != nil {
		return &ChatReply{Reply: "I lost track of the service. Ask for availability again."}, nil
	}
	professionalID, err := uuid.Parse(session.ProfessionalID)
	if err != nil {
		return &ChatReply{Reply: "I lost track of the professional. Ask for availability again."}, nil
	}

	booking, err := s.bookings.Create(ctx, services.CreateBookingInput{
		BusinessID:     req.BusinessID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		CustomerPhone:  req.From,
		StartAt:        *chosen,
	})
	if errors.Is(err, services.ErrSlotTaken) {
		return &ChatReply{Reply: "Sorry, that time was just taken. Ask for availability again to see what is still open."}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Clear(ctx, req.From); err != nil {
		s.logger.Warn("chat session clear failed", zap.String("from", req.From), zap.Error(err))
	}

	return &ChatReply{
		Reply: fmt.Sprintf("Done! You are booked on %s at %s.",
			booking.StartAt.Format(utils.DateOnlyLayout), booking.StartAt.Format("15:04")),
	}, nil
}

// pickTime prefers the extractor's time field but also accepts a bare
// "10:30" style message.
func pickTime(intent *Intent, message string) string {
	if intent.Time != "" {
		return intent.Time
	}
	if m := timePattern.FindString(message); m != "" {
		if len(m) == len("9:00") {
			m = "0" + m
		}
		return m
	}
	return ""
}

func matchService(servicesList []models.Service, name string) *models.Service {
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)
	for i := range servicesList {
		if strings.ToLower(servicesList[i].Name) == lower {
			return &servicesList[i]
		}
	}
	for i := range servicesList {
		if strings.Contains(strings.ToLower(servicesList[i].Name), lower) {
			return &servicesList[i]
		}
	}
	return nil
}
