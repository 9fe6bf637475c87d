package chat

import (
	"context"
	"strings"

	"swiftcab/models"

	"go.uber.org/zap"
)

// Service answers customer questions: curated FAQ matching first, then
// free-form chat through Gemini when configured.
type Service interface {
	ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type faqEntry struct {
	keywords []string
	answer   string
}

var faqEntries = []faqEntry{
	{
		keywords: []string{"fare", "price", "cost", "how much"},
		answer:   "Fares are base fare plus a per-kilometre rate by vehicle class. Use the fare calculator on the booking page for an exact quote.",
	},
	{
		keywords: []string{"cancel", "refund"},
		answer:   "You can cancel free of charge up to 2 hours before pickup. Paid bookings are refunded to the original payment method within 5 business days.",
	},
	{
		keywords: []string{"route", "city", "cities", "where do you"},
		answer:   "We run interstate routes between Delhi, Jaipur, Agra, Chandigarh and Lucknow, plus door-to-door pickups anywhere in those cities.",
	},
	{
		keywords: []string{"payment", "pay", "card", "cash"},
		answer:   "We accept card payments online and cash to the driver. Online payments are processed securely through Stripe.",
	},
	{
		keywords: []string{"luggage", "bags"},
		answer:   "Standard cabs take 2 large bags; vans take up to 6. Let us know in advance for anything oversized.",
	},
	{
		keywords: []string{"driver", "contact"},
		answer:   "Your driver's name and phone number are sent to you 30 minutes before pickup.",
	},
}

// DefaultChatService implements Service. Gemini is optional; without it the
// bot still answers FAQ matches and falls back to a canned reply.
type DefaultChatService struct {
	Gemini *GeminiClient
	Logger *zap.Logger
}

const chatPrompt = "You are the support assistant for SwiftCab, an interstate cab-booking service. " +
	"Answer briefly and helpfully. If asked to book a ride, point the customer at the booking form or the voice assistant. " +
	"Customer message: "

func (s *DefaultChatService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	text := strings.ToLower(req.Text)

	for _, entry := range faqEntries {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return &models.ChatResponse{Intent: "faq", ResponseText: entry.answer}, nil
			}
		}
	}

	if s.Gemini != nil {
		reply, err := s.Gemini.GenerateContent(ctx, chatPrompt+req.Text)
		if err == nil && reply != "" {
			return &models.ChatResponse{Intent: "chat", ResponseText: reply}, nil
		}
		s.Logger.Warn("gemini chat failed, using canned reply", zap.Error(err))
	}

	return &models.ChatResponse{
		Intent:       "chat",
		ResponseText: "I can help with fares, routes, cancellations and payments. What would you like to know?",
	}, nil
}
