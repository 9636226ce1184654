package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/infinitechange/coaching-site/internal/core/domain"
)

// Seed populates empty catalogue and testimonial tables with starter content.
// Tables that already hold rows are left untouched so reseeding is safe.
func Seed(ctx context.Context, db *gorm.DB) error {
	if err := seedServices(ctx, db); err != nil {
		return err
	}
	return seedTestimonials(ctx, db)
}

func seedServices(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&serviceRecord{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	repo := NewCatalogRepository(db)
	for _, svc := range starterServices {
		if err := repo.Create(ctx, &svc); err != nil {
			return err
		}
	}
	return nil
}

func seedTestimonials(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&testimonialRecord{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	repo := NewTestimonialRepository(db)
	for _, t := range starterTestimonials {
		if err := repo.Create(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}

var starterServices = []domain.Service{
	{
		Kind:        domain.KindMindfulness,
		Title:       "Introduction to Mindfulness",
		Description: "A gentle entry point into mindfulness practice covering breath awareness, body scanning and everyday presence.",
		Duration:    "60 minutes",
		Level:       "Beginner",
		Features:    []string{"Guided breathing exercises", "Body scan meditation", "Take-home practice plan"},
		BookingLink: "https://calendly.com/infinite-change/intro-mindfulness",
	},
	{
		Kind:        domain.KindMindfulness,
		Title:       "Mindfulness for Stress Reduction",
		Description: "An eight-session programme that builds a sustainable practice for managing stress and anxiety.",
		Duration:    "90 minutes",
		Level:       "All levels",
		Features:    []string{"Weekly themed sessions", "Stress response education", "Personalised practice review"},
		BookingLink: "https://calendly.com/infinite-change/mindfulness-stress",
	},
	{
		Kind:        domain.KindCounselling,
		Title:       "Individual Counselling",
		Description: "One-to-one sessions in a safe, confidential space to work through life's challenges at your own pace.",
		Duration:    "50 minutes",
		Level:       "Individual",
		Features:    []string{"Confidential setting", "Flexible scheduling", "Online or in person"},
		BookingLink: "https://calendly.com/infinite-change/individual-counselling",
	},
	{
		Kind:        domain.KindCounselling,
		Title:       "Couples Counselling",
		Description: "Structured sessions that help partners rebuild communication, trust and connection.",
		Duration:    "75 minutes",
		Level:       "Couples",
		Features:    []string{"Joint and individual check-ins", "Communication frameworks", "Evening availability"},
		BookingLink: "https://calendly.com/infinite-change/couples-counselling",
	},
	{
		Kind:        domain.KindBeyondWords,
		Title:       "Equine-Assisted Session",
		Description: "Experiential work alongside horses that surfaces patterns words alone cannot reach.",
		Duration:    "2 hours",
		Level:       "All levels",
		Features:    []string{"No riding involved", "Outdoor setting", "Facilitated reflection"},
		BookingLink: "https://calendly.com/infinite-change/equine-session",
	},
	{
		Kind:        domain.KindCorporate,
		Title:       "Workplace Wellbeing Workshop",
		Description: "A half-day workshop giving teams practical tools for resilience and focus under pressure.",
		Icon:        "briefcase",
		Category:    "Workshops",
		Features:    []string{"On-site or remote delivery", "Up to 25 participants", "Follow-up resource pack"},
		BookingLink: "https://infinitechange.example.com/corporate/enquire",
	},
	{
		Kind:        domain.KindCorporate,
		Title:       "Leadership Coaching Programme",
		Description: "A six-month coaching engagement for senior leaders navigating change and growth.",
		Icon:        "target",
		Category:    "Coaching",
		Features:    []string{"Monthly one-to-one sessions", "360 feedback debrief", "Quarterly progress reviews"},
		BookingLink: "https://infinitechange.example.com/corporate/enquire",
	},
}

var starterTestimonials = []domain.Testimonial{
	{
		Name:     "Sarah Mitchell",
		Role:     "Programme Participant",
		Content:  "The mindfulness course gave me tools I still use every single day. I sleep better and worry less.",
		Rating:   5,
		IsActive: true,
	},
	{
		Name:     "James Okafor",
		Role:     "HR Director",
		Company:  "Brightline Ltd",
		Content:  "The workplace workshop was the best-received session we have run in years. Practical and warm.",
		Rating:   5,
		IsActive: true,
	},
	{
		Name:     "Elena Petrova",
		Role:     "Counselling Client",
		Content:  "I felt heard from the first session. The space created here made difficult conversations possible.",
		Rating:   5,
		IsActive: true,
	},
}
