// Package content holds the fixed marketing catalog the web client renders:
// services, trainers, programs, pricing plans, testimonials and the bookable
// time slots. The data is deliberately in-process rather than in the document
// store; it changes only with a deploy.
package content

import (
	"fmt"

	"samfit/models"
)

// TimeSlots is the fixed set of bookable session start times.
var TimeSlots = []string{"06:00", "08:00", "10:00", "14:00", "16:00", "18:00", "20:00"}

var Services = []models.Service{
	{ID: 1, Title: "Personal Training", Description: "One-on-one coaching tailored to your specific goals and fitness level.", Icon: models.IconDumbbell},
	{ID: 2, Title: "Weight Loss Program", Description: "Comprehensive nutrition and exercise plans designed for sustainable weight loss.", Icon: models.IconHeartPulse},
	{ID: 3, Title: "Cardio & HIIT", Description: "Heart-pumping sessions to boost stamina and burn calories fast.", Icon: models.IconZap},
	{ID: 4, Title: "Yoga Classes", Description: "Find your flow with Vinyasa, Hatha, and restorative yoga sessions.", Icon: models.IconUsers},
	{ID: 5, Title: "Crossfit", Description: "Community-driven high-intensity functional training.", Icon: models.IconTrophy},
	{ID: 6, Title: "Strength & Conditioning", Description: "Sport-specific training to improve athletic performance.", Icon: models.IconDumbbell},
}

var Trainers = []models.Trainer{
	{ID: 1, Name: "Marcus Johnson", Role: "Head Strength Coach", Image: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&q=80&w=600"},
	{ID: 2, Name: "Alisha Williams", Role: "Yoga & Mobility Specialist", Image: "https://images.unsplash.com/photo-1594381898411-846e7d193883?auto=format&fit=crop&q=80&w=600"},
	{ID: 3, Name: "David Okafor", Role: "HIIT & Cardio Expert", Image: "https://images.unsplash.com/photo-1561532325-7d5231a2dede?auto=format&fit=crop&q=80&w=600"},
	{ID: 4, Name: "Elena Rodriguez", Role: "CrossFit Coach", Image: "https://images.unsplash.com/photo-1611672585731-fa10603fb9e0?auto=format&fit=crop&q=80&w=600"},
	{ID: 5, Name: "James Wilson", Role: "Boxing Instructor", Image: "https://images.unsplash.com/photo-1599058945522-28d584b6f0ff?auto=format&fit=crop&q=80&w=600"},
	{ID: 6, Name: "Sophie Chen", Role: "Nutritionist", Image: "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&q=80&w=600"},
}

var Programs = []models.Program{
	{ID: 1, Title: "Strength Training", Description: "Build raw power and muscle definition with our expert-led weightlifting sessions.", Image: "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?auto=format&fit=crop&q=80&w=600"},
	{ID: 2, Title: "Cardio & HIIT", Description: "Burn fat and improve endurance with high-intensity interval training.", Image: "https://images.unsplash.com/photo-1550345332-09e3ac987658?auto=format&fit=crop&q=80&w=600"},
	{ID: 3, Title: "Yoga & Mobility", Description: "Restore balance, flexibility, and mental focus in our serene studio.", Image: "https://images.unsplash.com/photo-1518310383802-640c2de311b2?auto=format&fit=crop&q=80&w=600"},
	{ID: 4, Title: "Crossfit", Description: "Functional movements performed at high intensity for total body conditioning.", Image: "https://images.unsplash.com/photo-1526506118085-60ce8714f8c5?auto=format&fit=crop&q=80&w=600"},
}

var Testimonials = []models.Testimonial{
	{ID: 1, Name: "Sarah Jenkins", Role: "Member since 2021", Text: "Jedafit changed my life. The trainers are incredibly supportive and the community is unmatched.", Rating: 5},
	{ID: 2, Name: "Michael Chen", Role: "Athlete", Text: "The equipment is top-tier and the facility is always clean. Highly recommend the strength program.", Rating: 5},
	{ID: 3, Name: "Jessica Davis", Role: "Yoga Enthusiast", Text: "I love the morning yoga classes. It's the perfect way to start my day with energy and focus.", Rating: 4},
	{ID: 4, Name: "Robert Fox", Role: "Bodybuilder", Text: "The free weights section is massive. I've never had to wait for a squat rack. Serious gym for serious gains.", Rating: 5},
	{ID: 5, Name: "Emily Carter", Role: "Weight Loss Journey", Text: "I was intimidated at first, but the community here is so welcoming. Down 30lbs and feeling stronger than ever!", Rating: 5},
}

var PricingPlans = []models.PricingPlan{
	{ID: 1, Name: "Basic", Price: "$29", AmountUSD: 2900, Features: []string{"Gym Access", "Locker Room Access", "1 Intro Session", "Free WiFi"}},
	{ID: 2, Name: "Standard", Price: "$59", AmountUSD: 5900, Features: []string{"All Basic Features", "Group Classes Included", "Guest Pass (1/mo)", "Nutrition Guide"}, IsPopular: true},
	{ID: 3, Name: "Premium", Price: "$99", AmountUSD: 9900, Features: []string{"All Standard Features", "Unlimited Guest Passes", "Sauna & Spa Access", "Monthly Body Scan"}},
	{ID: 4, Name: "VIP", Price: "$199", AmountUSD: 19900, Features: []string{"All Premium Features", "4 Personal Training Sessions", "Private Locker", "Laundry Service"}},
}

// KnownService reports whether title is one of the bookable services.
func KnownService(title string) bool {
	for _, s := range Services {
		if s.Title == title {
			return true
		}
	}
	// The featured programs are bookable too; the web client offers both.
	for _, p := range Programs {
		if p.Title == title {
			return true
		}
	}
	return false
}

// KnownTimeSlot reports whether t is one of the fixed session start times.
func KnownTimeSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// PlanByID returns the pricing plan with the given ID, or nil.
func PlanByID(id int) *models.PricingPlan {
	for i := range PricingPlans {
		if PricingPlans[i].ID == id {
			return &PricingPlans[i]
		}
	}
	return nil
}

// ValidateCatalog checks the catalog's internal consistency. Called once at
// startup so a bad icon key or duplicate ID fails the deploy instead of
// falling back at render time.
func ValidateCatalog() error {
	seen := make(map[int]bool, len(Services))
	for _, s := range Services {
		if !models.KnownServiceIcons[s.Icon] {
			return fmt.Errorf("service %q references unknown icon %q", s.Title, s.Icon)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate service id %d", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
