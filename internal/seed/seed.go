// Package seed installs the demo dataset used by development and demo
// deployments: the East Austin neighborhood centers, their offerings,
// upcoming events, parking and a sample weather alert.
package seed

import (
	"context"
	"time"

	"github.com/atxserves/community-directory/internal/store"
)

// Load populates the store with the demo dataset unless categories already
// exist, which makes it safe to call on every startup.
func Load(ctx context.Context, s *store.Store) {
	if len(s.GetAllCategories(ctx)) > 0 {
		return
	}

	food := s.CreateCategory(ctx, store.NewCategory{Name: "Food Assistance", Icon: "utensils", Color: "#E57200"})
	housing := s.CreateCategory(ctx, store.NewCategory{Name: "Housing", Icon: "home", Color: "#3399CC"})
	health := s.CreateCategory(ctx, store.NewCategory{Name: "Health", Icon: "heartbeat", Color: "#F44336"})
	childcare := s.CreateCategory(ctx, store.NewCategory{Name: "Childcare", Icon: "child", Color: "#4CAF50"})
	employment := s.CreateCategory(ctx, store.NewCategory{Name: "Employment", Icon: "briefcase", Color: "#E57200"})
	s.CreateCategory(ctx, store.NewCategory{Name: "Transportation", Icon: "bus", Color: "#2196F3"})

	rosewood := s.CreateService(ctx, store.NewService{
		Name:        "Rosewood-Zaragosa Neighborhood Center",
		Address:     "2800 Webberville Rd, Austin, TX 78702",
		Phone:       ptr("(512) 972-6740"),
		Hours:       ptr("Mon-Fri: 8:00 AM - 5:00 PM"),
		Status:      "open",
		Description: ptr("Provides social services and recreational activities to East Austin residents."),
		ImageURL:    ptr("https://images.unsplash.com/photo-1572297350242-e9d940f8ca2d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Latitude:    30.2782,
		Longitude:   -97.7140,
		CategoryID:  food.ID,
	})
	eastAustin := s.CreateService(ctx, store.NewService{
		Name:        "East Austin Neighborhood Center",
		Address:     "211 Comal St, Austin, TX 78702",
		Phone:       ptr("(512) 972-6650"),
		Hours:       ptr("Mon-Fri: 8:00 AM - 6:00 PM"),
		Status:      "open",
		Description: ptr("Provides housing assistance and community resources."),
		ImageURL:    ptr("https://images.unsplash.com/photo-1541976344724-c086710bf4fe?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Latitude:    30.2634,
		Longitude:   -97.7243,
		CategoryID:  housing.ID,
	})
	southAustin := s.CreateService(ctx, store.NewService{
		Name:        "South Austin Neighborhood Center",
		Address:     "2508 Durwood St, Austin, TX 78704",
		Phone:       ptr("(512) 972-6840"),
		Hours:       ptr("Mon-Fri: 8:00 AM - 5:00 PM"),
		Status:      "open",
		Description: ptr("Provides health services and community support."),
		ImageURL:    ptr("https://images.unsplash.com/photo-1631902112544-245e818f34c1?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Latitude:    30.2425,
		Longitude:   -97.7597,
		CategoryID:  health.ID,
	})
	montopolis := s.CreateService(ctx, store.NewService{
		Name:        "Montopolis Community Center",
		Address:     "1200 Montopolis Dr, Austin, TX 78741",
		Phone:       ptr("(512) 972-6650"),
		Hours:       ptr("Mon-Fri: 9:00 AM - 6:00 PM, Sat: 9:00 AM - 1:00 PM"),
		Status:      "open",
		Description: ptr("Offers childcare services and family support programs."),
		ImageURL:    ptr("https://images.unsplash.com/photo-1576091160550-2173dba999ef?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Latitude:    30.2320,
		Longitude:   -97.7081,
		CategoryID:  childcare.ID,
	})
	stJohn := s.CreateService(ctx, store.NewService{
		Name:        "St. John Community Center",
		Address:     "7500 Blessing Ave, Austin, TX 78752",
		Phone:       ptr("(512) 972-5139"),
		Hours:       ptr("Mon-Fri: 8:00 AM - 5:00 PM"),
		Status:      "open",
		Description: ptr("Offers employment resources and job training programs."),
		ImageURL:    ptr("https://images.unsplash.com/photo-1560250097-0b93528c311a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"),
		Latitude:    30.3222,
		Longitude:   -97.7045,
		CategoryID:  employment.ID,
	})

	for _, name := range []string{"Food Pantry", "SNAP Assistance", "WIC Program"} {
		s.CreateOffering(ctx, store.NewOffering{ServiceID: rosewood.ID, Name: name})
	}
	for _, name := range []string{"Rental Assistance", "Utility Assistance", "Housing Counseling"} {
		s.CreateOffering(ctx, store.NewOffering{ServiceID: eastAustin.ID, Name: name})
	}
	for _, name := range []string{"Health Screenings", "Immunizations", "MAP Enrollment"} {
		s.CreateOffering(ctx, store.NewOffering{ServiceID: southAustin.ID, Name: name})
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	s.CreateEvent(ctx, store.NewEvent{
		Title:       "Food Drive",
		Description: ptr("Community food drive. Bring non-perishable items to donate."),
		Date:        today.AddDate(0, 0, 1),
		StartTime:   ptr("10:00 AM"),
		EndTime:     ptr("2:00 PM"),
		ServiceID:   rosewood.ID,
		CategoryID:  &food.ID,
	})
	s.CreateEvent(ctx, store.NewEvent{
		Title:       "Job Fair",
		Description: ptr("Local businesses will be hiring on the spot."),
		Date:        today.AddDate(0, 0, 3),
		StartTime:   ptr("9:00 AM"),
		EndTime:     ptr("12:00 PM"),
		ServiceID:   stJohn.ID,
		CategoryID:  &employment.ID,
	})
	s.CreateEvent(ctx, store.NewEvent{
		Title:       "ESL Class",
		Description: ptr("Free English as a Second Language class."),
		Date:        today.AddDate(0, 0, 3),
		StartTime:   ptr("6:00 PM"),
		EndTime:     ptr("8:00 PM"),
		ServiceID:   eastAustin.ID,
	})
	s.CreateEvent(ctx, store.NewEvent{
		Title:       "Health Screenings",
		Description: ptr("Free health screenings including blood pressure, glucose, and cholesterol."),
		Date:        today.AddDate(0, 0, 5),
		StartTime:   ptr("9:00 AM"),
		EndTime:     ptr("3:00 PM"),
		ServiceID:   southAustin.ID,
		CategoryID:  &health.ID,
	})
	s.CreateEvent(ctx, store.NewEvent{
		Title:       "Community Meeting",
		Description: ptr("Monthly community meeting to discuss neighborhood issues."),
		Date:        today.AddDate(0, 0, 7),
		StartTime:   ptr("6:30 PM"),
		EndTime:     ptr("8:00 PM"),
		ServiceID:   montopolis.ID,
	})

	s.CreateParking(ctx, store.NewParking{
		Name:      "Rosewood Center Parking Lot",
		Address:   "2800 Webberville Rd, Austin, TX 78702",
		Type:      "Free",
		Hours:     ptr("24/7"),
		Rate:      ptr("Free"),
		Latitude:  30.2784,
		Longitude: -97.7143,
		ServiceID: rosewood.ID,
	})
	s.CreateParking(ctx, store.NewParking{
		Name:      "East Austin Center Parking",
		Address:   "211 Comal St, Austin, TX 78702",
		Type:      "Free",
		Hours:     ptr("7:00 AM - 8:00 PM"),
		Rate:      ptr("Free"),
		Latitude:  30.2636,
		Longitude: -97.7245,
		ServiceID: eastAustin.ID,
	})

	end := now.Add(12 * time.Hour)
	s.CreateAlert(ctx, store.NewAlert{
		Message:   "Flash Flood Warning: Avoid low water crossings near Shoal Creek until 7PM",
		Type:      "warning",
		StartTime: now,
		EndTime:   &end,
	})
}

func ptr(s string) *string { return &s }
