// Package sandbox seeds demo data for development and sandbox
// environments: a browsable doctor directory and two well-known demo
// accounts. Seeding is idempotent and safe to run on every boot.
package sandbox

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/healthhub/healthhub/internal/domain/doctor"
	"github.com/healthhub/healthhub/internal/domain/identity"
)

// Demo account credentials shown on the login screen of the demo clients.
const (
	DemoPatientEmail = "patient@demo.com"
	DemoAdminEmail   = "admin@demo.com"
	DemoPassword     = "demo123"
)

type Seeder struct {
	doctors doctor.Repository
	users   *identity.Service
	log     zerolog.Logger
}

func NewSeeder(doctors doctor.Repository, users *identity.Service, log zerolog.Logger) *Seeder {
	return &Seeder{doctors: doctors, users: users, log: log}
}

// Run seeds doctors and demo users. Doctors are only inserted into an empty
// directory; demo users are skipped when their email is already taken.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedDoctors(ctx); err != nil {
		return fmt.Errorf("seed doctors: %w", err)
	}
	if err := s.seedDemoUsers(ctx); err != nil {
		return fmt.Errorf("seed demo users: %w", err)
	}
	return nil
}

func (s *Seeder) seedDoctors(ctx context.Context) error {
	count, err := s.doctors.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info().Int("count", count).Msg("doctors already present, skipping seed")
		return nil
	}

	for _, d := range doctorFixtures() {
		if err := s.doctors.Create(ctx, d); err != nil {
			return fmt.Errorf("create doctor %s: %w", d.Name, err)
		}
	}
	s.log.Info().Int("count", len(doctorFixtures())).Msg("doctors seeded")
	return nil
}

func (s *Seeder) seedDemoUsers(ctx context.Context) error {
	for _, in := range []identity.RegisterInput{
		{Email: DemoPatientEmail, Password: DemoPassword, Name: "Demo Patient", Role: "patient", Phone: "555-0100"},
		{Email: DemoAdminEmail, Password: DemoPassword, Name: "Demo Admin", Role: "admin", Phone: "555-0101"},
	} {
		if _, err := s.users.Authenticate(ctx, identity.LoginInput{Email: in.Email, Password: in.Password}); err == nil {
			s.log.Info().Str("email", in.Email).Msg("demo user already present")
			continue
		}
		u, err := s.users.Register(ctx, in)
		if err != nil {
			return fmt.Errorf("register %s: %w", in.Email, err)
		}
		s.log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("demo user created")
	}
	return nil
}

func strptr(s string) *string { return &s }

func doctorFixtures() []*doctor.Doctor {
	return []*doctor.Doctor{
		{
			Name:            "Dr. Sarah Johnson",
			Email:           "sarah.johnson@healthhub.com",
			Specialization:  "Cardiology",
			Qualification:   "MBBS, MD (Cardiology)",
			ExperienceYears: 15,
			Rating:          4.9,
			ReviewCount:     245,
			ConsultationFee: 150,
			Avatar:          strptr("https://images.unsplash.com/photo-1559839734-2b71ea197ec2?auto=format&fit=crop&q=80&w=200"),
			Available:       true,
			NextAvailable:   strptr("Today, 2:00 PM"),
			Bio:             strptr("Specialist in cardiovascular diseases with over 15 years of experience."),
			Languages:       []string{"English", "Spanish"},
			Hospital:        strptr("City General Hospital"),
		},
		{
			Name:            "Dr. Michael Chen",
			Email:           "michael.chen@healthhub.com",
			Specialization:  "Orthopedics",
			Qualification:   "MBBS, MS (Orthopedics)",
			ExperienceYears: 12,
			Rating:          4.8,
			ReviewCount:     189,
			ConsultationFee: 120,
			Avatar:          strptr("https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?auto=format&fit=crop&q=80&w=200"),
			Available:       true,
			NextAvailable:   strptr("Tomorrow, 10:00 AM"),
			Bio:             strptr("Expert in joint replacement and sports injuries."),
			Languages:       []string{"English", "Mandarin"},
			Hospital:        strptr("Metro Orthopedic Center"),
		},
		{
			Name:            "Dr. Emily Davis",
			Email:           "emily.davis@healthhub.com",
			Specialization:  "Pediatrics",
			Qualification:   "MBBS, MD (Pediatrics)",
			ExperienceYears: 10,
			Rating:          4.9,
			ReviewCount:     312,
			ConsultationFee: 100,
			Avatar:          strptr("https://images.unsplash.com/photo-1594824476967-48c8b964273f?auto=format&fit=crop&q=80&w=200"),
			Available:       true,
			NextAvailable:   strptr("Today, 4:00 PM"),
			Bio:             strptr("Dedicated to child healthcare and development."),
			Languages:       []string{"English"},
			Hospital:        strptr("Children's Medical Center"),
		},
		{
			Name:            "Dr. James Wilson",
			Email:           "james.wilson@healthhub.com",
			Specialization:  "Dermatology",
			Qualification:   "MBBS, MD (Dermatology)",
			ExperienceYears: 8,
			Rating:          4.7,
			ReviewCount:     156,
			ConsultationFee: 110,
			Avatar:          strptr("https://images.unsplash.com/photo-1622253692010-333f2da6031d?auto=format&fit=crop&q=80&w=200"),
			Available:       false,
			NextAvailable:   strptr("Next week"),
			Bio:             strptr("Specialist in skin conditions and cosmetic procedures."),
			Languages:       []string{"English", "French"},
			Hospital:        strptr("Skin Care Clinic"),
		},
		{
			Name:            "Dr. Priya Sharma",
			Email:           "priya.sharma@healthhub.com",
			Specialization:  "Neurology",
			Qualification:   "MBBS, DM (Neurology)",
			ExperienceYears: 14,
			Rating:          4.9,
			ReviewCount:     278,
			ConsultationFee: 180,
			Avatar:          strptr("https://images.unsplash.com/photo-1638202993928-7267aad84c31?auto=format&fit=crop&q=80&w=200"),
			Available:       true,
			NextAvailable:   strptr("Tomorrow, 3:00 PM"),
			Bio:             strptr("Expert in neurological disorders and brain health."),
			Languages:       []string{"English", "Hindi"},
			Hospital:        strptr("Neuro Care Hospital"),
		},
		{
			Name:            "Dr. David Brown",
			Email:           "david.brown@healthhub.com",
			Specialization:  "General Medicine",
			Qualification:   "MBBS, MD",
			ExperienceYears: 20,
			Rating:          4.8,
			ReviewCount:     423,
			ConsultationFee: 80,
			Avatar:          strptr("https://images.unsplash.com/photo-1537368910025-700350fe46c7?auto=format&fit=crop&q=80&w=200"),
			Available:       true,
			NextAvailable:   strptr("Today, 11:00 AM"),
			Bio:             strptr("General physician with two decades of experience."),
			Languages:       []string{"English"},
			Hospital:        strptr("Community Health Center"),
		},
	}
}
