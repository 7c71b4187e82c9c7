package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"smartserve/internal/config"
	"smartserve/internal/database"
	"smartserve/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db,
		&domain.User{},
		&domain.Admin{},
		&domain.Service{},
		&domain.Professional{},
		&domain.Booking{},
		&domain.Review{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM professionals")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM admins")
	db.Exec("DELETE FROM users")

	now := time.Now()

	log.Println("Creating admins...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admins := []domain.Admin{
		{Username: "superadmin", Email: "admin@smartserve.com", PasswordHash: string(adminHash), FullName: "Super Admin", Role: "superadmin", IsActive: true},
		{Username: "admin", Email: "support@smartserve.com", PasswordHash: string(adminHash), FullName: "Support Admin", Role: "admin", IsActive: true},
	}
	if err := db.Create(&admins).Error; err != nil {
		log.Fatal("admins: ", err)
	}

	log.Println("Creating demo user...")
	userHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := domain.User{
		Email:        "test@example.com",
		PasswordHash: string(userHash),
		Name:         "Test User",
		Phone:        "+92 300 1234567",
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("user: ", err)
	}

	log.Println("Creating services...")
	services := []domain.Service{
		{Name: "Plumbing", Description: "Expert plumbing services", Price: 2500, DurationMinutes: 120, Icon: "fa-faucet", Category: "home", IsActive: true},
		{Name: "Cleaning", Description: "Professional cleaning services", Price: 2000, DurationMinutes: 180, Icon: "fa-broom", Category: "home", IsActive: true},
		{Name: "Car Wash", Description: "Car washing and detailing", Price: 1500, DurationMinutes: 60, Icon: "fa-car", Category: "auto", IsActive: true},
		{Name: "Electrical", Description: "Certified electrical services", Price: 3000, DurationMinutes: 120, Icon: "fa-bolt", Category: "home", IsActive: true},
		{Name: "HVAC", Description: "Heating and cooling services", Price: 4000, DurationMinutes: 240, Icon: "fa-wind", Category: "home", IsActive: true},
		{Name: "Pest Control", Description: "Pest elimination services", Price: 3500, DurationMinutes: 90, Icon: "fa-bug", Category: "home", IsActive: true},
	}
	if err := db.Create(&services).Error; err != nil {
		log.Fatal("services: ", err)
	}

	log.Println("Creating professionals...")
	professionals := []domain.Professional{
		{Name: "Ali Khan", Email: "ali.khan@smartserve.com", ServiceID: services[0].ID, IsAvailable: true, VerifiedByAdmin: true, Rating: 4.8, ExperienceYears: 5},
		{Name: "Usman Malik", Email: "usman.malik@smartserve.com", ServiceID: services[0].ID, IsAvailable: true, VerifiedByAdmin: true, Rating: 4.6, ExperienceYears: 3},
		{Name: "Sara Ahmed", Email: "sara.ahmed@smartserve.com", ServiceID: services[1].ID, IsAvailable: true, VerifiedByAdmin: true, Rating: 4.5, ExperienceYears: 3},
		{Name: "Javed Iqbal", Email: "javed.iqbal@smartserve.com", ServiceID: services[3].ID, IsAvailable: true, VerifiedByAdmin: false, Rating: 4.2, ExperienceYears: 7},
	}
	if err := db.Create(&professionals).Error; err != nil {
		log.Fatal("professionals: ", err)
	}

	log.Println("Creating demo bookings...")
	proID := professionals[2].ID
	bookings := []domain.Booking{
		{
			Reference:   uuid.NewString(),
			UserID:      user.ID,
			ServiceID:   services[0].ID,
			BookingDate: now.AddDate(0, 0, 3).Format("2006-01-02"),
			BookingTime: "10:00",
			Address:     "House 12, Street 5, Islamabad",
			TotalPrice:  services[0].Price + domain.ConvenienceFee,
			Status:      domain.BookingPending,
		},
		{
			Reference:      uuid.NewString(),
			UserID:         user.ID,
			ServiceID:      services[1].ID,
			ProfessionalID: &proID,
			BookingDate:    now.AddDate(0, 0, -14).Format("2006-01-02"),
			BookingTime:    "09:00",
			Address:        "House 12, Street 5, Islamabad",
			TotalPrice:     services[1].Price + domain.ConvenienceFee,
			Status:         domain.BookingCompleted,
		},
	}
	if err := db.Create(&bookings).Error; err != nil {
		log.Fatal("bookings: ", err)
	}

	log.Println("Creating reviews...")
	review := domain.Review{
		BookingID:      bookings[1].ID,
		ServiceID:      services[1].ID,
		ProfessionalID: proID,
		Rating:         5,
		Comment:        "Quick and thorough, would book again.",
	}
	if err := db.Create(&review).Error; err != nil {
		log.Fatal("review: ", err)
	}

	log.Println("Seed complete.")
	log.Println("  user:  test@example.com / password123")
	log.Println("  admin: superadmin / admin123")
}
