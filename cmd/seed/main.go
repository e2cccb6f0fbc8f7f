package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"officemarket/internal/database"
	"officemarket/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "officemarket.db"
	}
	reviewerName := os.Getenv("REVIEWER_NAME")
	if reviewerName == "" {
		reviewerName = "romuel"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM office_tag")
	db.Exec("DELETE FROM images")
	db.Exec("DELETE FROM offices")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	reviewerHash, _ := bcrypt.GenerateFromPassword([]byte("reviewer123"), bcrypt.DefaultCost)
	reviewer := domain.User{
		Name:         reviewerName,
		Email:        "reviewer@officemarket.test",
		PasswordHash: string(reviewerHash),
	}
	db.Create(&reviewer)
	log.Printf("Reviewer created: %s / reviewer123", reviewer.Email)

	owners := []domain.User{}
	for i := 1; i <= 2; i++ {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		owner := domain.User{
			Name:         fmt.Sprintf("Owner %d", i),
			Email:        fmt.Sprintf("owner%d@officemarket.test", i),
			PasswordHash: string(hash),
		}
		db.Create(&owner)
		owners = append(owners, owner)
	}

	visitorHash, _ := bcrypt.GenerateFromPassword([]byte("visitor123"), bcrypt.DefaultCost)
	visitor := domain.User{
		Name:         "Visitor",
		Email:        "visitor@officemarket.test",
		PasswordHash: string(visitorHash),
	}
	db.Create(&visitor)

	// ================== TAGS ==================
	log.Println("Creating tags...")

	tagNames := []string{"wifi", "parking", "coffee", "meeting-room", "standing-desk"}
	tags := []domain.Tag{}
	for _, name := range tagNames {
		t := domain.Tag{Name: name}
		db.Create(&t)
		tags = append(tags, t)
	}

	// ================== OFFICES ==================
	log.Println("Creating offices...")

	offices := []domain.Office{
		{
			UserID:          owners[0].ID,
			Title:           "Leiria Hub",
			Description:     "Quiet coworking floor near the castle",
			Lat:             39.740517,
			Lng:             -8.770375,
			AddressLine1:    "Rua Principal 1, Leiria",
			PricePerDay:     10_000,
			MonthlyDiscount: 5,
			ApprovalStatus:  domain.ApprovalApproved,
		},
		{
			UserID:          owners[0].ID,
			Title:           "Torres Vedras Loft",
			Description:     "Open space with river view",
			Lat:             39.077566,
			Lng:             -9.281267,
			AddressLine1:    "Avenida Central 12, Torres Vedras",
			PricePerDay:     15_000,
			MonthlyDiscount: 10,
			ApprovalStatus:  domain.ApprovalApproved,
		},
		{
			UserID:         owners[1].ID,
			Title:          "Lisbon Rooftop",
			Description:    "Desks under the sun",
			Lat:            38.720661,
			Lng:            -9.160448,
			AddressLine1:   "Praca do Comercio 3, Lisboa",
			PricePerDay:    25_000,
			ApprovalStatus: domain.ApprovalApproved,
			Hidden:         true,
		},
		{
			UserID:         owners[1].ID,
			Title:          "Porto Riverside",
			Description:    "Awaiting review",
			Lat:            41.140,
			Lng:            -8.611,
			AddressLine1:   "Cais da Ribeira 8, Porto",
			PricePerDay:    18_000,
			ApprovalStatus: domain.ApprovalPending,
		},
	}
	for i := range offices {
		db.Create(&offices[i])
		db.Create(&domain.Image{OfficeID: offices[i].ID, Path: fmt.Sprintf("offices/%d/front.jpg", offices[i].ID)})
		db.Model(&offices[i]).Association("Tags").Append(&[]domain.Tag{tags[i%len(tags)], tags[(i+1)%len(tags)]})
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")

	today := time.Now().Truncate(24 * time.Hour)
	db.Create(&domain.Reservation{
		OfficeID:  offices[0].ID,
		UserID:    visitor.ID,
		Status:    domain.ReservationActive,
		StartDate: today.AddDate(0, 0, 7),
		EndDate:   today.AddDate(0, 0, 9),
	})
	db.Create(&domain.Reservation{
		OfficeID:  offices[1].ID,
		UserID:    visitor.ID,
		Status:    domain.ReservationCancelled,
		StartDate: today.AddDate(0, 0, -14),
		EndDate:   today.AddDate(0, 0, -12),
	})

	log.Println("Seed complete")
}
