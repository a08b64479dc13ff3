package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/grodno-ai/club-backend/internal/models"
)

func main() {
	dbPath := os.Getenv("CLUB_DB_PATH")
	if dbPath == "" {
		dbPath = "./data/club.db"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Course{},
		&models.TeamMember{},
		&models.Registration{},
		&models.User{},
		&models.Setting{},
		&models.EmailTemplate{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("✓ Database migrated successfully")

	// Seed admin user
	adminEmail := os.Getenv("CLUB_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@grodno.ai"
	}
	adminPassword := os.Getenv("CLUB_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme123"
	}

	var existing models.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == gorm.ErrRecordNotFound {
		admin := models.User{Email: adminEmail}
		if err := admin.SetPassword(adminPassword); err != nil {
			log.Fatal("Failed to hash admin password:", err)
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatal("Failed to create admin user:", err)
		}
		fmt.Printf("✓ Admin user created: %s\n", adminEmail)
	} else {
		fmt.Printf("✓ Admin user already exists: %s\n", adminEmail)
	}

	// Seed course catalog
	courses := []models.Course{
		{
			Title:       "ML Basics",
			Description: "A hands-on introduction to machine learning: data preparation, classic models and evaluation.",
			Duration:    "8 weeks",
			Features:    models.StringList{"Weekly workshops", "Practice datasets", "Certificate"},
		},
		{
			Title:       "Prompt Engineering",
			Description: "Working effectively with large language models, from basics to production prompting patterns.",
			Duration:    "4 weeks",
			Features:    models.StringList{"Live sessions", "Real project work"},
		},
		{
			Title:       "AI for Business",
			Description: "Where AI actually pays off: use cases, pilots and adoption pitfalls for local companies.",
			Duration:    "6 weeks",
			Features:    models.StringList{"Case studies", "Guest speakers", "Consulting hour"},
		},
	}
	for _, course := range courses {
		var found models.Course
		if err := db.Where("title = ?", course.Title).First(&found).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&course).Error; err != nil {
				log.Fatal("Failed to seed course:", err)
			}
		}
	}
	fmt.Println("✓ Course catalog seeded")

	// Seed team members
	team := []models.TeamMember{
		{Name: "Dzmitry A.", Role: "Founder", Description: "Leads the club and the business track.", OrderPosition: 1, IsActive: true},
		{Name: "Tatsiana K.", Role: "Program Lead", Description: "Curates the training catalog.", OrderPosition: 2, IsActive: true},
	}
	for _, member := range team {
		var found models.TeamMember
		if err := db.Where("name = ?", member.Name).First(&found).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&member).Error; err != nil {
				log.Fatal("Failed to seed team member:", err)
			}
		}
	}
	fmt.Println("✓ Team members seeded")

	// Seed the new_registration email template
	var tmpl models.EmailTemplate
	if err := db.Where("name = ?", "new_registration").First(&tmpl).Error; err == gorm.ErrRecordNotFound {
		tmpl = models.EmailTemplate{
			Name:    "new_registration",
			Subject: "New course registration - AI Club",
			Body: `A new course registration has arrived!

Details:
Name: {{name}}
Email: {{email}}
Phone: {{phone}}
Telegram: {{telegram}}
Course: {{courseName}}
Submitted: {{createdAt}}

Open the admin panel to review all registrations.`,
			Variables: models.StringList{"name", "email", "phone", "telegram", "courseName", "createdAt"},
			IsActive:  true,
		}
		if err := db.Create(&tmpl).Error; err != nil {
			log.Fatal("Failed to seed email template:", err)
		}
		fmt.Println("✓ Email template seeded")
	} else {
		fmt.Println("✓ Email template already exists")
	}

	fmt.Println("Done.")
}
