package main

import (
	"log"
	"os"
	"strings"

	"agazian/config"
	"agazian/database"
	"agazian/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account. Credentials come from ADMIN_NAME, ADMIN_EMAIL and
// ADMIN_PASSWORD; an existing user with the same email is promoted instead.
func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	name := os.Getenv("ADMIN_NAME")
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")

	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if name == "" {
		name = "Administrator"
	}
	if len(password) < 6 {
		log.Fatal("ADMIN_PASSWORD must be at least 6 characters long")
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		if existing.Role == models.RoleAdmin {
			log.Printf("User %s is already an admin", email)
			return
		}
		if err := db.Model(&existing).Update("role", models.RoleAdmin).Error; err != nil {
			log.Fatalf("Failed to promote user: %v", err)
		}
		log.Printf("Promoted existing user %s to admin", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Created admin account %s (id %d)", email, admin.ID)
}
