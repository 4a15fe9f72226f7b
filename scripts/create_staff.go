// scripts/create_staff.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/config"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	email := os.Getenv("STAFF_EMAIL")
	if email == "" {
		email = "registrar@epi.edu"
	}
	password := os.Getenv("STAFF_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("staff user already exists:", email)
		os.Exit(0)
	}

	u := models.User{
		Name:     "Registrar",
		Email:    email,
		Password: string(hashed),
		Role:     "staff",
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert staff user: %v", err)
	}

	fmt.Println("staff user created:", email)
}
