package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/database"
	"github.com/dghimirey/edVance/app/models"
)

// Bootstraps the first admin account. Run once after the database is up:
//
//	go run ./cmd/addadmin -email admin@school.test -name "Admin" -password <pw>
func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "", "admin full name")
	password := flag.String("password", "", "admin password (min 8 characters)")
	flag.Parse()

	if *email == "" || *name == "" || len(*password) < 8 {
		flag.Usage()
		os.Exit(1)
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	exists, err := database.EmailExists(db, *email)
	if err != nil {
		log.Fatal("Failed to check email:", err)
	}
	if exists {
		log.Fatalf("A user with email %s already exists", *email)
	}

	hashed, err := database.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:    *email,
		Password: hashed,
		FullName: *name,
		Status:   models.StatusApproved,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}
	if err := database.AssignRole(db, user.ID, models.RoleAdmin); err != nil {
		log.Fatal("Failed to assign admin role:", err)
	}

	fmt.Printf("Admin created: %s (%s)\n", user.FullName, user.Email)
}
