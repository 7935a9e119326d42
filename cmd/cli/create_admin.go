package main

// Command: create_admin.go
//
// Description:
// Creates an admin dashboard account. Prompts for a username and password,
// hashes the password with bcrypt, and inserts the account. Intended for
// bootstrapping a fresh deployment; the API has no self-registration.
//
// Usage:
//   make create-admin
//   # Then follow the prompts.

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/storelaunch/launchlist/config"
	"github.com/storelaunch/launchlist/domain/admin"
	"github.com/storelaunch/launchlist/internal/log"
	"github.com/storelaunch/launchlist/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 12

func CreateAdmin(logger *log.Logger) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Enter the admin username: ")
	scanner.Scan()
	username := strings.TrimSpace(scanner.Text())

	if username == "" {
		fmt.Println("unable to create admin, username cannot be empty")
		os.Exit(1)
	}

	fmt.Println("Enter the admin password: ")
	scanner.Scan()
	password := strings.TrimSpace(scanner.Text())

	if len(password) < minPasswordLength {
		fmt.Printf("unable to create admin, password must be at least %d characters\n", minPasswordLength)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err.Error())
		os.Exit(1)
	}

	dbCfg := &config.DBConfig{}
	db, err := config.NewDatabase(logger, dbCfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repository := admin.NewAdminRepository(db)

	user, err := repository.CreateUser(ctx, &models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
	})
	if err != nil {
		logger.Error("Failed to create admin user", "username", username, "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Admin user created", "id", user.ID, "username", user.Username)
}
