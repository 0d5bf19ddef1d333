package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"team-planner-backend/internal/config"
	"team-planner-backend/internal/database"
	"team-planner-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type PriorityData struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

type UserData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type GroupMemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type GroupData struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	CreatedBy   string            `yaml:"created_by"`
	Members     []GroupMemberData `yaml:"members,omitempty"`
}

// SeedFile is the shape of every YAML file under the data directory; sections may be omitted
type SeedFile struct {
	Priorities []PriorityData `yaml:"priorities"`
	Users      []UserData     `yaml:"users"`
	Groups     []GroupData    `yaml:"groups"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	seed, err := readSeedFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to read seed files: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		created := 0
		for _, p := range seed.Priorities {
			ok, err := createPriority(tx, p)
			if err != nil {
				return fmt.Errorf("failed to create priority %s: %w", p.Name, err)
			}
			if ok {
				created++
			}
		}
		log.Printf("Priorities: %d created, %d total", created, len(seed.Priorities))

		users := make(map[string]*models.User)
		created = 0
		for _, u := range seed.Users {
			user, ok, err := createUser(tx, u)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", u.Email, err)
			}
			users[strings.ToLower(u.Email)] = user
			if ok {
				created++
			}
		}
		log.Printf("Users: %d created, %d total", created, len(seed.Users))

		created = 0
		for _, g := range seed.Groups {
			ok, err := createGroup(tx, g, users)
			if err != nil {
				return fmt.Errorf("failed to create group %s: %w", g.Name, err)
			}
			if ok {
				created++
			}
		}
		log.Printf("Groups: %d created, %d total", created, len(seed.Groups))
		return nil
	})
}

func readSeedFiles(dataDir string) (*SeedFile, error) {
	var all SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		all.Priorities = append(all.Priorities, file.Priorities...)
		all.Users = append(all.Users, file.Users...)
		all.Groups = append(all.Groups, file.Groups...)
		return nil
	})

	return &all, err
}

func createPriority(db *gorm.DB, data PriorityData) (bool, error) {
	var priority models.Priority
	err := db.Where("name = ?", data.Name).First(&priority).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query priority: %w", err)
	}

	priority = models.Priority{Name: data.Name, Weight: data.Weight}
	if err := db.Create(&priority).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var user models.User
	err := db.Where("LOWER(email) = LOWER(?)", data.Email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	user = models.User{Name: data.Name, Email: data.Email}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createGroup(db *gorm.DB, data GroupData, users map[string]*models.User) (bool, error) {
	creator := users[strings.ToLower(data.CreatedBy)]
	if creator == nil {
		return false, fmt.Errorf("creator %s not found", data.CreatedBy)
	}

	var group models.Group
	err := db.Where("name = ?", data.Name).First(&group).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query group: %w", err)
	}

	group = models.Group{Name: data.Name, Description: data.Description, CreatedBy: creator.ID}
	if err := db.Create(&group).Error; err != nil {
		return false, err
	}

	now := time.Now().UTC()
	members := []models.GroupMember{{GroupID: group.ID, UserID: creator.ID, Role: models.MemberRoleAdmin, JoinedAt: now}}
	for _, m := range data.Members {
		user := users[strings.ToLower(m.Email)]
		if user == nil {
			return false, fmt.Errorf("member %s not found", m.Email)
		}
		if user.ID == creator.ID {
			continue
		}
		role := models.MemberRoleMember
		if models.MemberRole(m.Role) == models.MemberRoleAdmin {
			role = models.MemberRoleAdmin
		}
		members = append(members, models.GroupMember{GroupID: group.ID, UserID: user.ID, Role: role, JoinedAt: now})
	}

	if err := db.Create(&members).Error; err != nil {
		return false, fmt.Errorf("failed to add members: %w", err)
	}
	return true, nil
}
