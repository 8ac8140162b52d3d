package main

import (
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"domainsmarket/internal/config"
	"domainsmarket/internal/database"
	"domainsmarket/internal/domain"
	"domainsmarket/internal/pkg/logger"
)

// Seeds a first admin account plus a few demo users and listings so a fresh
// environment is usable immediately. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Setup(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	seedAdmin(db, "admin@domains.ge", "admin123")

	alice := seedUser(db, "alice@example.com", "password1")
	bob := seedUser(db, "bob@example.com", "password2")

	seedDomain(db, "example.ge", "Short and memorable.", domain.DomainStatusApproved, &alice.ID)
	seedDomain(db, "shop.ge", "Perfect for e-commerce.", domain.DomainStatusApproved, &bob.ID)
	seedDomain(db, "startup.ge", "", domain.DomainStatusPending, &alice.ID)
	seedDomain(db, "guest-offer.ge", "Submitted by a guest.", domain.DomainStatusPending, nil)

	log.Info().Msg("seed complete")
}

func seedAdmin(db *gorm.DB, email, password string) {
	var existing domain.Admin
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash failed")
	}
	if err := db.Create(&domain.Admin{Email: email, Password: string(hash)}).Error; err != nil {
		log.Fatal().Err(err).Msg("admin create failed")
	}
	log.Info().Str("email", email).Msg("admin created")
}

func seedUser(db *gorm.DB, email, password string) *domain.User {
	var existing domain.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("user lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash failed")
	}
	u := &domain.User{Email: email, Password: string(hash)}
	if err := db.Create(u).Error; err != nil {
		log.Fatal().Err(err).Msg("user create failed")
	}
	log.Info().Str("email", email).Msg("user created")
	return u
}

func seedDomain(db *gorm.DB, name, description string, status int, userID *int64) {
	var existing domain.Domain
	err := db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("domain lookup failed")
	}

	d := &domain.Domain{Name: name, Description: description, Status: status, UserID: userID}
	if err := db.Create(d).Error; err != nil {
		log.Fatal().Err(err).Msg("domain create failed")
	}
	log.Info().Str("name", name).Msg("domain created")
}
