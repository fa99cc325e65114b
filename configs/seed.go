package configs

import (
	"log"

	"github.com/gihanchamila/Little-Lemon-capston/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first superuser from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:       cfg.AdminEmail,
		Password:    string(hash),
		FirstName:   "Admin",
		LastName:    "Seed",
		IsSuperuser: true,
	}
	return db.Create(&admin).Error
}

// SeedLookups creates the staff groups the role gate answers for.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.Role{}, entity.Role{Name: entity.RoleManager})
	db.FirstOrCreate(&entity.Role{}, entity.Role{Name: entity.RoleDeliveryCrew})

	return nil
}
