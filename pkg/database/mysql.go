package database

import (
	"career_guidance_backend/internal/config"
	"career_guidance_backend/internal/model"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// In release mode the schema is managed explicitly via -migrate.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.AssessmentResult{},
		)
		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	if err := seedAdmin(db, &cfg.Admin); err != nil {
		return nil, err
	}

	return db, nil
}

// seedAdmin creates the default administrator account when no admin exists
// yet. A blank password disables seeding.
func seedAdmin(db *gorm.DB, admin *config.AdminConfig) error {
	if admin == nil || admin.Password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := admin.Name
	if name == "" {
		name = "Administrator"
	}
	user := &model.User{
		Name:     name,
		Email:    admin.Email,
		Password: string(hashed),
		Role:     model.Admin,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("Seeded default admin account %s", admin.Email)
	return nil
}
