package database

import (
	"fmt"
	"log"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/config"
	"trainrec_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbc := cfg.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		dbc.Host,
		dbc.User,
		dbc.Password,
		dbc.DBName,
		dbc.Port,
		dbc.SSLMode,
		dbc.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Crew{},
		&model.Personnel{},
		&model.Equipment{},
		&model.Course{},
		&model.CourseModule{},
		&model.Lesson{},
		&model.CourseAssignment{},
		&model.LessonCompletion{},
		&model.KnowledgeCategory{},
		&model.KnowledgeMaterial{},
	)
	if err != nil {
		return err
	}

	return seed(db)
}

// seed inserts the fixed role set and, on an empty users table, a bootstrap
// SystemAdmin account.
func seed(db *gorm.DB) error {
	roles := []model.Role{
		{Name: authz.SystemAdmin, Description: "Full system access"},
		{Name: authz.Admin, Description: "Administrative access"},
		{Name: authz.Readit, Description: "Instructor access"},
		{Name: authz.User, Description: "Trainee access"},
	}
	for _, r := range roles {
		if err := db.Where(model.Role{Name: r.Name}).FirstOrCreate(&r).Error; err != nil {
			return err
		}
	}

	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		var sysAdmin model.Role
		if err := db.Where("name = ?", authz.SystemAdmin).First(&sysAdmin).Error; err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := model.User{
			Email:    "admin@trainrec.local",
			Password: string(hash),
			RoleID:   sysAdmin.ID,
			Active:   true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Seeded bootstrap SystemAdmin account admin@trainrec.local, change its password")
	}

	return nil
}
