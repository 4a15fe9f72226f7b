package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/config"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

// Migrate keeps the schema in sync; also used by tests against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Major{},
		&models.Teacher{},
		&models.AcademicCalendar{},
		&models.Course{},
		&models.ProgramCourse{},
		&models.Schedule{},
		&models.Student{},
		&models.StudentCourse{},
		&models.StudentAttendance{},
		&models.Bill{},
		&models.Payment{},
		&models.Club{},
		&models.ClubMembership{},
		&models.Event{},
		&models.EventRegistration{},
		&models.News{},
	)
}
