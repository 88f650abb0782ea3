package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/unicampus/portal/config"
	"github.com/unicampus/portal/models"
)

// Connect opens the database and migrates the schema. Failing here
// fails startup; there is no degraded mode for the postgres backend.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Faculty{},
		&models.Student{},
		&models.Attendance{},
		&models.Fee{},
		&models.Assignment{},
		&models.Submission{},
		&models.Result{},
		&models.Event{},
		&models.EventRegistration{},
		&models.TransportRoute{},
		&models.TransportBooking{},
		&models.Notification{},
		&models.Message{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}
