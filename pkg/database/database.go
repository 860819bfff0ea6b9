package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Latiftanga/SIS/internal/models"
)

// Database wraps the shared GORM connection for one tenant schema.
type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to Postgres when databaseURL is set, otherwise to the
// SQLite file at dbPath.
func NewDatabase(databaseURL, dbPath string) (*Database, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dialector = sqlite.Open(dbPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}
	if err := database.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// Migrate runs the schema migration for every model.
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&models.Student{},
		&models.Subject{},
		&models.Class{},
		&models.ClassSubject{},
		&models.StudentEnrollment{},
		&models.GradingPeriod{},
		&models.AssessmentType{},
		&models.SubjectAssessment{},
		&models.StudentGrade{},
		&models.GradingScale{},
		&models.TermGrade{},
		&models.ConductGrade{},
		&models.ReportCard{},
		&models.AttendanceSession{},
		&models.AttendanceRecord{},
	)
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
