package main

import (
	"log"

	"gorm.io/gorm/clause"

	"github.com/Latiftanga/SIS/internal/config"
	"github.com/Latiftanga/SIS/internal/models"
	"github.com/Latiftanga/SIS/pkg/database"
)

// Seeds the standard Ghanaian grading scale (A1-F9) and the default
// assessment types. Run once per tenant after provisioning.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	scale := []models.GradingScale{
		{Grade: "A1", MinScore: 80.00, MaxScore: 100.00, Interpretation: "Excellent", GradePoint: 4.00, IsPassing: true, Remarks: "Outstanding performance"},
		{Grade: "B2", MinScore: 75.00, MaxScore: 79.99, Interpretation: "Very Good", GradePoint: 3.50, IsPassing: true, Remarks: "Very good performance"},
		{Grade: "B3", MinScore: 70.00, MaxScore: 74.99, Interpretation: "Good", GradePoint: 3.00, IsPassing: true, Remarks: "Good performance"},
		{Grade: "C4", MinScore: 65.00, MaxScore: 69.99, Interpretation: "Credit", GradePoint: 2.50, IsPassing: true, Remarks: "Satisfactory performance"},
		{Grade: "C5", MinScore: 60.00, MaxScore: 64.99, Interpretation: "Credit", GradePoint: 2.00, IsPassing: true, Remarks: "Fairly satisfactory performance"},
		{Grade: "C6", MinScore: 55.00, MaxScore: 59.99, Interpretation: "Credit", GradePoint: 1.50, IsPassing: true, Remarks: "Acceptable performance"},
		{Grade: "D7", MinScore: 50.00, MaxScore: 54.99, Interpretation: "Pass", GradePoint: 1.00, IsPassing: true, Remarks: "Marginally acceptable"},
		{Grade: "E8", MinScore: 45.00, MaxScore: 49.99, Interpretation: "Pass", GradePoint: 0.50, IsPassing: true, Remarks: "Weak pass"},
		{Grade: "F9", MinScore: 0.00, MaxScore: 44.99, Interpretation: "Fail", GradePoint: 0.00, IsPassing: false, Remarks: "Unacceptable performance"},
	}

	for i := range scale {
		err := db.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "grade"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"min_score", "max_score", "interpretation", "grade_point", "is_passing", "remarks", "updated_at",
			}),
		}).Create(&scale[i]).Error
		if err != nil {
			log.Fatalf("Failed to seed grade %s: %v", scale[i].Grade, err)
		}
		log.Printf("Seeded grade %s (%s)", scale[i].Grade, scale[i].Interpretation)
	}

	assessmentTypes := []models.AssessmentType{
		{Name: "Class Test", Code: "CT", Description: "Regular class tests", IsExam: false, DefaultWeight: 5.00, DefaultMaxScore: 100, IsActive: true},
		{Name: "Assignment", Code: "ASG", Description: "Homework and assignments", IsExam: false, DefaultWeight: 5.00, DefaultMaxScore: 100, IsActive: true},
		{Name: "Quiz", Code: "QZ", Description: "Short quizzes", IsExam: false, DefaultWeight: 5.00, DefaultMaxScore: 20, IsActive: true},
		{Name: "Project", Code: "PROJ", Description: "Projects and practical work", IsExam: false, DefaultWeight: 10.00, DefaultMaxScore: 100, IsActive: true},
		{Name: "Mid-Term Exam", Code: "MID", Description: "Mid-term examination", IsExam: false, DefaultWeight: 15.00, DefaultMaxScore: 100, IsActive: true},
		{Name: "End of Term Exam", Code: "EXAM", Description: "Final end of term examination", IsExam: true, DefaultWeight: 70.00, DefaultMaxScore: 100, IsActive: true},
	}

	for i := range assessmentTypes {
		err := db.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "is_exam", "default_weight", "default_max_score", "is_active", "updated_at",
			}),
		}).Create(&assessmentTypes[i]).Error
		if err != nil {
			log.Fatalf("Failed to seed assessment type %s: %v", assessmentTypes[i].Code, err)
		}
		log.Printf("Seeded assessment type %s (%s)", assessmentTypes[i].Name, assessmentTypes[i].Code)
	}

	log.Println("Grading setup completed")
}
