package models

// GradingScale is one band of the school-wide grading table (Ghanaian A1-F9
// by default). Bands map a [min_score, max_score] range to a grade symbol and
// grade point. Bands must not overlap and should cover 0-100 continuously;
// both are advisory properties surfaced by the consistency check, not
// structural constraints.
type GradingScale struct {
	BaseModel
	Grade    string  `json:"grade" gorm:"type:varchar(2);uniqueIndex;not null"` // A1, B2, ... F9
	MinScore float64 `json:"min_score" gorm:"type:decimal(5,2);not null"`
	MaxScore float64 `json:"max_score" gorm:"type:decimal(5,2);not null"`

	Interpretation string  `json:"interpretation" gorm:"type:varchar(50)"` // Excellent, Very Good, ...
	GradePoint     float64 `json:"grade_point" gorm:"type:decimal(3,2);not null"`
	Remarks        string  `json:"remarks" gorm:"type:varchar(100)"`

	IsPassing bool `json:"is_passing" gorm:"default:true"`
}

// Contains reports whether score falls inside this band.
func (s *GradingScale) Contains(score float64) bool {
	return score >= s.MinScore && score <= s.MaxScore
}
