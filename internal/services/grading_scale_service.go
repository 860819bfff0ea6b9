package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Latiftanga/SIS/internal/models"
	"github.com/Latiftanga/SIS/internal/repository"
)

// ScaleWarning is a non-fatal consistency finding about the grading scale.
// The engine keeps computing with whatever configuration exists; these are
// for the caller to display.
type ScaleWarning struct {
	Kind    string `json:"kind"` // gap, overlap
	Message string `json:"message"`
}

type GradingScaleService interface {
	// ResolveGrade maps a percentage in [0, 100] to its scale band. When
	// bands overlap, the band with the highest min_score wins; when no band
	// matches, (nil, nil) is returned and the caller leaves the grade empty.
	ResolveGrade(score float64) (*models.GradingScale, error)

	CreateBand(band *models.GradingScale) error
	UpdateBand(band *models.GradingScale) error
	DeleteBand(id uuid.UUID) error
	ListScale() ([]models.GradingScale, error)

	// CheckConsistency reports gaps and overlaps in the configured bands.
	CheckConsistency() ([]ScaleWarning, error)
}

type gradingScaleService struct {
	scaleRepo repository.GradingScaleRepository
}

func NewGradingScaleService(scaleRepo repository.GradingScaleRepository) GradingScaleService {
	return &gradingScaleService{scaleRepo: scaleRepo}
}

func (s *gradingScaleService) ResolveGrade(score float64) (*models.GradingScale, error) {
	bands, err := s.scaleRepo.List()
	if err != nil {
		return nil, err
	}
	// List is ordered by min_score descending, so the first containing band
	// is the highest one.
	for i := range bands {
		if bands[i].Contains(score) {
			return &bands[i], nil
		}
	}
	return nil, nil
}

func (s *gradingScaleService) CreateBand(band *models.GradingScale) error {
	return s.scaleRepo.Create(band)
}

func (s *gradingScaleService) UpdateBand(band *models.GradingScale) error {
	return s.scaleRepo.Update(band)
}

func (s *gradingScaleService) DeleteBand(id uuid.UUID) error {
	return s.scaleRepo.Delete(id)
}

func (s *gradingScaleService) ListScale() ([]models.GradingScale, error) {
	return s.scaleRepo.List()
}

func (s *gradingScaleService) CheckConsistency() ([]ScaleWarning, error) {
	bands, err := s.scaleRepo.List()
	if err != nil {
		return nil, err
	}

	var warnings []ScaleWarning
	for i := range bands {
		for j := i + 1; j < len(bands); j++ {
			if bands[i].MinScore <= bands[j].MaxScore && bands[j].MinScore <= bands[i].MaxScore {
				warnings = append(warnings, ScaleWarning{
					Kind: "overlap",
					Message: fmt.Sprintf("grades %s and %s overlap between %.2f and %.2f",
						bands[j].Grade, bands[i].Grade,
						maxFloat(bands[i].MinScore, bands[j].MinScore),
						minFloat(bands[i].MaxScore, bands[j].MaxScore)),
				})
			}
		}
	}

	// Walk downward from 100 looking for uncovered stretches. Bands are
	// ordered by min_score descending.
	if len(bands) == 0 {
		warnings = append(warnings, ScaleWarning{Kind: "gap", Message: "no grading scale configured"})
		return warnings, nil
	}
	if top := bands[0].MaxScore; top < 100 {
		warnings = append(warnings, ScaleWarning{
			Kind:    "gap",
			Message: fmt.Sprintf("scores above %.2f have no grade", top),
		})
	}
	for i := 0; i < len(bands)-1; i++ {
		upper, lower := bands[i], bands[i+1]
		if lower.MaxScore < upper.MinScore-0.01 {
			warnings = append(warnings, ScaleWarning{
				Kind: "gap",
				Message: fmt.Sprintf("scores between %.2f and %.2f have no grade",
					lower.MaxScore, upper.MinScore),
			})
		}
	}
	if bottom := bands[len(bands)-1].MinScore; bottom > 0 {
		warnings = append(warnings, ScaleWarning{
			Kind:    "gap",
			Message: fmt.Sprintf("scores below %.2f have no grade", bottom),
		})
	}
	return warnings, nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
