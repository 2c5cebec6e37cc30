package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akshat/marksheet/internal/app/models"
	"github.com/akshat/marksheet/internal/pkg/apperrors"
)

// MarksService handles marks record operations
type MarksService struct {
	marksRepo   MarksRepository
	studentRepo StudentRepository
	logger      zerolog.Logger
}

// NewMarksService creates a new MarksService
func NewMarksService(marksRepo MarksRepository, studentRepo StudentRepository, logger zerolog.Logger) *MarksService {
	return &MarksService{
		marksRepo:   marksRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Add inserts a marks record. The referenced student must exist at write
// time; nothing is written otherwise.
func (s *MarksService) Add(ctx context.Context, marks *models.Marks) error {
	if _, err := s.studentRepo.FindByRoll(ctx, marks.StudentID); err != nil {
		if isNotFound(err) {
			return apperrors.NewCustomError(apperrors.ErrStudentNotFound,
				fmt.Sprintf("student with roll number %s not found", marks.StudentID))
		}
		return err
	}

	return s.marksRepo.Insert(ctx, marks)
}

// ForStudent lists all marks belonging to a roll number. A student
// caller may only read their own marks; an unknown roll number yields an
// empty list, not an error.
func (s *MarksService) ForStudent(ctx context.Context, identity models.Identity, rollNumber string) ([]models.Marks, error) {
	if !identity.IsAdmin() && identity.Username != rollNumber {
		return nil, apperrors.NewForbiddenError("not authorized to view these marks")
	}

	return s.marksRepo.FindByStudent(ctx, rollNumber)
}

// ListAll returns every marks record joined with the owning student's
// name. Admin-only, enforced at the route.
func (s *MarksService) ListAll(ctx context.Context) ([]models.MarksWithStudent, error) {
	return s.marksRepo.FindAllWithStudent(ctx)
}

// GetByID fetches a single marks record. A student caller may only read
// a record whose student_id is their own roll number.
func (s *MarksService) GetByID(ctx context.Context, identity models.Identity, idHex string) (*models.Marks, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidIdentifier, "invalid marks id")
	}

	marks, err := s.marksRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.IsAdmin() && marks.StudentID != identity.Username {
		return nil, apperrors.NewForbiddenError("not authorized to view these marks")
	}

	return marks, nil
}

// UpdateByID updates a marks record. Absent record is NotFound; a no-op
// update is reported as ErrNoChanges.
func (s *MarksService) UpdateByID(ctx context.Context, idHex string, marks *models.Marks) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidIdentifier, "invalid marks id")
	}

	matched, modified, err := s.marksRepo.UpdateByID(ctx, id, marks)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.ErrMarksNotFound
	}
	if modified == 0 {
		return apperrors.ErrNoChanges
	}
	return nil
}

// DeleteByID deletes a marks record by object id
func (s *MarksService) DeleteByID(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidIdentifier, "invalid marks id")
	}

	deleted, err := s.marksRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.ErrMarksNotFound
	}
	return nil
}
