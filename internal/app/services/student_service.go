package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akshat/marksheet/internal/app/models"
	"github.com/akshat/marksheet/internal/pkg/apperrors"
	"github.com/akshat/marksheet/internal/pkg/auth"
)

// StudentService handles student record operations, including the user
// account provisioned alongside each student and the marks cascade on
// delete.
type StudentService struct {
	studentRepo StudentRepository
	marksRepo   MarksRepository
	userRepo    UserRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo StudentRepository, marksRepo MarksRepository, userRepo UserRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		marksRepo:   marksRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// List returns all students. Admin-only, enforced at the route.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.FindAll(ctx)
}

// Get resolves a student by object id or roll number. A student caller
// may only read their own record.
func (s *StudentService) Get(ctx context.Context, identity models.Identity, key string) (*models.Student, error) {
	student, _, err := s.studentRepo.FindByIDOrRoll(ctx, key)
	if err != nil {
		return nil, err
	}

	if !identity.IsAdmin() && identity.Username != student.RollNumber {
		return nil, apperrors.NewForbiddenError("not authorized to view this student")
	}

	return student, nil
}

// Create inserts the student and provisions a login for them: username
// and initial password are both the roll number. The two writes are
// sequential and not atomic; a crash in between leaves a student without
// a login. User provisioning is idempotent.
func (s *StudentService) Create(ctx context.Context, student *models.Student) error {
	if err := s.studentRepo.Insert(ctx, student); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByUsername(ctx, student.RollNumber); err == nil {
		return nil
	} else if !isNotFound(err) {
		return fmt.Errorf("error checking for existing user: %w", err)
	}

	hashed, err := auth.HashPassword(student.RollNumber)
	if err != nil {
		return fmt.Errorf("error hashing initial password: %w", err)
	}

	user := &models.User{
		Username:       student.RollNumber,
		Email:          fmt.Sprintf("%s@example.com", student.RollNumber),
		FullName:       student.Name,
		Role:           models.RoleStudent,
		Disabled:       false,
		HashedPassword: hashed,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("rollNumber", student.RollNumber).Msg("Provisioned student login")
	return nil
}

// UpdateByRoll updates a student matched by roll number. Absent student
// is NotFound; a no-op update is reported as ErrNoChanges.
func (s *StudentService) UpdateByRoll(ctx context.Context, rollNumber string, student *models.Student) (*models.Student, error) {
	existing, err := s.studentRepo.FindByRoll(ctx, rollNumber)
	if err != nil {
		return nil, err
	}

	modified, err := s.studentRepo.UpdateByRoll(ctx, rollNumber, student)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		return nil, apperrors.ErrNoChanges
	}

	student.ID = existing.ID
	return student, nil
}

// UpdateByID updates a student matched by object id. An id matching no
// student is NotFound; a no-op update is reported as ErrNoChanges.
func (s *StudentService) UpdateByID(ctx context.Context, idHex string, student *models.Student) (*models.Student, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidIdentifier, "invalid student id")
	}

	matched, modified, err := s.studentRepo.UpdateByID(ctx, id, student)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	if modified == 0 {
		return nil, apperrors.ErrNoChanges
	}

	student.ID = id
	return student, nil
}

// DeleteByRoll deletes a student and every marks record referencing their
// roll number. The student is resolved first: no partial cascade can
// happen without a matching student. The two deletes are sequential and
// not atomic.
func (s *StudentService) DeleteByRoll(ctx context.Context, rollNumber string) error {
	student, err := s.studentRepo.FindByRoll(ctx, rollNumber)
	if err != nil {
		return err
	}
	return s.cascadeDelete(ctx, student)
}

// DeleteByID deletes a student by object id with the same marks cascade.
// The cascade is keyed by the student's roll number, which is what marks
// documents actually reference.
func (s *StudentService) DeleteByID(ctx context.Context, idHex string) error {
	if _, err := primitive.ObjectIDFromHex(idHex); err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidIdentifier, "invalid student id")
	}

	student, via, err := s.studentRepo.FindByIDOrRoll(ctx, idHex)
	if err != nil {
		return err
	}
	if via != models.LookupByID {
		return apperrors.ErrStudentNotFound
	}

	return s.cascadeDelete(ctx, student)
}

func (s *StudentService) cascadeDelete(ctx context.Context, student *models.Student) error {
	deletedMarks, err := s.marksRepo.DeleteByStudent(ctx, student.RollNumber)
	if err != nil {
		return err
	}

	deleted, err := s.studentRepo.DeleteByID(ctx, student.ID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.ErrStudentNotFound
	}

	s.logger.Info().
		Str("rollNumber", student.RollNumber).
		Int64("deletedMarks", deletedMarks).
		Msg("Deleted student and cascaded marks")
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrUserNotFound) ||
		errors.Is(err, apperrors.ErrStudentNotFound) ||
		errors.Is(err, apperrors.ErrMarksNotFound)
}
