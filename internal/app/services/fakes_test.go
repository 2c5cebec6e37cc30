package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akshat/marksheet/internal/app/models"
	"github.com/akshat/marksheet/internal/pkg/apperrors"
)

// In-memory repository fakes. Each test builds fresh instances so cases
// stay isolated.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

type fakeStudentRepo struct {
	students []*models.Student
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{}
	for _, s := range students {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		repo.students = append(repo.students, s)
	}
	return repo
}

func (f *fakeStudentRepo) Insert(_ context.Context, student *models.Student) error {
	student.ID = primitive.NewObjectID()
	copied := *student
	f.students = append(f.students, &copied)
	return nil
}

func (f *fakeStudentRepo) FindAll(_ context.Context) ([]models.Student, error) {
	out := make([]models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStudentRepo) FindByRoll(_ context.Context, rollNumber string) (*models.Student, error) {
	for _, s := range f.students {
		if s.RollNumber == rollNumber {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) FindByIDOrRoll(ctx context.Context, key string) (*models.Student, models.LookupVia, error) {
	if oid, err := primitive.ObjectIDFromHex(key); err == nil {
		for _, s := range f.students {
			if s.ID == oid {
				copied := *s
				return &copied, models.LookupByID, nil
			}
		}
	}
	student, err := f.FindByRoll(ctx, key)
	if err != nil {
		return nil, models.LookupNone, err
	}
	return student, models.LookupByRoll, nil
}

func (f *fakeStudentRepo) UpdateByRoll(_ context.Context, rollNumber string, student *models.Student) (int64, error) {
	for _, s := range f.students {
		if s.RollNumber == rollNumber {
			if equalStudents(s, student) {
				return 0, nil
			}
			id := s.ID
			*s = *student
			s.ID = id
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStudentRepo) UpdateByID(_ context.Context, id primitive.ObjectID, student *models.Student) (int64, int64, error) {
	for _, s := range f.students {
		if s.ID == id {
			if equalStudents(s, student) {
				return 1, 0, nil
			}
			*s = *student
			s.ID = id
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (f *fakeStudentRepo) DeleteByRoll(_ context.Context, rollNumber string) (int64, error) {
	for i, s := range f.students {
		if s.RollNumber == rollNumber {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStudentRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i, s := range f.students {
		if s.ID == id {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func equalStudents(a, b *models.Student) bool {
	return a.Name == b.Name &&
		a.RollNumber == b.RollNumber &&
		a.ClassName == b.ClassName &&
		a.Section == b.Section
}

type fakeMarksRepo struct {
	marks []*models.Marks
}

func newFakeMarksRepo(marks ...*models.Marks) *fakeMarksRepo {
	repo := &fakeMarksRepo{}
	for _, m := range marks {
		if m.ID.IsZero() {
			m.ID = primitive.NewObjectID()
		}
		repo.marks = append(repo.marks, m)
	}
	return repo
}

func (f *fakeMarksRepo) Insert(_ context.Context, marks *models.Marks) error {
	marks.ID = primitive.NewObjectID()
	copied := *marks
	f.marks = append(f.marks, &copied)
	return nil
}

func (f *fakeMarksRepo) FindByStudent(_ context.Context, rollNumber string) ([]models.Marks, error) {
	out := make([]models.Marks, 0)
	for _, m := range f.marks {
		if m.StudentID == rollNumber {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMarksRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Marks, error) {
	for _, m := range f.marks {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, apperrors.ErrMarksNotFound
}

func (f *fakeMarksRepo) FindAllWithStudent(_ context.Context) ([]models.MarksWithStudent, error) {
	out := make([]models.MarksWithStudent, 0, len(f.marks))
	for _, m := range f.marks {
		out = append(out, models.MarksWithStudent{Marks: *m, StudentName: "Unknown Student"})
	}
	return out, nil
}

func (f *fakeMarksRepo) UpdateByID(_ context.Context, id primitive.ObjectID, marks *models.Marks) (int64, int64, error) {
	for _, m := range f.marks {
		if m.ID == id {
			if *m == withID(marks, id) {
				return 1, 0, nil
			}
			*m = withID(marks, id)
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (f *fakeMarksRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i, m := range f.marks {
		if m.ID == id {
			f.marks = append(f.marks[:i], f.marks[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeMarksRepo) DeleteByStudent(_ context.Context, rollNumber string) (int64, error) {
	var kept []*models.Marks
	var deleted int64
	for _, m := range f.marks {
		if m.StudentID == rollNumber {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	f.marks = kept
	return deleted, nil
}

func withID(m *models.Marks, id primitive.ObjectID) models.Marks {
	copied := *m
	copied.ID = id
	return copied
}

type fakeReportRepo struct {
	groups     []models.ClassGroup
	stats      map[string]*models.ClassMarksStats
	subjects   []models.SubjectPerformance
	performers []models.TopPerformer
	err        error
}

func (f *fakeReportRepo) ClassGroups(_ context.Context) ([]models.ClassGroup, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.groups, nil
}

func (f *fakeReportRepo) ClassMarksStats(_ context.Context, rollNumbers []string) (*models.ClassMarksStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(rollNumbers) == 0 {
		return nil, nil
	}
	return f.stats[rollNumbers[0]], nil
}

func (f *fakeReportRepo) SubjectPerformance(_ context.Context) ([]models.SubjectPerformance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subjects, nil
}

func (f *fakeReportRepo) TopPerformers(_ context.Context, limit int64) ([]models.TopPerformer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if int64(len(f.performers)) > limit {
		return f.performers[:limit], nil
	}
	return f.performers, nil
}
