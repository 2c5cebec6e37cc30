package repositories

import "go.mongodb.org/mongo-driver/mongo"

// Repositories bundles every repository over one database handle. The
// handle is constructor-injected so tests can point a fresh container at
// an isolated database.
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
	MarksRepository   *MarksRepository
	ReportRepository  *ReportRepository
}

// NewRepositories creates all repositories sharing one database handle
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(database),
		StudentRepository: NewStudentRepository(database),
		MarksRepository:   NewMarksRepository(database),
		ReportRepository:  NewReportRepository(database),
	}
}
