package repositories

import (
	"github.com/reposapp/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	StudentRepository     *StudentRepository
	ScheduleRepository    *ScheduleRepository
	ReplacementRepository *ReplacementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(database.Pool),
		StudentRepository:     NewStudentRepository(database.Pool),
		ScheduleRepository:    NewScheduleRepository(database),
		ReplacementRepository: NewReplacementRepository(database.Pool),
	}
}
