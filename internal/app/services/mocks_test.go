package services

import (
	"context"
	"time"

	"github.com/reposapp/backend/internal/app/models"
	"github.com/reposapp/backend/internal/pkg/apperrors"
)

// Hand-written in-memory fakes. Each method can be overridden per test; the
// zero value behaves like an empty database.

type mockUserRepo struct {
	users      map[int64]*models.User
	byEmail    map[string]*models.User
	nextID     int64
	createErr  error
	lastFields map[string]interface{}
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:   make(map[int64]*models.User),
		byEmail: make(map[string]*models.User),
		nextID:  1,
	}
}

// add stores a copy so later mutations of the argument (or of records handed
// back by the getters) never leak into the fake's state, matching a real
// repository where every query scans a fresh row.
func (m *mockUserRepo) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	stored := *user
	m.users[stored.ID] = &stored
	m.byEmail[stored.Email] = &stored
	return user
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	if _, exists := m.byEmail[user.Email]; exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	return m.add(user).ID, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	m.lastFields = fields
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type mockStudentRepo struct {
	students   map[int64]*models.Student
	byRGM      map[string]*models.Student
	nextID     int64
	lastFields map[string]interface{}
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{
		students: make(map[int64]*models.Student),
		byRGM:    make(map[string]*models.Student),
		nextID:   1,
	}
}

func (m *mockStudentRepo) add(student *models.Student) *models.Student {
	if student.ID == 0 {
		student.ID = m.nextID
		m.nextID++
	}
	m.students[student.ID] = student
	m.byRGM[student.RGM] = student
	return student
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if _, exists := m.byRGM[student.RGM]; exists {
		return nil, apperrors.ErrRGMAlreadyExists
	}
	return m.add(student), nil
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (m *mockStudentRepo) GetByRGM(ctx context.Context, rgm string) (*models.Student, error) {
	student, ok := m.byRGM[rgm]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (m *mockStudentRepo) GetAll(ctx context.Context) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(m.students))
	for _, s := range m.students {
		students = append(students, s)
	}
	return students, nil
}

func (m *mockStudentRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Student, error) {
	m.lastFields = fields
	student, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(m.students, id)
	return nil
}

type mockScheduleRepo struct {
	schedules  map[int64]*models.Schedule
	nextID     int64
	lastFields map[string]interface{}
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		schedules: make(map[int64]*models.Schedule),
		nextID:    1,
	}
}

func (m *mockScheduleRepo) add(schedule *models.Schedule) *models.Schedule {
	if schedule.ID == 0 {
		schedule.ID = m.nextID
		m.nextID++
	}
	m.schedules[schedule.ID] = schedule
	return schedule
}

func (m *mockScheduleRepo) Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	for _, s := range m.schedules {
		if s.ScheduleDate.Equal(schedule.ScheduleDate) && s.Shift == schedule.Shift {
			return nil, apperrors.ErrScheduleSlotTaken
		}
	}
	return m.add(schedule), nil
}

func (m *mockScheduleRepo) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	schedule, ok := m.schedules[id]
	if !ok {
		return nil, apperrors.ErrScheduleNotFound
	}
	return schedule, nil
}

func (m *mockScheduleRepo) GetByDateAndShift(ctx context.Context, date time.Time, shift models.Shift) (*models.Schedule, error) {
	for _, s := range m.schedules {
		if s.ScheduleDate.Equal(date) && s.Shift == shift {
			return s, nil
		}
	}
	return nil, apperrors.ErrScheduleNotFound
}

func (m *mockScheduleRepo) CountByDate(ctx context.Context, date time.Time) (int, error) {
	count := 0
	for _, s := range m.schedules {
		if s.ScheduleDate.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (m *mockScheduleRepo) GetAll(ctx context.Context) ([]*models.Schedule, error) {
	schedules := make([]*models.Schedule, 0, len(m.schedules))
	for _, s := range m.schedules {
		schedules = append(schedules, s)
	}
	return schedules, nil
}

func (m *mockScheduleRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Schedule, error) {
	m.lastFields = fields
	schedule, ok := m.schedules[id]
	if !ok {
		return nil, apperrors.ErrScheduleNotFound
	}
	return schedule, nil
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.schedules[id]; !ok {
		return apperrors.ErrScheduleNotFound
	}
	delete(m.schedules, id)
	return nil
}

type mockReplacementRepo struct {
	replacements map[int64]*models.Replacement
	nextID       int64
	lastFields   map[string]interface{}
}

func newMockReplacementRepo() *mockReplacementRepo {
	return &mockReplacementRepo{
		replacements: make(map[int64]*models.Replacement),
		nextID:       1,
	}
}

func (m *mockReplacementRepo) Create(ctx context.Context, replacement *models.Replacement) (*models.Replacement, error) {
	if replacement.ID == 0 {
		replacement.ID = m.nextID
		m.nextID++
	}
	m.replacements[replacement.ID] = replacement
	return replacement, nil
}

func (m *mockReplacementRepo) GetByID(ctx context.Context, id int64) (*models.Replacement, error) {
	replacement, ok := m.replacements[id]
	if !ok {
		return nil, apperrors.ErrReplacementNotFound
	}
	return replacement, nil
}

func (m *mockReplacementRepo) GetAll(ctx context.Context) ([]*models.Replacement, error) {
	replacements := make([]*models.Replacement, 0, len(m.replacements))
	for _, r := range m.replacements {
		replacements = append(replacements, r)
	}
	return replacements, nil
}

func (m *mockReplacementRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Replacement, error) {
	m.lastFields = fields
	replacement, ok := m.replacements[id]
	if !ok {
		return nil, apperrors.ErrReplacementNotFound
	}
	return replacement, nil
}

func (m *mockReplacementRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.replacements[id]; !ok {
		return apperrors.ErrReplacementNotFound
	}
	delete(m.replacements, id)
	return nil
}
