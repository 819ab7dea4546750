package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
	"luct-report/backend/internal/repository"
)

// ── 内存存储 ──
//
// 所有 mock repository 共享同一份 memStore，List 类方法按 policy.Filter 求值，
// 与 GORM 实现的字段语义保持一致（course.faculty 经 班级→课程 关联求值）。

type memStore struct {
	mu sync.Mutex

	users       map[string]*model.User
	courses     map[string]*model.Course
	classes     map[string]*model.Class
	enrollments []model.Enrollment
	reports     map[string]*model.LectureReport
	ratings     []*model.Rating
	feedback    []*model.Feedback

	seq   int
	calls int // repository 方法调用次数

	enrollErr error // 注入 BatchCreate 失败
	listErr   error // 注入 List/Search 失败
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[string]*model.User),
		courses: make(map[string]*model.Course),
		classes: make(map[string]*model.Class),
		reports: make(map[string]*model.LectureReport),
	}
}

var baseTime = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func (s *memStore) touch() {
	s.calls++
}

func (s *memStore) nextID(prefix string) (string, time.Time) {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq), baseTime.Add(time.Duration(s.seq) * time.Minute)
}

func (s *memStore) repository() *repository.Repository {
	return &repository.Repository{
		User:       &memUserRepo{s},
		Course:     &memCourseRepo{s},
		Class:      &memClassRepo{s},
		Enrollment: &memEnrollmentRepo{s},
		Report:     &memReportRepo{s},
		Rating:     &memRatingRepo{s},
		Feedback:   &memFeedbackRepo{s},
	}
}

// matchFilter 在内存中求值过滤器；未解析的派生过滤器视为不匹配
func matchFilter(f policy.Filter, field func(string) string) bool {
	for cur := &f; cur != nil; cur = cur.And {
		switch cur.Kind {
		case policy.AllRows:
			continue
		case policy.ByIDs:
			if cur.Source != policy.SourceNone {
				return false
			}
			v := field(cur.Field)
			found := false
			for _, id := range cur.IDs {
				if id == v {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case policy.ByOwnerField, policy.ByConstant:
			if field(cur.Field) != cur.Value {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}

func (s *memStore) courseFaculty(classID string) string {
	if c, ok := s.classes[classID]; ok {
		if course, ok := s.courses[c.CourseID]; ok {
			return course.Faculty
		}
	}
	return ""
}

// hydrateClass 模拟 Preload("Course").Preload("Lecturer")
func (s *memStore) hydrateClass(c model.Class) model.Class {
	c.Course = s.courses[c.CourseID]
	if c.LecturerID != nil {
		c.Lecturer = s.users[*c.LecturerID]
	}
	return c
}

func (s *memStore) hydrateReport(r model.LectureReport) model.LectureReport {
	if c, ok := s.classes[r.ClassID]; ok {
		hc := s.hydrateClass(*c)
		r.Class = &hc
	}
	r.Lecturer = s.users[r.LecturerID]
	return r
}

// ── UserRepository ──

type memUserRepo struct{ s *memStore }

func (m *memUserRepo) Create(_ context.Context, user *model.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	for _, u := range m.s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		user.UserID, user.CreatedAt = m.s.nextID("user")
		user.UpdatedAt = user.CreatedAt
	}
	cp := *user
	m.s.users[user.UserID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if u, ok := m.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	for _, u := range m.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) Update(_ context.Context, user *model.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	existing, ok := m.s.users[user.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Faculty = user.Faculty
	existing.CourseProgram = user.CourseProgram
	existing.Gender = user.Gender
	return nil
}

func (m *memUserRepo) Search(_ context.Context, f policy.Filter, keyword string, limit int) ([]model.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	result := []model.User{}
	for _, u := range m.s.users {
		ok := matchFilter(f, func(field string) string {
			switch field {
			case policy.FieldID:
				return u.UserID
			case policy.FieldFaculty:
				return u.Faculty
			}
			return ""
		})
		if ok && (containsFold(u.Name, keyword) || containsFold(u.Email, keyword)) {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ── CourseRepository ──

type memCourseRepo struct{ s *memStore }

func (m *memCourseRepo) Create(_ context.Context, course *model.Course) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if course.CourseID == "" {
		course.CourseID, course.CreatedAt = m.s.nextID("course")
	}
	cp := *course
	m.s.courses[course.CourseID] = &cp
	return nil
}

func (m *memCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if c, ok := m.s.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memCourseRepo) filtered(f policy.Filter, keep func(*model.Course) bool) []model.Course {
	result := []model.Course{}
	for _, c := range m.s.courses {
		ok := matchFilter(f, func(field string) string {
			switch field {
			case policy.FieldID:
				return c.CourseID
			case policy.FieldFaculty:
				return c.Faculty
			case policy.FieldProgram:
				return c.Program
			}
			return ""
		})
		if ok && keep(c) {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseCode < result[j].CourseCode })
	return result
}

func (m *memCourseRepo) List(_ context.Context, f policy.Filter) ([]model.Course, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	return m.filtered(f, func(*model.Course) bool { return true }), nil
}

func (m *memCourseRepo) Search(_ context.Context, f policy.Filter, keyword string, limit int) ([]model.Course, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	result := m.filtered(f, func(c *model.Course) bool {
		return containsFold(c.CourseCode, keyword) || containsFold(c.CourseName, keyword)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ── ClassRepository ──

type memClassRepo struct{ s *memStore }

func (m *memClassRepo) Create(_ context.Context, class *model.Class) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if class.ClassID == "" {
		class.ClassID, class.CreatedAt = m.s.nextID("class")
	}
	cp := *class
	cp.Course, cp.Lecturer = nil, nil
	m.s.classes[class.ClassID] = &cp
	return nil
}

func (m *memClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if c, ok := m.s.classes[id]; ok {
		hc := m.s.hydrateClass(*c)
		return &hc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memClassRepo) List(_ context.Context, f policy.Filter) ([]model.Class, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	result := []model.Class{}
	for _, c := range m.s.classes {
		ok := matchFilter(f, func(field string) string {
			switch field {
			case policy.FieldID:
				return c.ClassID
			case policy.FieldLecturerID:
				if c.LecturerID == nil {
					return ""
				}
				return *c.LecturerID
			case policy.FieldCourseFaculty:
				return m.s.courseFaculty(c.ClassID)
			}
			return ""
		})
		if ok {
			result = append(result, m.s.hydrateClass(*c))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ClassName < result[j].ClassName })
	return result, nil
}

func (m *memClassRepo) ListIDsByProgram(_ context.Context, program string) ([]string, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	var ids []string
	for _, c := range m.s.classes {
		if course, ok := m.s.courses[c.CourseID]; ok && course.Program == program {
			ids = append(ids, c.ClassID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// ── EnrollmentRepository ──

type memEnrollmentRepo struct{ s *memStore }

func (m *memEnrollmentRepo) BatchCreate(_ context.Context, rows []model.Enrollment) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if m.s.enrollErr != nil {
		return m.s.enrollErr
	}
	for _, row := range rows {
		if m.exists(row.StudentID, row.ClassID) {
			continue
		}
		row.EnrollmentID, row.CreatedAt = m.s.nextID("enroll")
		m.s.enrollments = append(m.s.enrollments, row)
	}
	return nil
}

func (m *memEnrollmentRepo) exists(studentID, classID string) bool {
	for _, e := range m.s.enrollments {
		if e.StudentID == studentID && e.ClassID == classID {
			return true
		}
	}
	return false
}

func (m *memEnrollmentRepo) ListClassIDsByStudent(_ context.Context, studentID string) ([]string, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	var ids []string
	for _, e := range m.s.enrollments {
		if e.StudentID == studentID {
			ids = append(ids, e.ClassID)
		}
	}
	return ids, nil
}

func (m *memEnrollmentRepo) Exists(_ context.Context, studentID, classID string) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	return m.exists(studentID, classID), nil
}

// ── ReportRepository ──

type memReportRepo struct{ s *memStore }

func (m *memReportRepo) Create(_ context.Context, report *model.LectureReport) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if report.ReportID == "" {
		report.ReportID, report.CreatedAt = m.s.nextID("report")
	}
	cp := *report
	cp.Class, cp.Lecturer = nil, nil
	m.s.reports[report.ReportID] = &cp
	return nil
}

func (m *memReportRepo) GetByID(_ context.Context, id string) (*model.LectureReport, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if r, ok := m.s.reports[id]; ok {
		hr := m.s.hydrateReport(*r)
		return &hr, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memReportRepo) filtered(f policy.Filter, keep func(*model.LectureReport) bool) []model.LectureReport {
	result := []model.LectureReport{}
	for _, r := range m.s.reports {
		ok := matchFilter(f, func(field string) string {
			switch field {
			case policy.FieldID:
				return r.ReportID
			case policy.FieldClassID:
				return r.ClassID
			case policy.FieldLecturerID:
				return r.LecturerID
			case policy.FieldCourseFaculty:
				return m.s.courseFaculty(r.ClassID)
			}
			return ""
		})
		if ok && keep(r) {
			result = append(result, m.s.hydrateReport(*r))
		}
	}
	// created_at 倒序
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (m *memReportRepo) List(_ context.Context, f policy.Filter) ([]model.LectureReport, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	return m.filtered(f, func(*model.LectureReport) bool { return true }), nil
}

func (m *memReportRepo) Search(_ context.Context, f policy.Filter, keyword string, limit int) ([]model.LectureReport, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	result := m.filtered(f, func(r *model.LectureReport) bool {
		return containsFold(r.TopicTaught, keyword) ||
			containsFold(r.LearningOutcomes, keyword) ||
			containsFold(r.LecturerRecommendations, keyword)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *memReportRepo) ListIDsByLecturer(_ context.Context, lecturerID string) ([]string, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	var ids []string
	for _, r := range m.s.reports {
		if r.LecturerID == lecturerID {
			ids = append(ids, r.ReportID)
		}
	}
	return ids, nil
}

// ── RatingRepository ──

type memRatingRepo struct{ s *memStore }

func (m *memRatingRepo) Create(_ context.Context, rating *model.Rating) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	rating.RatingID, rating.CreatedAt = m.s.nextID("rating")
	cp := *rating
	m.s.ratings = append(m.s.ratings, &cp)
	return nil
}

func (m *memRatingRepo) List(_ context.Context, f policy.Filter) ([]model.Rating, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	result := []model.Rating{}
	for i := len(m.s.ratings) - 1; i >= 0; i-- {
		r := m.s.ratings[i]
		ok := matchFilter(f, func(field string) string {
			switch field {
			case policy.FieldID:
				return r.RatingID
			case policy.FieldReportID:
				return r.ReportID
			case policy.FieldStudentID:
				return r.StudentID
			}
			return ""
		})
		if ok {
			cp := *r
			if rep, found := m.s.reports[r.ReportID]; found {
				hr := m.s.hydrateReport(*rep)
				cp.Report = &hr
			}
			cp.Student = m.s.users[r.StudentID]
			result = append(result, cp)
		}
	}
	return result, nil
}

// ── FeedbackRepository ──

type memFeedbackRepo struct{ s *memStore }

func (m *memFeedbackRepo) Create(_ context.Context, fb *model.Feedback) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	fb.FeedbackID, fb.CreatedAt = m.s.nextID("feedback")
	cp := *fb
	m.s.feedback = append(m.s.feedback, &cp)
	return nil
}

func (m *memFeedbackRepo) List(_ context.Context, f policy.Filter) ([]model.Feedback, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.touch()
	if m.s.listErr != nil {
		return nil, m.s.listErr
	}
	result := []model.Feedback{}
	for i := len(m.s.feedback) - 1; i >= 0; i-- {
		fb := m.s.feedback[i]
		ok := matchFilter(f, func(field string) string {
			switch field {
			case policy.FieldID:
				return fb.FeedbackID
			case policy.FieldReportID:
				return fb.ReportID
			case policy.FieldPrincipalLecturerID:
				return fb.PrincipalLecturerID
			}
			return ""
		})
		if ok {
			cp := *fb
			if rep, found := m.s.reports[fb.ReportID]; found {
				hr := m.s.hydrateReport(*rep)
				cp.Report = &hr
			}
			cp.PrincipalLecturer = m.s.users[fb.PrincipalLecturerID]
			result = append(result, cp)
		}
	}
	return result, nil
}
