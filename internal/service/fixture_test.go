package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"luct-report/backend/config"
	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
	"luct-report/backend/pkg/jwt"
)

const testFaculty = config.DefaultFaculty

// campus 测试用的院系数据
//
//	courses:  DIT (IT, FICT)  BBA (BBA, FICT)  ACC (ACC, Business)
//	classes:  itA(DIT, lec1)  itB(DIT, 无讲师)  bbaA(BBA, lec2)  accA(ACC, lec2)
//	reports:  r1(itA, lec1)   r2(bbaA, lec2)   r3(accA, lec2)
type campus struct {
	store *memStore
	svc   *Service
	jwt   *jwt.Manager

	student, lec1, lec2, prl, pl *model.User

	dit, bba, acc        *model.Course
	itA, itB, bbaA, accA *model.Class
	r1, r2, r3           *model.LectureReport
}

// uid 生成测试用的合法 UUID
func uid(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "test-secret-key-for-unit-testing-2026",
			TokenTTL:  24 * time.Hour,
		},
		Portal: config.PortalConfig{
			Faculty:     testFaculty,
			SearchLimit: 50,
		},
	}
}

func newCampus() *campus {
	s := newMemStore()
	cfg := testConfig()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	c := &campus{
		store: s,
		jwt:   jwtMgr,
		svc:   NewService(cfg, s.repository(), jwtMgr, nil, zap.NewNop()),
	}

	addUser := func(id, name, role, program string) *model.User {
		u := &model.User{UserID: id, Name: name, Email: emailOf(name), PasswordHash: "x", Role: role, Faculty: testFaculty}
		if program != "" {
			p := program
			u.CourseProgram = &p
		}
		s.users[id] = u
		return u
	}
	c.student = addUser(uid(1), "Palesa", model.RoleStudent, "IT")
	c.lec1 = addUser(uid(2), "Mr Mokoena", model.RoleLecturer, "")
	c.lec2 = addUser(uid(3), "Ms Nthabiseng", model.RoleLecturer, "")
	c.prl = addUser(uid(4), "Dr Lerotholi", model.RolePrincipalLecturer, "")
	c.pl = addUser(uid(5), "Prof Sechaba", model.RoleProgramLeader, "")

	addCourse := func(id, code, program, faculty string) *model.Course {
		co := &model.Course{CourseID: id, CourseCode: code, CourseName: code + " course", CourseType: "core", Credits: 3, Program: program, Faculty: faculty}
		s.courses[id] = co
		return co
	}
	c.dit = addCourse(uid(11), "DIT101", "IT", testFaculty)
	c.bba = addCourse(uid(12), "BBA101", "BBA", testFaculty)
	c.acc = addCourse(uid(13), "ACC101", "ACC", "Faculty of Business")

	addClass := func(id, name string, course *model.Course, lecturer *model.User) *model.Class {
		cl := &model.Class{ClassID: id, ClassName: name, CourseID: course.CourseID, Venue: "Hall 6", ScheduledTime: "Mon 08:30", TotalRegisteredStudents: 40}
		if lecturer != nil {
			lid := lecturer.UserID
			cl.LecturerID = &lid
		}
		s.classes[id] = cl
		return cl
	}
	c.itA = addClass(uid(21), "IT-A", c.dit, c.lec1)
	c.itB = addClass(uid(22), "IT-B", c.dit, nil)
	c.bbaA = addClass(uid(23), "BBA-A", c.bba, c.lec2)
	c.accA = addClass(uid(24), "ACC-A", c.acc, c.lec2)

	addReport := func(id string, class *model.Class, lecturer *model.User, topic string, age int) *model.LectureReport {
		r := &model.LectureReport{
			ReportID:                id,
			ClassID:                 class.ClassID,
			LecturerID:              lecturer.UserID,
			WeekOfReporting:         "Week 4",
			DateOfLecture:           time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			ActualStudentsPresent:   32,
			TopicTaught:             topic,
			LearningOutcomes:        "Students can " + topic,
			LecturerRecommendations: "Revise " + topic,
		}
		r.CreatedAt = baseTime.Add(-time.Duration(age) * time.Hour)
		s.reports[id] = r
		return r
	}
	c.r1 = addReport(uid(31), c.itA, c.lec1, "Subnetting", 3)
	c.r2 = addReport(uid(32), c.bbaA, c.lec2, "Marketing mix", 2)
	c.r3 = addReport(uid(33), c.accA, c.lec2, "Ledgers", 1)

	return c
}

// enroll 直接写入选课关系
func (c *campus) enroll(student *model.User, classes ...*model.Class) {
	for _, cl := range classes {
		c.store.enrollments = append(c.store.enrollments, model.Enrollment{
			EnrollmentID: "enr-" + student.UserID + "-" + cl.ClassID,
			StudentID:    student.UserID,
			ClassID:      cl.ClassID,
		})
	}
}

func emailOf(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@luct.ac.ls"
}

func claimOf(u *model.User) *policy.Claim {
	return &policy.Claim{UserID: u.UserID, Role: u.Role, Program: u.Program()}
}
