// Package policy 实现门户的角色可见性策略。
//
// 每个资源的读权限由 (资源, 角色) 查表得到一个行过滤器，写权限由资源对应的唯一角色决定。
// 所有拒绝（未认证、越权）都在访问 repository 之前作出。
package policy

import (
	"context"

	"luct-report/backend/internal/model"
	pkgerrors "luct-report/backend/pkg/errors"
)

// Resource 受策略保护的资源类型
type Resource string

const (
	ResourceCourse   Resource = "course"
	ResourceClass    Resource = "class"
	ResourceReport   Resource = "report"
	ResourceRating   Resource = "rating"
	ResourceFeedback Resource = "feedback"
	ResourceUser     Resource = "user"
)

// Resources 全部资源，按固定顺序
var Resources = []Resource{
	ResourceCourse, ResourceClass, ResourceReport, ResourceRating, ResourceFeedback, ResourceUser,
}

// Roles 全部已知角色
var Roles = []string{
	model.RoleStudent, model.RoleLecturer, model.RolePrincipalLecturer, model.RoleProgramLeader,
}

// Claim 当前请求的已验证身份
// nil *Claim 表示匿名调用者
type Claim struct {
	UserID  string
	Role    string
	Program string
}

type rule func(c *Claim, faculty string) Filter

// readRules 已认证角色的读规则；未列出的角色一律 NoRows
var readRules = map[Resource]map[string]rule{
	ResourceCourse: {
		model.RoleStudent: func(c *Claim, f string) Filter {
			if c.Program == "" {
				return None()
			}
			return Constant(FieldFaculty, f).With(Constant(FieldProgram, c.Program))
		},
		model.RoleLecturer:          facultyCourses,
		model.RolePrincipalLecturer: facultyCourses,
		model.RoleProgramLeader:     facultyCourses,
	},
	ResourceClass: {
		model.RoleStudent:  enrolled(FieldID),
		model.RoleLecturer: own(FieldLecturerID),
		// 首席讲师的班级可见性与报告一致：按课程所属院系过滤
		model.RolePrincipalLecturer: facultyByCourse,
		model.RoleProgramLeader:     all,
	},
	ResourceReport: {
		model.RoleStudent:           enrolled(FieldClassID),
		model.RoleLecturer:          own(FieldLecturerID),
		model.RolePrincipalLecturer: facultyByCourse,
		model.RoleProgramLeader:     all,
	},
	ResourceRating: {
		model.RoleStudent:           own(FieldStudentID),
		model.RoleLecturer:          lecturerReports,
		model.RolePrincipalLecturer: all,
		model.RoleProgramLeader:     all,
	},
	ResourceFeedback: {
		model.RoleStudent:           none,
		model.RoleLecturer:          lecturerReports,
		model.RolePrincipalLecturer: own(FieldPrincipalLecturerID),
		model.RoleProgramLeader:     all,
	},
	ResourceUser: {
		model.RoleStudent:           all,
		model.RoleLecturer:          all,
		model.RolePrincipalLecturer: all,
		model.RoleProgramLeader:     all,
	},
}

// anonymousRules 允许匿名读取的资源；未列出的资源要求认证
var anonymousRules = map[Resource]rule{
	ResourceCourse: facultyCourses,
	ResourceClass:  all,
	ResourceUser:   none,
}

type writeRule struct {
	role    string
	message string
}

// writeRules 每种资源仅有一个角色可创建
var writeRules = map[Resource]writeRule{
	ResourceCourse:   {model.RoleProgramLeader, "Only Program Leaders can add courses"},
	ResourceClass:    {model.RoleProgramLeader, "Only Program Leaders can add classes"},
	ResourceReport:   {model.RoleLecturer, "Only lecturers can submit reports"},
	ResourceRating:   {model.RoleStudent, "Only students can add ratings"},
	ResourceFeedback: {model.RolePrincipalLecturer, "Only Principal Lecturers can add feedback"},
}

func all(*Claim, string) Filter  { return All() }
func none(*Claim, string) Filter { return None() }

func facultyCourses(_ *Claim, f string) Filter  { return Constant(FieldFaculty, f) }
func facultyByCourse(_ *Claim, f string) Filter { return Constant(FieldCourseFaculty, f) }

func lecturerReports(*Claim, string) Filter { return derived(FieldReportID, SourceLecturerReports) }

func own(field string) rule {
	return func(c *Claim, _ string) Filter { return Owner(field, c.UserID) }
}

func enrolled(field string) rule {
	return func(*Claim, string) Filter { return derived(field, SourceEnrolledClasses) }
}

// Rule 纯函数：根据资源与身份返回未解析的过滤器
// 匿名访问需认证的资源返回 Unauthenticated；未知角色或资源返回 NoRows
func Rule(res Resource, c *Claim, faculty string) (Filter, error) {
	if c == nil {
		if r, ok := anonymousRules[res]; ok {
			return r(nil, faculty), nil
		}
		if _, known := readRules[res]; known {
			return None(), pkgerrors.Unauthenticated("Authorization required")
		}
		return None(), nil
	}

	roles, ok := readRules[res]
	if !ok {
		return None(), nil
	}
	r, ok := roles[c.Role]
	if !ok {
		return None(), nil
	}
	return r(c, faculty), nil
}

// Authorize 创建操作的角色校验
func Authorize(res Resource, c *Claim) error {
	if c == nil {
		return pkgerrors.Unauthenticated("Authorization required")
	}
	w, ok := writeRules[res]
	if !ok || c.Role != w.role {
		msg := "You are not allowed to perform this action"
		if ok {
			msg = w.message
		}
		return pkgerrors.Forbidden(msg)
	}
	return nil
}

// IDSource 派生 ID 集合的数据来源
type IDSource interface {
	EnrolledClassIDs(ctx context.Context, studentID string) ([]string, error)
	LecturerReportIDs(ctx context.Context, lecturerID string) ([]string, error)
}

// Policy 绑定院系常量与 ID 来源的策略实例
type Policy struct {
	faculty string
	src     IDSource
}

// New 创建 Policy
func New(faculty string, src IDSource) *Policy {
	return &Policy{faculty: faculty, src: src}
}

// Faculty 院系常量
func (p *Policy) Faculty() string {
	return p.faculty
}

// Authorize 创建操作的角色校验
func (p *Policy) Authorize(res Resource, c *Claim) error {
	return Authorize(res, c)
}

// Scope 计算调用者对资源的最终过滤器
//
// 派生集合分两步查询（先取 ID 再过滤目标表），两次查询之间不加事务：
// 期间发生的选课变更可能导致一次过期的过滤结果。
func (p *Policy) Scope(ctx context.Context, res Resource, c *Claim) (Filter, error) {
	f, err := Rule(res, c, p.faculty)
	if err != nil {
		return f, err
	}
	return p.resolve(ctx, f, c)
}

func (p *Policy) resolve(ctx context.Context, f Filter, c *Claim) (Filter, error) {
	if f.Kind == ByIDs && f.Source != SourceNone {
		var (
			ids []string
			err error
		)
		switch f.Source {
		case SourceEnrolledClasses:
			ids, err = p.src.EnrolledClassIDs(ctx, c.UserID)
		case SourceLecturerReports:
			ids, err = p.src.LecturerReportIDs(ctx, c.UserID)
		}
		if err != nil {
			return None(), pkgerrors.Repository(err)
		}
		resolved := IDs(f.Field, ids)
		if resolved.Kind == NoRows {
			return resolved, nil
		}
		resolved.And = f.And
		f = resolved
	}

	if f.And != nil {
		next, err := p.resolve(ctx, *f.And, c)
		if err != nil {
			return None(), err
		}
		if next.Kind == NoRows {
			return None(), nil
		}
		f.And = &next
	}
	return f, nil
}
