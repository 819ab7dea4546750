package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"luct-report/backend/internal/policy"
)

// column 策略字段对应的 SQL 列，joins 为该列所需的关联
type column struct {
	name  string
	joins []string
}

// columnMap 每个资源表的字段映射
type columnMap map[string]column

// applyFilter 将策略过滤器翻译为 GORM 条件
// 返回 ok=false 表示过滤结果必为空，调用方应直接返回空集而不发起查询
func applyFilter(db *gorm.DB, f policy.Filter, cols columnMap) (*gorm.DB, bool, error) {
	if f.Empty() {
		return db, false, nil
	}

	joined := make(map[string]bool)
	for cur := &f; cur != nil; cur = cur.And {
		if cur.Kind == policy.AllRows {
			continue
		}
		if cur.Kind == policy.ByIDs && cur.Source != policy.SourceNone {
			return db, false, fmt.Errorf("过滤器未解析: field=%s", cur.Field)
		}

		col, ok := cols[cur.Field]
		if !ok {
			return db, false, fmt.Errorf("不支持的过滤字段: %s", cur.Field)
		}
		for _, j := range col.joins {
			if !joined[j] {
				joined[j] = true
				db = db.Joins(j)
			}
		}

		switch cur.Kind {
		case policy.ByIDs:
			db = db.Where(col.name+" IN ?", cur.IDs)
		case policy.ByOwnerField, policy.ByConstant:
			db = db.Where(col.name+" = ?", cur.Value)
		default:
			return db, false, fmt.Errorf("未知的过滤类型: %s", cur.Kind)
		}
	}
	return db, true, nil
}

// ── 各表的字段映射 ──

const (
	joinClassOfReport = "JOIN classes ON classes.class_id = lecture_reports.class_id"
	joinCourseOfClass = "JOIN courses ON courses.course_id = classes.course_id"
)

var courseColumns = columnMap{
	policy.FieldID:      {name: "courses.course_id"},
	policy.FieldFaculty: {name: "courses.faculty"},
	policy.FieldProgram: {name: "courses.program"},
}

var classColumns = columnMap{
	policy.FieldID:            {name: "classes.class_id"},
	policy.FieldLecturerID:    {name: "classes.lecturer_id"},
	policy.FieldCourseFaculty: {name: "courses.faculty", joins: []string{joinCourseOfClass}},
}

var reportColumns = columnMap{
	policy.FieldID:            {name: "lecture_reports.report_id"},
	policy.FieldClassID:       {name: "lecture_reports.class_id"},
	policy.FieldLecturerID:    {name: "lecture_reports.lecturer_id"},
	policy.FieldCourseFaculty: {name: "courses.faculty", joins: []string{joinClassOfReport, joinCourseOfClass}},
}

var ratingColumns = columnMap{
	policy.FieldID:        {name: "ratings.rating_id"},
	policy.FieldReportID:  {name: "ratings.report_id"},
	policy.FieldStudentID: {name: "ratings.student_id"},
}

var feedbackColumns = columnMap{
	policy.FieldID:                  {name: "feedback.feedback_id"},
	policy.FieldReportID:            {name: "feedback.report_id"},
	policy.FieldPrincipalLecturerID: {name: "feedback.principal_lecturer_id"},
}

var userColumns = columnMap{
	policy.FieldID:      {name: "users.user_id"},
	policy.FieldFaculty: {name: "users.faculty"},
}

// likePattern 构造 ILIKE 包含匹配模式，转义通配符
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return "%" + r.Replace(q) + "%"
}
