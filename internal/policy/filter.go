package policy

import "sort"

// Kind 行过滤器类型
type Kind int

const (
	// NoRows 不返回任何行（默认零值，保证未初始化的过滤器失败关闭）
	NoRows Kind = iota
	// AllRows 不加过滤
	AllRows
	// ByIDs 外键/主键属于给定集合
	ByIDs
	// ByOwnerField 归属字段等于调用者 ID
	ByOwnerField
	// ByConstant 字段等于固定值（如院系常量）
	ByConstant
)

func (k Kind) String() string {
	switch k {
	case NoRows:
		return "NoRows"
	case AllRows:
		return "AllRows"
	case ByIDs:
		return "ByIDs"
	case ByOwnerField:
		return "ByOwnerField"
	case ByConstant:
		return "ByConstant"
	default:
		return "Unknown"
	}
}

// 过滤字段（语义名，由 repository 映射为实际列）
const (
	FieldID                  = "id"
	FieldFaculty             = "faculty"
	FieldProgram             = "program"
	FieldCourseFaculty       = "course.faculty"
	FieldLecturerID          = "lecturer_id"
	FieldClassID             = "class_id"
	FieldStudentID           = "student_id"
	FieldReportID            = "report_id"
	FieldPrincipalLecturerID = "principal_lecturer_id"
)

// Source 派生 ID 集合的来源
type Source int

const (
	SourceNone Source = iota
	// SourceEnrolledClasses 学生选课记录中的 class_id
	SourceEnrolledClasses
	// SourceLecturerReports 讲师本人提交的 report_id
	SourceLecturerReports
)

// Filter 行过滤谓词
// And 非空时表示与另一个过滤器取交集
type Filter struct {
	Kind   Kind
	Field  string
	Value  string
	IDs    []string
	Source Source
	And    *Filter
}

// None 不返回任何行
func None() Filter { return Filter{Kind: NoRows} }

// All 返回全部行
func All() Filter { return Filter{Kind: AllRows} }

// Owner 归属字段过滤
func Owner(field, value string) Filter {
	return Filter{Kind: ByOwnerField, Field: field, Value: value}
}

// Constant 固定值过滤
func Constant(field, value string) Filter {
	return Filter{Kind: ByConstant, Field: field, Value: value}
}

// IDs 集合过滤，集合为空时退化为 NoRows
func IDs(field string, ids []string) Filter {
	ids = Dedupe(ids)
	if len(ids) == 0 {
		return None()
	}
	return Filter{Kind: ByIDs, Field: field, IDs: ids}
}

// derived 待解析的集合过滤
func derived(field string, src Source) Filter {
	return Filter{Kind: ByIDs, Field: field, Source: src}
}

// With 追加交集条件
func (f Filter) With(other Filter) Filter {
	if f.Kind == NoRows || other.Kind == NoRows {
		return None()
	}
	if f.Kind == AllRows {
		return other
	}
	if other.Kind == AllRows {
		return f
	}
	next := other
	if f.And != nil {
		next = f.And.With(other)
	}
	f.And = &next
	return f
}

// Empty 是否确定不返回任何行
func (f Filter) Empty() bool {
	if f.Kind == NoRows {
		return true
	}
	return f.And != nil && f.And.Empty()
}

// Dedupe 去重并排序，保证相同输入得到相同过滤器
func Dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
