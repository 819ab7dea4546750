package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
	"luct-report/backend/internal/repository"
	pkgerrors "luct-report/backend/pkg/errors"
)

// ── 导出模块业务错误 ──

// ErrExportGenerateFail 生成或写出工作簿失败，归入内部错误
var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

func exportFailure(err error) error {
	return pkgerrors.Internal(fmt.Errorf("%w: %v", ErrExportGenerateFail, err))
}

// ExportService 导出业务接口
//
// 导出内容与 GET /reports 的可见范围一致；无可见报告时生成只有表头的工作簿。
// 文件以 bytes.Buffer 返回，由 Handler 层设置响应头后写入。
type ExportService interface {
	ExportReports(ctx context.Context, claim *policy.Claim) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	policy *policy.Policy
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, pol *policy.Policy, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, policy: pol, logger: logger, now: time.Now}
}

const exportSheet = "Lecture Reports"

type exportColumn struct {
	header string
	width  float64
	value  func(r *model.LectureReport) interface{}
}

func classOf(r *model.LectureReport) *model.Class {
	if r.Class == nil {
		return &model.Class{}
	}
	return r.Class
}

func courseOf(r *model.LectureReport) *model.Course {
	if c := classOf(r); c.Course != nil {
		return c.Course
	}
	return &model.Course{}
}

var exportColumns = []exportColumn{
	{"Report ID", 38, func(r *model.LectureReport) interface{} { return r.ReportID }},
	{"Class", 15, func(r *model.LectureReport) interface{} { return classOf(r).ClassName }},
	{"Course Code", 15, func(r *model.LectureReport) interface{} { return courseOf(r).CourseCode }},
	{"Course Name", 25, func(r *model.LectureReport) interface{} { return courseOf(r).CourseName }},
	{"Program", 20, func(r *model.LectureReport) interface{} { return courseOf(r).Program }},
	{"Lecturer", 20, func(r *model.LectureReport) interface{} {
		if r.Lecturer == nil {
			return ""
		}
		return r.Lecturer.Name
	}},
	{"Week", 12, func(r *model.LectureReport) interface{} { return r.WeekOfReporting }},
	{"Date", 12, func(r *model.LectureReport) interface{} { return r.DateOfLecture.Format(dateLayout) }},
	{"Students Present", 15, func(r *model.LectureReport) interface{} { return r.ActualStudentsPresent }},
	{"Total Students", 15, func(r *model.LectureReport) interface{} { return classOf(r).TotalRegisteredStudents }},
	{"Venue", 15, func(r *model.LectureReport) interface{} { return classOf(r).Venue }},
	{"Time", 12, func(r *model.LectureReport) interface{} { return classOf(r).ScheduledTime }},
	{"Topic", 30, func(r *model.LectureReport) interface{} { return r.TopicTaught }},
	{"Learning Outcomes", 40, func(r *model.LectureReport) interface{} { return r.LearningOutcomes }},
	{"Recommendations", 40, func(r *model.LectureReport) interface{} { return r.LecturerRecommendations }},
}

// ═══════════════════════════════════════════════════════════
// ExportReports 导出可见授课报告为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单个 Sheet "Lecture Reports"
//   - 第 1 行表头（15 列），其后每份报告一行，按提交时间倒序
//
// 返回值：buf（Excel 内容）, filename（luct-reports-YYYY-MM-DD.xlsx）, error

func (s *exportService) ExportReports(ctx context.Context, claim *policy.Claim) (*bytes.Buffer, string, error) {
	// 1. 查询可见报告
	reports, err := visibleReports(ctx, s.repo, s.policy, claim)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRepository) {
			s.logger.Error("查询导出报告失败", zap.Error(err))
		}
		return nil, "", err
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", exportFailure(err)
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, col := range exportColumns {
		name := colName(i)
		f.SetColWidth(exportSheet, name, name, col.width)
		f.SetCellValue(exportSheet, cell(name, 1), col.header)
	}
	f.SetCellStyle(exportSheet, "A1", cell(colName(len(exportColumns)-1), 1), headerStyle)

	// 数据行
	for i := range reports {
		row := i + 2
		for j, col := range exportColumns {
			f.SetCellValue(exportSheet, cell(colName(j), row), col.value(&reports[i]))
		}
	}

	// 3. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", exportFailure(err)
	}

	filename := fmt.Sprintf("luct-reports-%s.xlsx", s.now().Format(dateLayout))
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
