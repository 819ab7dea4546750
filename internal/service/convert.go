package service

import (
	"time"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/model"
)

const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Faculty:       u.Faculty,
		CourseProgram: u.Program(),
		Gender:        deref(u.Gender),
		CreatedAt:     formatTime(u.CreatedAt),
		UpdatedAt:     formatTime(u.UpdatedAt),
	}
}

func toPublicUserResponse(u *model.User) dto.PublicUserResponse {
	return dto.PublicUserResponse{
		ID:      u.UserID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Faculty: u.Faculty,
	}
}

func toCourseResponse(c *model.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:         c.CourseID,
		CourseCode: c.CourseCode,
		CourseName: c.CourseName,
		CourseType: c.CourseType,
		Credits:    c.Credits,
		Program:    c.Program,
		Faculty:    c.Faculty,
	}
}

func toClassResponse(c *model.Class) dto.ClassResponse {
	resp := dto.ClassResponse{
		ID:                      c.ClassID,
		ClassName:               c.ClassName,
		CourseID:                c.CourseID,
		Venue:                   c.Venue,
		ScheduledTime:           c.ScheduledTime,
		TotalRegisteredStudents: c.TotalRegisteredStudents,
		LecturerID:              deref(c.LecturerID),
	}
	if c.Course != nil {
		resp.CourseCode = c.Course.CourseCode
		resp.CourseName = c.Course.CourseName
		resp.Program = c.Course.Program
	}
	if c.Lecturer != nil {
		resp.LecturerName = c.Lecturer.Name
	}
	return resp
}

func toReportResponse(r *model.LectureReport) dto.ReportResponse {
	resp := dto.ReportResponse{
		ID:                      r.ReportID,
		ClassID:                 r.ClassID,
		LecturerID:              r.LecturerID,
		WeekOfReporting:         r.WeekOfReporting,
		DateOfLecture:           r.DateOfLecture.Format(dateLayout),
		ActualStudentsPresent:   r.ActualStudentsPresent,
		TopicTaught:             r.TopicTaught,
		LearningOutcomes:        r.LearningOutcomes,
		LecturerRecommendations: r.LecturerRecommendations,
		CreatedAt:               formatTime(r.CreatedAt),
	}
	if r.Class != nil {
		resp.ClassName = r.Class.ClassName
		resp.Venue = r.Class.Venue
		resp.ScheduledTime = r.Class.ScheduledTime
		resp.TotalRegisteredStudents = r.Class.TotalRegisteredStudents
		if r.Class.Course != nil {
			resp.CourseCode = r.Class.Course.CourseCode
			resp.CourseName = r.Class.Course.CourseName
			resp.Program = r.Class.Course.Program
			resp.Faculty = r.Class.Course.Faculty
		}
	}
	if r.Lecturer != nil {
		resp.LecturerName = r.Lecturer.Name
	}
	return resp
}

// reportSummary 评分与反馈列表中引用的报告摘要
func reportSummary(r *model.LectureReport) (topic, className, courseName string) {
	if r == nil {
		return
	}
	topic = r.TopicTaught
	if r.Class != nil {
		className = r.Class.ClassName
		if r.Class.Course != nil {
			courseName = r.Class.Course.CourseName
		}
	}
	return
}

func toRatingResponse(r *model.Rating) dto.RatingResponse {
	resp := dto.RatingResponse{
		ID:          r.RatingID,
		ReportID:    r.ReportID,
		StudentID:   r.StudentID,
		RatingValue: r.RatingValue,
		Comment:     r.Comment,
		CreatedAt:   formatTime(r.CreatedAt),
	}
	resp.TopicTaught, resp.ClassName, resp.CourseName = reportSummary(r.Report)
	if r.Student != nil {
		resp.StudentName = r.Student.Name
	}
	return resp
}

func toFeedbackResponse(f *model.Feedback) dto.FeedbackResponse {
	resp := dto.FeedbackResponse{
		ID:                  f.FeedbackID,
		ReportID:            f.ReportID,
		PrincipalLecturerID: f.PrincipalLecturerID,
		FeedbackText:        f.FeedbackText,
		CreatedAt:           formatTime(f.CreatedAt),
	}
	resp.TopicTaught, resp.ClassName, resp.CourseName = reportSummary(f.Report)
	if f.PrincipalLecturer != nil {
		resp.PrincipalLecturerName = f.PrincipalLecturer.Name
	}
	return resp
}
