package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luct-report/backend/internal/model"
	pkgerrors "luct-report/backend/pkg/errors"
)

const testFaculty = "Faculty of ICT (FICT)"

type fakeSource struct {
	enrolled map[string][]string
	reports  map[string][]string
	err      error
	calls    int
}

func (f *fakeSource) EnrolledClassIDs(_ context.Context, id string) ([]string, error) {
	f.calls++
	return f.enrolled[id], f.err
}

func (f *fakeSource) LecturerReportIDs(_ context.Context, id string) ([]string, error) {
	f.calls++
	return f.reports[id], f.err
}

func claimFor(role string) *Claim {
	return &Claim{UserID: "u-" + role, Role: role, Program: "IT"}
}

// ── 读规则矩阵 ──

func TestRule_Matrix(t *testing.T) {
	type want struct {
		kind   Kind
		field  string
		value  string
		source Source
	}
	cases := []struct {
		res  Resource
		role string
		want want
	}{
		{ResourceCourse, model.RoleStudent, want{ByConstant, FieldFaculty, testFaculty, SourceNone}},
		{ResourceCourse, model.RoleLecturer, want{ByConstant, FieldFaculty, testFaculty, SourceNone}},
		{ResourceCourse, model.RolePrincipalLecturer, want{ByConstant, FieldFaculty, testFaculty, SourceNone}},
		{ResourceCourse, model.RoleProgramLeader, want{ByConstant, FieldFaculty, testFaculty, SourceNone}},

		{ResourceClass, model.RoleStudent, want{ByIDs, FieldID, "", SourceEnrolledClasses}},
		{ResourceClass, model.RoleLecturer, want{ByOwnerField, FieldLecturerID, "u-lecturer", SourceNone}},
		{ResourceClass, model.RolePrincipalLecturer, want{ByConstant, FieldCourseFaculty, testFaculty, SourceNone}},
		{ResourceClass, model.RoleProgramLeader, want{AllRows, "", "", SourceNone}},

		{ResourceReport, model.RoleStudent, want{ByIDs, FieldClassID, "", SourceEnrolledClasses}},
		{ResourceReport, model.RoleLecturer, want{ByOwnerField, FieldLecturerID, "u-lecturer", SourceNone}},
		{ResourceReport, model.RolePrincipalLecturer, want{ByConstant, FieldCourseFaculty, testFaculty, SourceNone}},
		{ResourceReport, model.RoleProgramLeader, want{AllRows, "", "", SourceNone}},

		{ResourceRating, model.RoleStudent, want{ByOwnerField, FieldStudentID, "u-student", SourceNone}},
		{ResourceRating, model.RoleLecturer, want{ByIDs, FieldReportID, "", SourceLecturerReports}},
		{ResourceRating, model.RolePrincipalLecturer, want{AllRows, "", "", SourceNone}},
		{ResourceRating, model.RoleProgramLeader, want{AllRows, "", "", SourceNone}},

		{ResourceFeedback, model.RoleStudent, want{NoRows, "", "", SourceNone}},
		{ResourceFeedback, model.RoleLecturer, want{ByIDs, FieldReportID, "", SourceLecturerReports}},
		{ResourceFeedback, model.RolePrincipalLecturer, want{ByOwnerField, FieldPrincipalLecturerID, "u-principal_lecturer", SourceNone}},
		{ResourceFeedback, model.RoleProgramLeader, want{AllRows, "", "", SourceNone}},

		{ResourceUser, model.RoleStudent, want{AllRows, "", "", SourceNone}},
		{ResourceUser, model.RoleProgramLeader, want{AllRows, "", "", SourceNone}},
	}

	for _, tc := range cases {
		t.Run(string(tc.res)+"/"+tc.role, func(t *testing.T) {
			f, err := Rule(tc.res, claimFor(tc.role), testFaculty)
			require.NoError(t, err)
			assert.Equal(t, tc.want.kind, f.Kind)
			assert.Equal(t, tc.want.field, f.Field)
			assert.Equal(t, tc.want.value, f.Value)
			assert.Equal(t, tc.want.source, f.Source)
		})
	}
}

func TestRule_StudentCoursesFilteredByProgram(t *testing.T) {
	f, err := Rule(ResourceCourse, claimFor(model.RoleStudent), testFaculty)
	require.NoError(t, err)
	require.NotNil(t, f.And)
	assert.Equal(t, Constant(FieldProgram, "IT"), *f.And)
}

func TestRule_StudentWithoutProgramSeesNoCourses(t *testing.T) {
	c := &Claim{UserID: "s1", Role: model.RoleStudent}
	f, err := Rule(ResourceCourse, c, testFaculty)
	require.NoError(t, err)
	assert.Equal(t, NoRows, f.Kind)
}

func TestRule_Anonymous(t *testing.T) {
	f, err := Rule(ResourceCourse, nil, testFaculty)
	require.NoError(t, err)
	assert.Equal(t, Constant(FieldFaculty, testFaculty), f)

	f, err = Rule(ResourceClass, nil, testFaculty)
	require.NoError(t, err)
	assert.Equal(t, AllRows, f.Kind)

	f, err = Rule(ResourceUser, nil, testFaculty)
	require.NoError(t, err)
	assert.Equal(t, NoRows, f.Kind)

	for _, res := range []Resource{ResourceReport, ResourceRating, ResourceFeedback} {
		_, err := Rule(res, nil, testFaculty)
		assert.ErrorIs(t, err, pkgerrors.ErrUnauthenticated, string(res))
	}
}

func TestRule_UnknownRoleFailsClosed(t *testing.T) {
	for _, role := range []string{"admin", "", "Student", "program-leader"} {
		c := &Claim{UserID: "x", Role: role, Program: "IT"}
		for _, res := range Resources {
			f, err := Rule(res, c, testFaculty)
			require.NoError(t, err)
			assert.Equal(t, NoRows, f.Kind, "%s/%q", res, role)
			assert.Error(t, Authorize(res, c))
		}
	}
}

func TestRule_NeverAllRowsForUnknownInputs(t *testing.T) {
	f, err := Rule(Resource("enrollment"), claimFor(model.RoleProgramLeader), testFaculty)
	require.NoError(t, err)
	assert.Equal(t, NoRows, f.Kind)

	f, err = Rule(Resource("enrollment"), nil, testFaculty)
	require.NoError(t, err)
	assert.Equal(t, NoRows, f.Kind)
}

// ── 写规则 ──

func TestAuthorize_Matrix(t *testing.T) {
	writers := map[Resource]string{
		ResourceCourse:   model.RoleProgramLeader,
		ResourceClass:    model.RoleProgramLeader,
		ResourceReport:   model.RoleLecturer,
		ResourceRating:   model.RoleStudent,
		ResourceFeedback: model.RolePrincipalLecturer,
	}

	for res, writer := range writers {
		for _, role := range Roles {
			err := Authorize(res, claimFor(role))
			if role == writer {
				assert.NoError(t, err, "%s/%s", res, role)
			} else {
				assert.ErrorIs(t, err, pkgerrors.ErrForbidden, "%s/%s", res, role)
			}
		}
		assert.ErrorIs(t, Authorize(res, nil), pkgerrors.ErrUnauthenticated)
	}

	assert.ErrorIs(t, Authorize(ResourceUser, claimFor(model.RoleProgramLeader)), pkgerrors.ErrForbidden)
}

func TestAuthorize_LecturerCannotCreateCourse(t *testing.T) {
	err := Authorize(ResourceCourse, claimFor(model.RoleLecturer))
	require.ErrorIs(t, err, pkgerrors.ErrForbidden)
	assert.Equal(t, "Only Program Leaders can add courses", pkgerrors.Message(err))
}

// ── Scope 解析 ──

func TestScope_ResolvesEnrollment(t *testing.T) {
	src := &fakeSource{enrolled: map[string][]string{"u-student": {"c2", "c1", "c2"}}}
	p := New(testFaculty, src)

	for _, res := range []Resource{ResourceClass, ResourceReport} {
		f, err := p.Scope(context.Background(), res, claimFor(model.RoleStudent))
		require.NoError(t, err)
		assert.Equal(t, ByIDs, f.Kind)
		assert.Equal(t, []string{"c1", "c2"}, f.IDs)
		assert.Equal(t, SourceNone, f.Source)
	}
}

func TestScope_EmptyEnrollmentIsNoRows(t *testing.T) {
	p := New(testFaculty, &fakeSource{})

	for _, res := range []Resource{ResourceClass, ResourceReport} {
		f, err := p.Scope(context.Background(), res, claimFor(model.RoleStudent))
		require.NoError(t, err)
		assert.Equal(t, NoRows, f.Kind, string(res))
	}

	// 学生评分按 student_id 过滤，不依赖选课
	f, err := p.Scope(context.Background(), ResourceRating, claimFor(model.RoleStudent))
	require.NoError(t, err)
	assert.Equal(t, Owner(FieldStudentID, "u-student"), f)
}

func TestScope_LecturerOwnedReports(t *testing.T) {
	src := &fakeSource{reports: map[string][]string{"u-lecturer": {"r1", "r2"}}}
	p := New(testFaculty, src)

	for _, res := range []Resource{ResourceRating, ResourceFeedback} {
		f, err := p.Scope(context.Background(), res, claimFor(model.RoleLecturer))
		require.NoError(t, err)
		assert.Equal(t, IDs(FieldReportID, []string{"r1", "r2"}), f)
	}

	empty := New(testFaculty, &fakeSource{})
	f, err := empty.Scope(context.Background(), ResourceRating, claimFor(model.RoleLecturer))
	require.NoError(t, err)
	assert.Equal(t, NoRows, f.Kind)
}

func TestScope_DeniedBeforeLookup(t *testing.T) {
	src := &fakeSource{}
	p := New(testFaculty, src)

	_, err := p.Scope(context.Background(), ResourceReport, nil)
	assert.ErrorIs(t, err, pkgerrors.ErrUnauthenticated)

	_, err = p.Scope(context.Background(), ResourceReport, &Claim{UserID: "x", Role: "guest"})
	assert.NoError(t, err)
	assert.Zero(t, src.calls, "拒绝或未知角色不应触发任何查询")
}

func TestScope_SourceErrorIsRepositoryError(t *testing.T) {
	p := New(testFaculty, &fakeSource{err: errors.New("db down")})
	_, err := p.Scope(context.Background(), ResourceClass, claimFor(model.RoleStudent))
	assert.ErrorIs(t, err, pkgerrors.ErrRepository)
}

func TestScope_Idempotent(t *testing.T) {
	src := &fakeSource{enrolled: map[string][]string{"u-student": {"b", "a", "c"}}}
	p := New(testFaculty, src)

	first, err := p.Scope(context.Background(), ResourceReport, claimFor(model.RoleStudent))
	require.NoError(t, err)
	second, err := p.Scope(context.Background(), ResourceReport, claimFor(model.RoleStudent))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// ── Filter 组合 ──

func TestFilter_With(t *testing.T) {
	a := Constant(FieldFaculty, testFaculty)
	assert.Equal(t, a, All().With(a))
	assert.Equal(t, a, a.With(All()))
	assert.True(t, a.With(None()).Empty())

	chained := a.With(Constant(FieldProgram, "IT")).With(Owner(FieldStudentID, "s"))
	require.NotNil(t, chained.And)
	require.NotNil(t, chained.And.And)
	assert.Equal(t, FieldStudentID, chained.And.And.Field)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Dedupe([]string{"b", "a", "", "b"}))
	assert.Nil(t, Dedupe(nil))
	assert.Equal(t, NoRows, IDs(FieldID, []string{""}).Kind)
}
