package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradePoints(t *testing.T) {
	assert.Equal(t, 10.0, GradePoints("S"))
	assert.Equal(t, 9.0, GradePoints("A"))
	assert.Equal(t, 5.0, GradePoints("E"))
	assert.Equal(t, 0.0, GradePoints("F"))
	assert.Equal(t, 0.0, GradePoints("X"))
}

func TestSemesterGPA(t *testing.T) {
	grades := []CourseGrade{
		{Grade: "S", Credits: 4},
		{Grade: "A", Credits: 3},
		{Grade: "B", Credits: 3},
	}
	// (40 + 27 + 24) / 10
	assert.InDelta(t, 9.1, SemesterGPA(grades), 0.001)
}

func TestSemesterGPA_ZeroCredits(t *testing.T) {
	assert.Equal(t, 0.0, SemesterGPA(nil))
	assert.Equal(t, 0.0, SemesterGPA([]CourseGrade{{Grade: "S", Credits: 0}}))
}

func TestCumulativeCGPA(t *testing.T) {
	semesters := []SemesterResult{
		{GPA: 9.0, Credits: 24},
		{GPA: 8.0, Credits: 24},
	}
	assert.InDelta(t, 8.5, CumulativeCGPA(semesters), 0.001)
	assert.Equal(t, 0.0, CumulativeCGPA(nil))
}

func TestWhatIf(t *testing.T) {
	completed := []SemesterResult{{GPA: 8.0, Credits: 48}}

	result := WhatIf(completed, 8.5, 2, 24)
	assert.InDelta(t, 8.0, result.CurrentCGPA, 0.001)
	assert.Equal(t, 48, result.CreditsNeeded)
	// 8.5*(48+48) = 816; earned 384; (816-384)/48 = 9.0
	assert.InDelta(t, 9.0, result.RequiredGPA, 0.001)
	assert.True(t, result.Feasible)
	assert.Contains(t, result.Recommendation, "9.00")
}

func TestWhatIf_Infeasible(t *testing.T) {
	completed := []SemesterResult{{GPA: 6.0, Credits: 96}}

	result := WhatIf(completed, 9.5, 1, 24)
	assert.False(t, result.Feasible)
	assert.Greater(t, result.RequiredGPA, maxGPA)
	assert.Contains(t, result.Recommendation, "not reachable")
}

func TestWhatIf_TargetAlreadyExceeded(t *testing.T) {
	completed := []SemesterResult{{GPA: 9.8, Credits: 96}}

	result := WhatIf(completed, 7.0, 1, 24)
	// Required GPA clamps at zero instead of going negative.
	assert.Equal(t, 0.0, result.RequiredGPA)
	assert.True(t, result.Feasible)
}

func TestWhatIf_NoRemainingSemesters(t *testing.T) {
	result := WhatIf([]SemesterResult{{GPA: 8.0, Credits: 48}}, 8.5, 0, 24)
	assert.False(t, result.Feasible)
	assert.Equal(t, 0, result.CreditsNeeded)
	assert.Contains(t, result.Recommendation, "No remaining semesters")
}

func TestWhatIf_DefaultCredits(t *testing.T) {
	result := WhatIf(nil, 8.0, 2, 0)
	assert.Equal(t, 2*DefaultCreditsPerSemester, result.CreditsNeeded)
}
