package features

import "fmt"

// DefaultCreditsPerSemester is the typical full-time course load.
const DefaultCreditsPerSemester = 24

// maxGPA is the top of the grading scale.
const maxGPA = 10.0

// gradePoints maps letter grades to grade points on the 10-point scale.
var gradePoints = map[string]float64{
	"S": 10, "A": 9, "B": 8, "C": 7, "D": 6, "E": 5, "F": 0,
}

// GradePoints returns the point value of a letter grade; unknown grades
// count as zero.
func GradePoints(grade string) float64 {
	return gradePoints[grade]
}

// CourseGrade pairs a letter grade with its credit weight.
type CourseGrade struct {
	Grade   string
	Credits int
}

// SemesterResult is one completed semester's GPA and credit load.
type SemesterResult struct {
	GPA     float64
	Credits int
}

// SemesterGPA computes the credit-weighted grade point average for one
// semester. Zero total credits yield 0.
func SemesterGPA(grades []CourseGrade) float64 {
	var points float64
	var credits int
	for _, g := range grades {
		points += GradePoints(g.Grade) * float64(g.Credits)
		credits += g.Credits
	}
	if credits == 0 {
		return 0
	}
	return points / float64(credits)
}

// CumulativeCGPA computes the credit-weighted average across semesters.
func CumulativeCGPA(semesters []SemesterResult) float64 {
	var points float64
	var credits int
	for _, s := range semesters {
		points += s.GPA * float64(s.Credits)
		credits += s.Credits
	}
	if credits == 0 {
		return 0
	}
	return points / float64(credits)
}

// WhatIfResult describes what it takes to reach a target CGPA.
type WhatIfResult struct {
	CurrentCGPA    float64 `json:"current_cgpa"`
	TargetCGPA     float64 `json:"target_cgpa"`
	RequiredGPA    float64 `json:"required_gpa"`
	CreditsNeeded  int     `json:"credits_needed"`
	Feasible       bool    `json:"feasible"`
	Recommendation string  `json:"recommendation"`
}

// WhatIf computes the per-semester GPA required over the remaining
// semesters to land on the target CGPA. creditsPerSem defaults to
// DefaultCreditsPerSemester when non-positive.
func WhatIf(completed []SemesterResult, target float64, remaining, creditsPerSem int) WhatIfResult {
	if creditsPerSem <= 0 {
		creditsPerSem = DefaultCreditsPerSemester
	}

	var earnedPoints float64
	var earnedCredits int
	for _, s := range completed {
		earnedPoints += s.GPA * float64(s.Credits)
		earnedCredits += s.Credits
	}

	futureCredits := remaining * creditsPerSem
	requiredTotal := target * float64(earnedCredits+futureCredits)

	var required float64
	if futureCredits > 0 {
		required = (requiredTotal - earnedPoints) / float64(futureCredits)
	}
	if required < 0 {
		required = 0
	}

	result := WhatIfResult{
		CurrentCGPA:   CumulativeCGPA(completed),
		TargetCGPA:    target,
		RequiredGPA:   required,
		CreditsNeeded: futureCredits,
		Feasible:      required <= maxGPA && futureCredits > 0,
	}
	result.Recommendation = whatIfRecommendation(result)
	return result
}

func whatIfRecommendation(r WhatIfResult) string {
	switch {
	case r.CreditsNeeded == 0:
		return "No remaining semesters to plan for."
	case !r.Feasible:
		return fmt.Sprintf("A %.2f CGPA target is not reachable: it needs a %.2f GPA per semester on a %.0f-point scale.", r.TargetCGPA, r.RequiredGPA, maxGPA)
	case r.RequiredGPA >= 9.5:
		return fmt.Sprintf("Reachable but demanding: average %.2f each remaining semester.", r.RequiredGPA)
	default:
		return fmt.Sprintf("Maintain a %.2f GPA each remaining semester to reach %.2f.", r.RequiredGPA, r.TargetCGPA)
	}
}
