// Package role describes the two dashboard audiences. Both consume the same
// screening; a Role only changes labels and which evaluator tools are shown.
package role

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amishk599/skillscan/internal/model"
)

// Role is a capability descriptor for one audience.
type Role struct {
	Name             string // stable identifier: "applicant" or "evaluator"
	Label            string
	DashboardTitle   string
	ScoreLabel       string
	FoundLabel       string
	MissingLabel     string
	JobsLabel        string
	ReportTitle      string
	ReportFound      string // report line labels
	ReportMissing    string
	ReportFile       string
	CanRate          bool
	SuggestQuestions bool
}

var (
	Applicant = Role{
		Name:           "applicant",
		Label:          "Job Seeker",
		DashboardTitle: "Job Seeker Dashboard",
		ScoreLabel:     "Resume Score",
		FoundLabel:     "Your Skills",
		MissingLabel:   "Skills to Improve",
		JobsLabel:      "Recommended Jobs",
		ReportTitle:    "Resume Analysis Report",
		ReportFound:    "Matched Skills",
		ReportMissing:  "Missing Skills",
		ReportFile:     "resume_analysis.pdf",
	}

	Evaluator = Role{
		Name:             "evaluator",
		Label:            "HR / Interviewer",
		DashboardTitle:   "HR / Interviewer Dashboard",
		ScoreLabel:       "Candidate Suitability",
		FoundLabel:       "Candidate Strengths",
		MissingLabel:     "Skill Gaps",
		JobsLabel:        "Recommended Jobs for Candidate",
		ReportTitle:      "Candidate Resume Report",
		ReportFound:      "Candidate Strengths",
		ReportMissing:    "Skill Gaps",
		ReportFile:       "candidate_analysis.pdf",
		CanRate:          true,
		SuggestQuestions: true,
	}
)

// All lists the roles in picker order.
func All() []Role {
	return []Role{Applicant, Evaluator}
}

// Parse resolves a role name or one of its aliases.
func Parse(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "applicant", "seeker", "job-seeker":
		return Applicant, nil
	case "evaluator", "hr", "interviewer":
		return Evaluator, nil
	default:
		return Role{}, fmt.Errorf("unknown role %q (want applicant or evaluator)", name)
	}
}

// Other returns the opposite role.
func (r Role) Other() Role {
	if r.Name == Evaluator.Name {
		return Applicant
	}
	return Evaluator
}

// Rating bounds for the evaluator's manual score.
const (
	MinRating = 1
	MaxRating = 10
)

// ErrRatingOutOfRange is returned by Decide for ratings outside 1-10.
var ErrRatingOutOfRange = errors.New("rating out of range")

// Decide maps an evaluator rating to a decision: 7 and above accept, 5-6
// hold, below 5 reject.
func Decide(rating int) (model.Decision, error) {
	if rating < MinRating || rating > MaxRating {
		return "", fmt.Errorf("%w: %d not in %d-%d", ErrRatingOutOfRange, rating, MinRating, MaxRating)
	}
	switch {
	case rating >= 7:
		return model.DecisionAccept, nil
	case rating >= 5:
		return model.DecisionHold, nil
	default:
		return model.DecisionReject, nil
	}
}
