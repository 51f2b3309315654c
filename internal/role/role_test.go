package role

import (
	"errors"
	"testing"

	"github.com/amishk599/skillscan/internal/model"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		rating int
		want   model.Decision
	}{
		{10, model.DecisionAccept},
		{8, model.DecisionAccept},
		{7, model.DecisionAccept},
		{6, model.DecisionHold},
		{5, model.DecisionHold},
		{4, model.DecisionReject},
		{3, model.DecisionReject},
		{1, model.DecisionReject},
	}
	for _, tt := range tests {
		got, err := Decide(tt.rating)
		if err != nil {
			t.Errorf("Decide(%d): %v", tt.rating, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Decide(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestDecide_OutOfRange(t *testing.T) {
	for _, rating := range []int{0, -3, 11} {
		if _, err := Decide(rating); !errors.Is(err, ErrRatingOutOfRange) {
			t.Errorf("Decide(%d) error = %v, want ErrRatingOutOfRange", rating, err)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"applicant", "applicant"},
		{"Seeker", "applicant"},
		{"evaluator", "evaluator"},
		{" HR ", "evaluator"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got.Name != tt.want {
			t.Errorf("Parse(%q).Name = %q, want %q", tt.in, got.Name, tt.want)
		}
	}
	if _, err := Parse("recruiter-bot"); err == nil {
		t.Error("Parse: expected error for unknown role")
	}
}

func TestRoleCapabilities(t *testing.T) {
	if Applicant.CanRate || Applicant.SuggestQuestions {
		t.Error("applicant must not rate or get interview questions")
	}
	if !Evaluator.CanRate || !Evaluator.SuggestQuestions {
		t.Error("evaluator must rate and get interview questions")
	}
	if Applicant.ReportFile == Evaluator.ReportFile {
		t.Error("report file names must differ between roles")
	}
	if Applicant.Other().Name != Evaluator.Name || Evaluator.Other().Name != Applicant.Name {
		t.Error("Other() must switch between the two roles")
	}
}
