package utils

import (
	"regexp"
	"strings"

	"github.com/pratishelar/realtor-sub000/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePropertyForm returns the messages that block submission. An empty
// result means the form can be persisted.
func ValidatePropertyForm(form models.PropertyForm) []string {
	var problems []string
	if strings.TrimSpace(form.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(form.Location) == "" {
		problems = append(problems, "location is required")
	}
	if strings.TrimSpace(form.City) == "" {
		problems = append(problems, "city is required")
	}
	if form.Email != "" && !IsValidEmail(form.Email) {
		problems = append(problems, "contact email is malformed")
	}
	return problems
}

// ValidateEnquiry guards the public contact form.
func ValidateEnquiry(req models.EnquiryRequest) []string {
	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !IsValidEmail(req.Email) {
		problems = append(problems, "email is malformed")
	}
	if strings.TrimSpace(req.Message) == "" {
		problems = append(problems, "message is required")
	}
	return problems
}
