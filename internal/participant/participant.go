// Package participant defines the intake record captured before the
// assessment starts, plus its field validation. The scoring and report
// packages consume the record read-only.
package participant

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ExperienceBuckets is the fixed set of years-of-experience labels offered at
// intake, in display order. DefaultExperience is pre-selected.
var ExperienceBuckets = []string{"0-2", "2-5", "5-10", "10-15", "15+"}

// DefaultExperience is the bucket shown before the participant changes it.
const DefaultExperience = "5-10"

// emailRe accepts anything shaped like local@domain.tld. Intake validation is
// a gate against typos, not an RFC 5322 parser.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Participant is the validated intake record. All fields are free text except
// Experience, which must be one of ExperienceBuckets. Role is optional.
type Participant struct {
	FullName   string
	Email      string
	Industry   string
	Role       string
	Experience string
	Location   string
}

// RoleOrDefault returns Role, or the fixed placeholder when it was left blank.
func (p Participant) RoleOrDefault() string {
	if strings.TrimSpace(p.Role) == "" {
		return "Not provided"
	}
	return p.Role
}

// Validate checks every required field and returns all failures joined, so
// the intake form can highlight each missing field at once.
func (p Participant) Validate() error {
	var errs []error

	required := []struct {
		name  string
		value string
	}{
		{"full name", p.FullName},
		{"email", p.Email},
		{"industry", p.Industry},
		{"location", p.Location},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("missing required field: %s", f.name))
		}
	}

	if p.Email != "" && !emailRe.MatchString(p.Email) {
		errs = append(errs, fmt.Errorf("invalid email address: %q", p.Email))
	}

	if p.Experience != "" && !validBucket(p.Experience) {
		errs = append(errs, fmt.Errorf("unknown experience bucket: %q", p.Experience))
	}

	return errors.Join(errs...)
}

func validBucket(b string) bool {
	for _, known := range ExperienceBuckets {
		if b == known {
			return true
		}
	}
	return false
}
