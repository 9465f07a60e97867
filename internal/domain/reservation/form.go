package reservation

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

type Field string

const (
	FieldUserName      Field = "userName"
	FieldUserEmail     Field = "userEmail"
	FieldUserPhone     Field = "userPhone"
	FieldLicensePlate  Field = "licensePlate"
	FieldStartTime     Field = "startTime"
	FieldDurationHours Field = "durationHours"
)

const minNameLength = 3

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+212|0)[5-7]\d{8}$`)
	platePattern = regexp.MustCompile(`(?i)^\d{1,6}-[A-Z]{1,2}-\d{1,2}$`)
	whitespace   = regexp.MustCompile(`\s`)
)

// Form holds the requester details typed into the reservation dialog.
type Form struct {
	UserName      string
	UserEmail     string
	UserPhone     string
	LicensePlate  string
	StartTime     time.Time
	DurationHours int
}

// ValidationErrors maps a form field to its message.
type ValidationErrors map[Field]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[Field(f)])
	}
	return "invalid reservation form: " + strings.Join(parts, ", ")
}

func (v ValidationErrors) Has(f Field) bool {
	_, ok := v[f]
	return ok
}

// Validate returns nil when the form can be submitted.
func (f Form) Validate() ValidationErrors {
	errs := ValidationErrors{}

	name := strings.TrimSpace(f.UserName)
	switch {
	case name == "":
		errs[FieldUserName] = "full name is required"
	case len([]rune(name)) < minNameLength:
		errs[FieldUserName] = "name is too short (minimum 3 characters)"
	}

	email := strings.TrimSpace(f.UserEmail)
	switch {
	case email == "":
		errs[FieldUserEmail] = "email is required"
	case !emailPattern.MatchString(email):
		errs[FieldUserEmail] = "invalid email format"
	}

	if phone := whitespace.ReplaceAllString(f.UserPhone, ""); phone != "" && !phonePattern.MatchString(phone) {
		errs[FieldUserPhone] = "invalid phone format (e.g. 0612345678)"
	}

	plate := whitespace.ReplaceAllString(f.LicensePlate, "")
	switch {
	case plate == "":
		errs[FieldLicensePlate] = "license plate is required"
	case !platePattern.MatchString(plate):
		errs[FieldLicensePlate] = "invalid format (e.g. 12345-A-67)"
	}

	if f.StartTime.IsZero() {
		errs[FieldStartTime] = "start time is required"
	}

	if f.DurationHours < MinDurationHours || f.DurationHours > MaxDurationHours {
		errs[FieldDurationHours] = "duration must be between 1 and 24 hours"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Normalized trims the free-text fields and strips spaces from phone and plate.
func (f Form) Normalized() Form {
	f.UserName = strings.TrimSpace(f.UserName)
	f.UserEmail = strings.TrimSpace(f.UserEmail)
	f.UserPhone = whitespace.ReplaceAllString(f.UserPhone, "")
	f.LicensePlate = strings.ToUpper(whitespace.ReplaceAllString(f.LicensePlate, ""))
	return f
}

// NewRequest builds the create payload for spot in lot. The end time is always
// derived from the start and the duration.
func NewRequest(f Form, lotID int64, lotName string, spotID int64, spotLabel string) Request {
	f = f.Normalized()
	return Request{
		LotID:         lotID,
		SpotID:        spotID,
		UserName:      f.UserName,
		UserEmail:     f.UserEmail,
		UserPhone:     f.UserPhone,
		LicensePlate:  f.LicensePlate,
		StartTime:     f.StartTime,
		EndTime:       CalculateEndTime(f.StartTime, f.DurationHours),
		DurationHours: f.DurationHours,
		SpotLabel:     spotLabel,
		LotName:       lotName,
	}
}
