package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Field names ใช้เป็น key ของ ValidationErrors และชื่อ input ในฟอร์ม
const (
	FieldFullName  = "fullName"
	FieldEmail     = "email"
	FieldAge       = "age"
	FieldCountry   = "country"
	FieldGender    = "gender"
	FieldInterests = "interests"
)

// InterestCategory is the prefix of checkbox inputs, e.g. "interest-music".
const InterestCategory = "interest"

const (
	InterestMusic  = "music"
	InterestSports = "sports"
	InterestCoding = "coding"
)

// InterestKeys is the fixed enumeration order used everywhere interests are listed.
var InterestKeys = []string{InterestMusic, InterestSports, InterestCoding}

// Option is one entry of a single-select or radio group.
type Option struct {
	Value string `json:"value" example:"USA"`
	Label string `json:"label" example:"United States"`
}

// Countries ตัวเลือกของ dropdown ประเทศ (ค่าว่าง = ยังไม่เลือก)
var Countries = []Option{
	{Value: "USA", Label: "United States"},
	{Value: "UK", Label: "United Kingdom"},
	{Value: "Canada", Label: "Canada"},
	{Value: "Australia", Label: "Australia"},
}

// Genders ไม่มีค่า default
var Genders = []Option{
	{Value: "Male", Label: "Male"},
	{Value: "Female", Label: "Female"},
}

// Interests holds one flag per fixed interest key, so no key can ever be missing.
type Interests struct {
	Music  bool
	Sports bool
	Coding bool
}

// Get reports the flag for key; ok is false for keys outside InterestKeys.
func (i Interests) Get(key string) (checked bool, ok bool) {
	switch key {
	case InterestMusic:
		return i.Music, true
	case InterestSports:
		return i.Sports, true
	case InterestCoding:
		return i.Coding, true
	}
	return false, false
}

// With returns a copy of i with key set to checked. Sibling flags are untouched.
func (i Interests) With(key string, checked bool) (Interests, error) {
	switch key {
	case InterestMusic:
		i.Music = checked
	case InterestSports:
		i.Sports = checked
	case InterestCoding:
		i.Coding = checked
	default:
		return i, fmt.Errorf("unknown interest %q", key)
	}
	return i, nil
}

func (i Interests) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]bool{
		InterestMusic:  i.Music,
		InterestSports: i.Sports,
		InterestCoding: i.Coding,
	})
}

// UnmarshalJSON ignores unknown keys; missing keys stay false.
func (i *Interests) UnmarshalJSON(data []byte) error {
	var raw map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = Interests{
		Music:  raw[InterestMusic],
		Sports: raw[InterestSports],
		Coding: raw[InterestCoding],
	}
	return nil
}

// SubmissionDraft is the in-progress form data owned by the entry form.
type SubmissionDraft struct {
	FullName  string    `json:"fullName" validate:"required,min=2" example:"John Doe"`
	Email     string    `json:"email" validate:"required,looseemail" example:"john.doe@example.com"`
	Age       string    `json:"age" validate:"required,positiveint" example:"25"`
	Country   string    `json:"country" validate:"required,oneof=USA UK Canada Australia" example:"USA"`
	Gender    string    `json:"gender" validate:"required,oneof=Male Female" example:"Male"`
	Interests Interests `json:"interests" swaggertype:"object,boolean"`
}

// SubmissionRecord is the snapshot of a draft taken at a successful submit.
// It is passed by value; holders never share storage with the draft.
type SubmissionRecord struct {
	ID          string    `json:"id" example:"7b0c5f1e-2a57-4c1b-9a63-0d7c4a8f1f11"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Age         string    `json:"age"`
	Country     string    `json:"country"`
	Gender      string    `json:"gender"`
	Interests   Interests `json:"interests" swaggertype:"object,boolean"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ValidationErrors maps a field name to its message. A field is present only while it fails.
type ValidationErrors map[string]string

// SubmitResponse is returned by the JSON API after an accepted submission.
type SubmitResponse struct {
	Token  string           `json:"token"`
	Record SubmissionRecord `json:"record"`
}

// ValidateResponse ผลการตรวจสอบ draft โดยไม่ submit
type ValidateResponse struct {
	Valid  bool             `json:"valid"`
	Errors ValidationErrors `json:"errors"`
}

// ValidationErrorResponse ส่งกลับเมื่อ submit ไม่ผ่าน (422)
type ValidationErrorResponse struct {
	Status  int              `json:"status" example:"422"`
	Message string           `json:"message" example:"Validation failed"`
	Errors  ValidationErrors `json:"errors"`
}
