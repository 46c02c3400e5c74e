// Package form holds the editable state of one resume form session and the
// stores that keep sessions between requests.
package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"resumebuilder/internal/model"
)

var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownOp       = errors.New("unknown operation")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrIndexRequired   = errors.New("index is required")
	ErrRequiredField   = errors.New("required field is empty")
	ErrInvalidEntry    = errors.New("invalid entry")
)

// Section names a repeatable part of the form.
type Section string

const (
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionLanguages      Section = "languages"
	SectionCertifications Section = "certifications"
	SectionHobbies        Section = "hobbies"
)

// Sections lists every repeatable section in form order.
var Sections = []Section{
	SectionExperience, SectionEducation, SectionSkills, SectionProjects,
	SectionLanguages, SectionCertifications, SectionHobbies,
}

// Form is one session's draft resume.
type Form struct {
	ID        string             `json:"id"`
	Values    model.ResumeRecord `json:"values"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// New returns a form with one blank experience, education and skill entry,
// ready to be filled in.
func New(id string) *Form {
	return &Form{
		ID: id,
		Values: model.ResumeRecord{
			Experience:     []model.ExperienceEntry{{}},
			Education:      []model.EducationEntry{{}},
			Skills:         []model.SkillEntry{{}},
			Projects:       []model.ProjectEntry{},
			Languages:      []string{},
			Certifications: []string{},
			Hobbies:        []string{},
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// Set assigns one scalar field.
func (f *Form) Set(field, value string) error {
	v := &f.Values
	switch field {
	case "name":
		v.Name = value
	case "email":
		v.Email = value
	case "phone":
		v.Phone = value
	case "address":
		v.Address = value
	case "summary":
		v.Summary = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	f.touch()
	return nil
}

// Len reports the number of entries in a section.
func (f *Form) Len(s Section) (int, error) {
	v := &f.Values
	switch s {
	case SectionExperience:
		return len(v.Experience), nil
	case SectionEducation:
		return len(v.Education), nil
	case SectionSkills:
		return len(v.Skills), nil
	case SectionProjects:
		return len(v.Projects), nil
	case SectionLanguages:
		return len(v.Languages), nil
	case SectionCertifications:
		return len(v.Certifications), nil
	case SectionHobbies:
		return len(v.Hobbies), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownSection, s)
}

// Add appends a JSON-encoded entry to a section. A nil or empty entry
// appends a blank one.
func (f *Form) Add(s Section, entry json.RawMessage) error {
	v := &f.Values
	var err error
	switch s {
	case SectionExperience:
		v.Experience, err = appendEntry(v.Experience, entry)
	case SectionEducation:
		v.Education, err = appendEntry(v.Education, entry)
	case SectionSkills:
		v.Skills, err = appendEntry(v.Skills, entry)
	case SectionProjects:
		v.Projects, err = appendEntry(v.Projects, entry)
	case SectionLanguages:
		v.Languages, err = appendEntry(v.Languages, entry)
	case SectionCertifications:
		v.Certifications, err = appendEntry(v.Certifications, entry)
	case SectionHobbies:
		v.Hobbies, err = appendEntry(v.Hobbies, entry)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSection, s)
	}
	if err != nil {
		return err
	}
	f.touch()
	return nil
}

// Update replaces the entry at index i.
func (f *Form) Update(s Section, i int, entry json.RawMessage) error {
	v := &f.Values
	var err error
	switch s {
	case SectionExperience:
		err = replaceEntry(v.Experience, i, entry)
	case SectionEducation:
		err = replaceEntry(v.Education, i, entry)
	case SectionSkills:
		err = replaceEntry(v.Skills, i, entry)
	case SectionProjects:
		err = replaceEntry(v.Projects, i, entry)
	case SectionLanguages:
		err = replaceEntry(v.Languages, i, entry)
	case SectionCertifications:
		err = replaceEntry(v.Certifications, i, entry)
	case SectionHobbies:
		err = replaceEntry(v.Hobbies, i, entry)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSection, s)
	}
	if err != nil {
		return err
	}
	f.touch()
	return nil
}

// Remove deletes the entry at index i; the remaining entries keep their order.
func (f *Form) Remove(s Section, i int) error {
	v := &f.Values
	var err error
	switch s {
	case SectionExperience:
		v.Experience, err = removeAt(v.Experience, i)
	case SectionEducation:
		v.Education, err = removeAt(v.Education, i)
	case SectionSkills:
		v.Skills, err = removeAt(v.Skills, i)
	case SectionProjects:
		v.Projects, err = removeAt(v.Projects, i)
	case SectionLanguages:
		v.Languages, err = removeAt(v.Languages, i)
	case SectionCertifications:
		v.Certifications, err = removeAt(v.Certifications, i)
	case SectionHobbies:
		v.Hobbies, err = removeAt(v.Hobbies, i)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSection, s)
	}
	if err != nil {
		return err
	}
	f.touch()
	return nil
}

// Submit assembles the current values into a standalone ResumeRecord.
func (f *Form) Submit() (model.ResumeRecord, error) {
	if strings.TrimSpace(f.Values.Name) == "" {
		return model.ResumeRecord{}, fmt.Errorf("%w: name", ErrRequiredField)
	}
	if strings.TrimSpace(f.Values.Email) == "" {
		return model.ResumeRecord{}, fmt.Errorf("%w: email", ErrRequiredField)
	}
	return f.Values.Clone(), nil
}

func (f *Form) touch() { f.UpdatedAt = time.Now().UTC() }

func decodeEntry[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 || string(raw) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	return v, nil
}

func appendEntry[T any](list []T, raw json.RawMessage) ([]T, error) {
	v, err := decodeEntry[T](raw)
	if err != nil {
		return list, err
	}
	return append(list, v), nil
}

func replaceEntry[T any](list []T, i int, raw json.RawMessage) error {
	if i < 0 || i >= len(list) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	v, err := decodeEntry[T](raw)
	if err != nil {
		return err
	}
	list[i] = v
	return nil
}

func removeAt[T any](list []T, i int) ([]T, error) {
	if i < 0 || i >= len(list) {
		return list, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...), nil
}
