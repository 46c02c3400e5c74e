package model

// PresentSentinel is the end date used for an ongoing position.
const PresentSentinel = "Present"

// ResumeRecord is the complete structured data captured from the resume form.
// It only lives for the duration of one preview or download and is never stored.
type ResumeRecord struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone,omitempty"`
	Address        string            `json:"address,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []SkillEntry      `json:"skills"`
	Projects       []ProjectEntry    `json:"projects,omitempty"`
	Languages      []string          `json:"languages,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Hobbies        []string          `json:"hobbies,omitempty"`
}

// ExperienceEntry is one job. Dates are free text; EndDate may be PresentSentinel.
type ExperienceEntry struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// SkillEntry carries its level as entered; it is expected to hold an integer 1-5.
type SkillEntry struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type ProjectEntry struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies"`
}

// Clone returns a deep copy so callers can hand the record off without sharing slices.
// Nil lists stay nil and empty lists stay empty.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	out.Experience = cloneSlice(r.Experience)
	out.Education = cloneSlice(r.Education)
	out.Skills = cloneSlice(r.Skills)
	out.Projects = cloneSlice(r.Projects)
	for i := range out.Projects {
		out.Projects[i].Technologies = cloneSlice(out.Projects[i].Technologies)
	}
	out.Languages = cloneSlice(r.Languages)
	out.Certifications = cloneSlice(r.Certifications)
	out.Hobbies = cloneSlice(r.Hobbies)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
