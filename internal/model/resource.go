package model

import "strings"

// ResourceType is the kind of study material
type ResourceType string

const (
	ResourceNotes         ResourceType = "notes"
	ResourceBook          ResourceType = "book"
	ResourceQuestionPaper ResourceType = "question-paper"
	ResourceVideo         ResourceType = "video"
	ResourceOther         ResourceType = "other"
)

// ResourceTypes lists resource types in form order
var ResourceTypes = []ResourceType{ResourceNotes, ResourceBook, ResourceQuestionPaper, ResourceVideo, ResourceOther}

// Subject is the academic subject a resource belongs to
type Subject string

const (
	SubjectPhysics     Subject = "physics"
	SubjectChemistry   Subject = "chemistry"
	SubjectMathematics Subject = "mathematics"
	SubjectBiology     Subject = "biology"
	SubjectGeneral     Subject = "general"
)

// Subjects lists subjects in form order
var Subjects = []Subject{SubjectPhysics, SubjectChemistry, SubjectMathematics, SubjectBiology, SubjectGeneral}

// ExamType is the entrance exam a resource targets
type ExamType string

const (
	ExamJEE     ExamType = "jee"
	ExamNEET    ExamType = "neet"
	ExamBoth    ExamType = "both"
	ExamGeneral ExamType = "general"
)

// ExamTypes lists exam types in form order
var ExamTypes = []ExamType{ExamJEE, ExamNEET, ExamBoth, ExamGeneral}

// Resource is an entry in the study resource library
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	Subject     Subject      `json:"subject"`
	ExamType    ExamType     `json:"examType"`
	Description string       `json:"description"`
	UploadDate  string       `json:"uploadDate"`
	Size        string       `json:"size"`
	Favorite    bool         `json:"isFavorite"`
	Tags        []string     `json:"tags"`
	URL         string       `json:"url,omitempty"`
}

// Key returns the record id
func (r Resource) Key() string { return r.ID }

// StudyVideo is a saved "study with me" recording
type StudyVideo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"youtubeUrl"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Key returns the record id
func (v StudyVideo) Key() string { return v.ID }

// SplitTags turns a comma-separated form value into a trimmed tag list.
// Empty entries are dropped; there is no controlled vocabulary.
func SplitTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
