package dto

// InstructorRanking is one row of the top-instructors report: the instructor's
// public profile plus enrollment stats aggregated across their classes.
type InstructorRanking struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PhotoURL      *string  `json:"photoUrl,omitempty"`
	ClassCount    int      `json:"classCount"`
	TotalStudents int      `json:"totalStudents"`
	ClassNames    []string `json:"classNames"`
}
