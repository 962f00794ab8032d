package domain

// ActivitySummary is the serializable view of one activity and its
// annotation state. It carries counts rather than the annotation data.
//
// Usage:
//
//	s := act.Summary()
//	b, _ := json.Marshal(s)
type ActivitySummary struct {
	// ID is the random identifier assigned when the activity was created
	ID string `json:"id" validate:"required,uuid"`

	// FilePath is the activity's data file as given at construction
	FilePath string `json:"file_path" validate:"required"`

	// Exercise is the exercise name, empty when unknown
	Exercise string `json:"exercise,omitempty"`

	// Subject is the subject identifier, nil when unknown
	Subject *int `json:"subject,omitempty"`

	// Acquired reports whether the table has been loaded
	Acquired bool `json:"acquired"`

	// Rows is the table row count; zero until acquired
	Rows int `json:"rows" validate:"min=0"`

	// Primitives is the number of ground pairs
	Primitives int `json:"primitives" validate:"min=0"`

	// Deviations is the number of primitive deviations
	Deviations int `json:"deviations" validate:"min=0"`

	// Labeled reports whether pointwise labels are set
	Labeled bool `json:"labeled"`
}

// Annotated reports whether any ground coordinates are set
func (s ActivitySummary) Annotated() bool {
	return s.Primitives > 0
}

// ExerciseSummary counts the activities of one exercise
type ExerciseSummary struct {
	Name       string `json:"name" validate:"required"`
	Activities int    `json:"activities" validate:"min=0"`
	Annotated  int    `json:"annotated" validate:"min=0,ltefield=Activities"`
}

// DatasetSummary is the serializable view of a dataset
type DatasetSummary struct {
	Root        string            `json:"root" validate:"required"`
	Synthesized bool              `json:"synthesized"`
	Mask        []string          `json:"mask,omitempty"`
	Exercises   []ExerciseSummary `json:"exercises" validate:"dive"`
}

// TotalActivities sums the activity counts of every exercise
func (s DatasetSummary) TotalActivities() int {
	total := 0
	for _, e := range s.Exercises {
		total += e.Activities
	}
	return total
}
