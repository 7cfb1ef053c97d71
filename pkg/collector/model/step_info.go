package model

type stepType string

const (
	FieldStepType   stepType = "field"
	ConfirmStepType stepType = "confirm"
	BoundStepType   stepType = "bound"
)

// StepInfo describes one step of the collection flow.
type StepInfo struct {
	Type stepType
	// Name is the key the step fills in, for example input_dir.
	Name string
	// Section is printed as a heading before the step, when set.
	Section string
	Label   string
}

var (
	StartStep = &StepInfo{Type: BoundStepType, Name: "start"}
	EndStep   = &StepInfo{Type: BoundStepType, Name: "end"}
)
