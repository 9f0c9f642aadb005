package model

// Result is the output of one transcription attempt.
//
// A Result is a value: the pipeline hands out copies and never mutates a
// record after emitting it.
type Result struct {
	Text       string  `json:"text" yaml:"text" db:"text"`
	Confidence float64 `json:"confidence" yaml:"confidence" db:"confidence" validate:"min=0,max=1"`
	Duration   int     `json:"duration" yaml:"duration" db:"duration" validate:"min=0"`
	SourceName string  `json:"source_name" yaml:"source_name" db:"source_name" validate:"required"`
}
