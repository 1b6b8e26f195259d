package figure

import "github.com/hepstack/datamc/pkg/errors"

// LabelKind selects a fixed annotation position on the canvas.
type LabelKind string

const (
	// LabelExperiment places text at the top-left corner, left-aligned.
	LabelExperiment LabelKind = "experiment"

	// LabelEnergy places text at the top-right corner, right-aligned.
	LabelEnergy LabelKind = "energy"
)

// Annotation size as a fraction of the canvas height.
const labelSizeFraction = 0.04

// Label is one fixed-position text overlay on the canvas.
type Label struct {
	Kind LabelKind `json:"kind"`
	Text string    `json:"text"`

	// X and Y are normalized canvas coordinates, origin bottom-left.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// AlignRight anchors the text by its right edge instead of its left.
	AlignRight bool `json:"align_right,omitempty"`
}

func newLabel(kind LabelKind, text string) Label {
	l := Label{Kind: kind, Text: text}
	switch kind {
	case LabelEnergy:
		l.X, l.Y = 0.85, 0.91
		l.AlignRight = true
	default:
		l.X, l.Y = 0.16, 0.91
	}
	return l
}

func validLabelKind(kind LabelKind) error {
	switch kind {
	case LabelExperiment, LabelEnergy:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidConfiguration, "unknown label kind %q", kind)
}
