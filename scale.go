package zenity

import (
	"fmt"
	"strconv"
)

// Scale configures a slider dialog. The chosen value is printed by zenity
// and parsed into an int.
type Scale struct {
	text      *string
	value     *int
	minValue  *int
	maxValue  *int
	step      *int
	hideValue bool
}

// NewScale returns an empty Scale configuration.
func NewScale() Scale {
	return Scale{}
}

// WithText sets the body text.
func (s Scale) WithText(text string) Scale {
	s.text = &text
	return s
}

// WithValue sets the initial slider position.
func (s Scale) WithValue(value int) Scale {
	s.value = &value
	return s
}

// WithMinValue sets the lower bound (zenity default 0).
func (s Scale) WithMinValue(value int) Scale {
	s.minValue = &value
	return s
}

// WithMaxValue sets the upper bound (zenity default 100).
func (s Scale) WithMaxValue(value int) Scale {
	s.maxValue = &value
	return s
}

// WithStep sets the slider increment.
func (s Scale) WithStep(step int) Scale {
	s.step = &step
	return s
}

// SetHideValue hides the numeric value next to the slider.
func (s Scale) SetHideValue() Scale {
	s.hideValue = true
	return s
}

func (s Scale) Args() []string {
	args := []string{"--scale"}
	if s.text != nil {
		args = append(args, "--text="+*s.text)
	}
	if s.value != nil {
		args = append(args, fmt.Sprintf("--value=%d", *s.value))
	}
	if s.minValue != nil {
		args = append(args, fmt.Sprintf("--min-value=%d", *s.minValue))
	}
	if s.maxValue != nil {
		args = append(args, fmt.Sprintf("--max-value=%d", *s.maxValue))
	}
	if s.step != nil {
		args = append(args, fmt.Sprintf("--step=%d", *s.step))
	}
	if s.hideValue {
		args = append(args, "--hide-value")
	}
	return args
}

// Parse converts the printed value into an int.
func (s Scale) Parse(stdout string) (int, error) {
	return strconv.Atoi(stdout)
}

// Dialog wraps the configuration in a Dialog.
func (s Scale) Dialog() Dialog[int] {
	return New[int](s)
}
