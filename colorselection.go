package zenity

// ColorSelection configures a color picker. The chosen color is printed in
// rgb(...) notation.
type ColorSelection struct {
	color       *string
	showPalette bool
}

// NewColorSelection returns an empty ColorSelection configuration.
func NewColorSelection() ColorSelection {
	return ColorSelection{}
}

// WithColor preselects a color, e.g. "#ff0000" or "rgb(255,0,0)".
func (c ColorSelection) WithColor(color string) ColorSelection {
	c.color = &color
	return c
}

// SetShowPalette shows the palette instead of the color wheel.
func (c ColorSelection) SetShowPalette() ColorSelection {
	c.showPalette = true
	return c
}

func (c ColorSelection) Args() []string {
	args := []string{"--color-selection"}
	if c.color != nil {
		args = append(args, "--color="+*c.color)
	}
	if c.showPalette {
		args = append(args, "--show-palette")
	}
	return args
}

// Parse returns stdout unchanged.
func (c ColorSelection) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (c ColorSelection) Dialog() Dialog[string] {
	return New[string](c)
}
