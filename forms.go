package zenity

// Forms configures a multi-field form. Field values come back joined by the
// separator in declaration order and Parse splits them again.
type Forms struct {
	text       *string
	fields     []formField
	separator  *string
	dateFormat *string
}

type formField struct {
	flag  string
	label string
}

// NewForms returns an empty Forms configuration.
func NewForms() Forms {
	return Forms{}
}

// WithText sets the body text.
func (f Forms) WithText(text string) Forms {
	f.text = &text
	return f
}

// AddEntry appends a text field with the given label.
func (f Forms) AddEntry(label string) Forms {
	return f.addField("--add-entry", label)
}

// AddPassword appends a masked field with the given label.
func (f Forms) AddPassword(label string) Forms {
	return f.addField("--add-password", label)
}

// AddCalendar appends a date field with the given label.
func (f Forms) AddCalendar(label string) Forms {
	return f.addField("--add-calendar", label)
}

func (f Forms) addField(flag, label string) Forms {
	fields := make([]formField, len(f.fields), len(f.fields)+1)
	copy(fields, f.fields)
	f.fields = append(fields, formField{flag: flag, label: label})
	return f
}

// WithSeparator overrides the string zenity uses to join field values.
func (f Forms) WithSeparator(sep string) Forms {
	f.separator = &sep
	return f
}

// WithDateFormat sets the strftime-style pattern for calendar fields.
func (f Forms) WithDateFormat(format string) Forms {
	f.dateFormat = &format
	return f
}

func (f Forms) Args() []string {
	args := []string{"--forms"}
	if f.text != nil {
		args = append(args, "--text="+*f.text)
	}
	for _, field := range f.fields {
		args = append(args, field.flag+"="+field.label)
	}
	if f.separator != nil {
		args = append(args, "--separator="+*f.separator)
	}
	if f.dateFormat != nil {
		args = append(args, "--forms-date-format="+*f.dateFormat)
	}
	return args
}

// Parse splits the field values on the configured separator.
func (f Forms) Parse(stdout string) ([]string, error) {
	return splitOutput(stdout, f.separator), nil
}

// Dialog wraps the configuration in a Dialog.
func (f Forms) Dialog() Dialog[[]string] {
	return New[[]string](f)
}
