package zenity

// List configures a list dialog. Columns are declared up front and row cells
// follow as plain arguments in column-major order, one cell per token. The
// selected row values come back joined by the separator.
type List struct {
	text        *string
	columns     []string
	checklist   bool
	radiolist   bool
	editable    bool
	multiple    bool
	hideHeader  bool
	printColumn *string
	separator   *string
	rows        []string
}

// NewList returns an empty List configuration.
func NewList() List {
	return List{}
}

// WithText sets the body text.
func (l List) WithText(text string) List {
	l.text = &text
	return l
}

// WithColumn declares a column header. Repeatable; declaration order is
// column order.
func (l List) WithColumn(header string) List {
	columns := make([]string, len(l.columns), len(l.columns)+1)
	copy(columns, l.columns)
	l.columns = append(columns, header)
	return l
}

// SetChecklist renders the first column as checkboxes.
func (l List) SetChecklist() List {
	l.checklist = true
	return l
}

// SetRadiolist renders the first column as radio buttons.
func (l List) SetRadiolist() List {
	l.radiolist = true
	return l
}

// SetEditable makes the cells editable.
func (l List) SetEditable() List {
	l.editable = true
	return l
}

// SetMultiple allows selecting more than one row.
func (l List) SetMultiple() List {
	l.multiple = true
	return l
}

// SetHideHeader hides the column headers.
func (l List) SetHideHeader() List {
	l.hideHeader = true
	return l
}

// WithPrintColumn selects which column zenity prints, e.g. "2" or "ALL".
func (l List) WithPrintColumn(column string) List {
	l.printColumn = &column
	return l
}

// WithSeparator overrides the string zenity uses to join selected values.
func (l List) WithSeparator(sep string) List {
	l.separator = &sep
	return l
}

// AddRow appends one row of cells. Cell count should match the declared
// columns; zenity fills the table in declaration order.
func (l List) AddRow(cells ...string) List {
	rows := make([]string, len(l.rows), len(l.rows)+len(cells))
	copy(rows, l.rows)
	l.rows = append(rows, cells...)
	return l
}

func (l List) Args() []string {
	args := []string{"--list"}
	if l.text != nil {
		args = append(args, "--text="+*l.text)
	}
	for _, column := range l.columns {
		args = append(args, "--column="+column)
	}
	if l.checklist {
		args = append(args, "--checklist")
	}
	if l.radiolist {
		args = append(args, "--radiolist")
	}
	if l.editable {
		args = append(args, "--editable")
	}
	if l.multiple {
		args = append(args, "--multiple")
	}
	if l.hideHeader {
		args = append(args, "--hide-header")
	}
	if l.printColumn != nil {
		args = append(args, "--print-column="+*l.printColumn)
	}
	if l.separator != nil {
		args = append(args, "--separator="+*l.separator)
	}
	return append(args, l.rows...)
}

// Parse splits the selected values on the configured separator.
func (l List) Parse(stdout string) ([]string, error) {
	return splitOutput(stdout, l.separator), nil
}

// Dialog wraps the configuration in a Dialog.
func (l List) Dialog() Dialog[[]string] {
	return New[[]string](l)
}
