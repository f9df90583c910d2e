package zenity

// Icon identifies the icon shown in the dialog window. The zero value lets
// zenity pick its default for the dialog kind.
type Icon struct {
	tag string
}

// The stock icons zenity ships with.
var (
	IconError    = Icon{tag: "error"}
	IconInfo     = Icon{tag: "info"}
	IconQuestion = Icon{tag: "question"}
	IconWarning  = Icon{tag: "warning"}
)

// IconPath returns an Icon referring to a custom image on disk.
func IconPath(path string) Icon {
	return Icon{tag: path}
}

func (i Icon) String() string {
	return i.tag
}
