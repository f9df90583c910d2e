package zenity

// Password configures a password prompt. With SetUsername the dialog asks
// for both and zenity prints them joined as username|password.
type Password struct {
	username bool
}

// NewPassword returns an empty Password configuration.
func NewPassword() Password {
	return Password{}
}

// SetUsername adds a username field to the prompt.
func (p Password) SetUsername() Password {
	p.username = true
	return p
}

func (p Password) Args() []string {
	args := []string{"--password"}
	if p.username {
		args = append(args, "--username")
	}
	return args
}

// Parse returns stdout unchanged.
func (p Password) Parse(stdout string) (string, error) {
	return stdout, nil
}

// Dialog wraps the configuration in a Dialog.
func (p Password) Dialog() Dialog[string] {
	return New[string](p)
}
