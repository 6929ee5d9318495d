package report

// RunError accumulates per-folder failures without aborting the run.
type RunError struct {
	Errors []error
}

func (e *RunError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

func (e *RunError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *RunError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}
