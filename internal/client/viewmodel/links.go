package viewmodel

// Links are the external documents linked from the registration form.
type Links struct {
	Terms   string
	Privacy string
}
