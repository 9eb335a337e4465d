package icons

import _ "embed"

//go:embed assets/icon.css
var stylesheet string

// Stylesheet returns the base CSS for the hicon container class.
func Stylesheet() string {
	return stylesheet
}
