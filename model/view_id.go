package model

// ViewID identifies a view type
type ViewID string

// view identifiers
const (
	ListViewID ViewID = "list"
	HelpViewID ViewID = "help"
)

// help view params
const (
	HelpSectionParam = "section"
	HelpSectionKeys  = "keys"
)

// HelpParams returns navigation params opening the help view at section
func HelpParams(section string) map[string]interface{} {
	return map[string]interface{}{HelpSectionParam: section}
}

// GetHelpSection returns the section named in params, or "" for the start page
func GetHelpSection(params map[string]interface{}) string {
	section, _ := params[HelpSectionParam].(string)
	return section
}

// IsKnownViewID reports whether id names one of the built-in views
func IsKnownViewID(id ViewID) bool {
	switch id {
	case ListViewID, HelpViewID:
		return true
	}
	return false
}
