package service

import "strings"

// languageMarkers holds common greeting/function words per supported
// language, checked in order so detection stays deterministic. Detection is
// best-effort; "eng" is the fallback.
var languageMarkers = []struct {
	code    string
	markers []string
}{
	{"zul", []string{"sawubona", "yebo", "ngiyabonga", "unjani", "sicela"}},
	{"xho", []string{"molo", "molweni", "enkosi", "kunjani"}},
	{"afr", []string{"hallo", "dankie", "asseblief", "goeie"}},
	{"sot", []string{"dumela", "dumelang", "kea leboha"}},
}

const defaultLanguage = "eng"

func detectLanguage(content string) string {
	normalized := " " + strings.ToLower(content) + " "
	for _, entry := range languageMarkers {
		for _, marker := range entry.markers {
			if strings.Contains(normalized, " "+marker+" ") {
				return entry.code
			}
		}
	}
	return defaultLanguage
}
