package forward

import "strings"

// InferTemplateName returns explicit when it is set. Otherwise it derives a
// name from endpoint: dots become slashes and "."+extension is appended, so
// "info.show" becomes "info/show.html".
func InferTemplateName(endpoint, explicit, extension string) string {
	if explicit != "" {
		return explicit
	}
	return strings.ReplaceAll(endpoint, ".", "/") + "." + extension
}
