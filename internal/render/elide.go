package render

// Elide shortens a long identifier for display: the first len/10 characters,
// a separator, then the final len - len/10 characters. Strings shorter than
// 25 characters pass through unchanged.
func Elide(value string) string {
	if len(value) < 25 {
		return value
	}
	section := len(value) / 10
	return value[:section] + ":" + value[section:]
}
