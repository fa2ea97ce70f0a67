package utils

func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// NonEmpty drops empty strings from a slice, so repeated query params like
// ?city=&city=Delhi collapse to the values actually chosen.
func NonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
