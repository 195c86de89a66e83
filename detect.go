package dsv2md

import "strings"

// Detect guesses the delimiter of sample. It returns a tab when the sample
// holds strictly more tabs than commas and a comma otherwise. Quoting is not
// considered.
func Detect(sample string) string {
	if strings.Count(sample, "\t") > strings.Count(sample, ",") {
		return "\t"
	}
	return ","
}
