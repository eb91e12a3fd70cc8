// Package labels maps raw entity category codes produced by the pretrained
// pipelines to the names shown to users.
package labels

const (
	Location     = "Location"
	Person       = "Person"
	Organisation = "Organisation"
)

var displayNames = map[string]string{
	"GPE":    Location,
	"LOC":    Location,
	"PER":    Person,
	"PERSON": Person,
	"ORG":    Organisation,
}

// Canonical collapses GPE into LOC. Every other code is returned unchanged.
func Canonical(code string) string {
	if code == "GPE" {
		return "LOC"
	}
	return code
}

// Display returns the display name for code, or code itself if it has none.
func Display(code string) string {
	if name, ok := displayNames[Canonical(code)]; ok {
		return name
	}
	return code
}
