package entities

// Subject is identified by its name: two subjects are equal iff their names
// are equal, which plain struct equality already provides.
type Subject struct {
	Name string
}
