package entities

// Room is identified by Identifier, unique across the roster.
type Room struct {
	Identifier int
	Capacity   int
}
