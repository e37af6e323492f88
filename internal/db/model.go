package db

type Player struct {
	// Uuid contains player's UUID without dashes in lower case
	Uuid string
	// Username contains player's username with the original casing
	Username string
}
