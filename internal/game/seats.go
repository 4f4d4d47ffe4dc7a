// Package game implements the deal lifecycle: four seats in a fixed
// rotation, two partnerships, the auction state machine and the trick
// rules engine.
package game

import (
	"fmt"
	"strings"
)

// NumSeats is the number of players at the table.
const NumSeats = 4

// HandSize is the number of cards dealt to each seat.
const HandSize = 13

// Seat identifies one of the four positions. Turn order is seat-index
// arithmetic modulo four; there are no player-to-player links.
type Seat int

const (
	North Seat = iota
	East
	South
	West
)

// AllSeats lists the seats in rotation order.
var AllSeats = [NumSeats]Seat{North, East, South, West}

// Next returns the seat to act after s
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Prev returns the seat that acts before s
func (s Seat) Prev() Seat {
	return (s + NumSeats - 1) % NumSeats
}

// Partner returns the seat two positions away
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// Valid returns true for the four real seats
func (s Seat) Valid() bool {
	return s >= North && s < NumSeats
}

// ParseSeat parses a compass seat name, case-insensitively
func ParseSeat(s string) (Seat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	default:
		return 0, fmt.Errorf("invalid seat %q: want north, east, south or west", s)
	}
}

// String returns the compass name of the seat
func (s Seat) String() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Seat(%d)", int(s))
	}
}
