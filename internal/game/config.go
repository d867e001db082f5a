package game

import "fmt"

// Config describes a table
type Config struct {
	Seats         int
	SmallBlind    Chips
	BigBlind      Chips
	StartingStack Chips
	// HumanSeat is the seat controlled by a person, or NoSeat for none
	HumanSeat int
	// Names overrides seat names; missing entries use the defaults
	Names []string
}

// DefaultConfig returns an eight-seat table with 2/4 blinds and 200 big blind stacks
func DefaultConfig() Config {
	return Config{
		Seats:         MaxSeats,
		SmallBlind:    2,
		BigBlind:      4,
		StartingStack: 800,
		HumanSeat:     0,
	}
}

// Validate checks the configuration is playable
func (c Config) Validate() error {
	if c.Seats < MinSeats || c.Seats > MaxSeats {
		return fmt.Errorf("seats must be between %d and %d, got %d", MinSeats, MaxSeats, c.Seats)
	}
	if c.SmallBlind <= 0 || c.SmallBlind%2 != 0 {
		return fmt.Errorf("small blind must be a positive even chip count, got %d", c.SmallBlind)
	}
	if c.BigBlind <= c.SmallBlind {
		return fmt.Errorf("big blind (%d) must exceed small blind (%d)", c.BigBlind, c.SmallBlind)
	}
	if c.StartingStack < c.BigBlind {
		return fmt.Errorf("starting stack (%d) must cover the big blind (%d)", c.StartingStack, c.BigBlind)
	}
	if c.HumanSeat != NoSeat && (c.HumanSeat < 0 || c.HumanSeat >= c.Seats) {
		return fmt.Errorf("human seat %d out of range", c.HumanSeat)
	}
	if len(c.Names) > c.Seats {
		return fmt.Errorf("%d names for %d seats", len(c.Names), c.Seats)
	}
	return nil
}

// SeatName returns the display name for a seat
func (c Config) SeatName(seat int) string {
	if seat < len(c.Names) && c.Names[seat] != "" {
		return c.Names[seat]
	}
	if seat == c.HumanSeat {
		return "Player"
	}
	// AI seats are numbered from 1 in seat order, skipping the human
	n := seat + 1
	if c.HumanSeat != NoSeat && seat > c.HumanSeat {
		n = seat
	}
	return fmt.Sprintf("AI %d", n)
}
