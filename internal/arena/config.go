// Package arena is a headless robot arena. Sides seed robots that gather
// sunlight and manna, build offspring and fight; every economic and combat
// event is reported to the side's score record as it happens, and the
// population is sampled at a fixed interval.
package arena

import "github.com/talgya/robot-league/internal/scores"

// Config holds arena parameters.
type Config struct {
	Size           int           // tiles per edge
	FramesPerRound scores.Frames // hard frame limit for a round
	SampleInterval scores.Frames // frames between sampling passes
	SeedEnergy     scores.Energy // energy granted to each side at round start
	SeedRobots     int           // robots each side starts with
	SolarRate      scores.Energy // autotrophy per frame on a fully lit tile
	MannaRate      scores.Energy // theotrophy per frame on a manna tile
	MannaDensity   float64       // share of tiles carrying manna (0.0–1.0)
	MaxRobotEnergy scores.Energy // energy above this is wasted
	TerritoryCell  int           // tiles per edge of one territory cell
}

// DefaultConfig returns the standard tournament arena.
func DefaultConfig() Config {
	return Config{
		Size:           48,
		FramesPerRound: 6000,
		SampleInterval: 100,
		SeedEnergy:     2000,
		SeedRobots:     4,
		SolarRate:      0.4,
		MannaRate:      1.0,
		MannaDensity:   0.02,
		MaxRobotEnergy: 400,
		TerritoryCell:  4,
	}
}

// SmallTestConfig returns a tiny, short arena for rapid iteration.
func SmallTestConfig() Config {
	return Config{
		Size:           16,
		FramesPerRound: 600,
		SampleInterval: 50,
		SeedEnergy:     1600,
		SeedRobots:     4,
		SolarRate:      0.5,
		MannaRate:      1.0,
		MannaDensity:   0.05,
		MaxRobotEnergy: 300,
		TerritoryCell:  4,
	}
}
