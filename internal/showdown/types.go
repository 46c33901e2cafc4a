// Package showdown evaluates TOML files of named hand groups and reports the
// winners of each group.
//
//	[[showdown]]
//	name  = "river"
//	hands = ["4S 5H 6D 7C 8H", "2S 3H 4D 5C 6H"]
package showdown

import "time"

// File is a decoded showdown file.
type File struct {
	Showdowns []Showdown `toml:"showdown"`
}

// Showdown is one group of hands competing against each other.
type Showdown struct {
	Name  string   `toml:"name"`
	Hands []string `toml:"hands"`
}

// Report is the outcome of running a File.
type Report struct {
	RunID       string    `toml:"run_id"`
	EvaluatedAt time.Time `toml:"evaluated_at"`
	Results     []Result  `toml:"result"`
}

// Result is the outcome of a single showdown. Error is set instead of Winners
// when one of its hands could not be parsed.
type Result struct {
	Name    string       `toml:"name"`
	Hands   []HandResult `toml:"hand,omitempty"`
	Winners []string     `toml:"winners,omitempty"`
	Error   string       `toml:"error,omitempty"`
}

// HandResult records how a hand was classified.
type HandResult struct {
	Text     string `toml:"text"`
	Category string `toml:"category"`
	Key      []int  `toml:"key"`
}

// Failed reports the number of showdowns that ended in an error.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Error != "" {
			n++
		}
	}
	return n
}
