package output

import (
	"github.com/leapstack-labs/dynlist/internal/scenario"
	"github.com/leapstack-labs/dynlist/pkg/core"
)

// DemoOutput is the JSON shape of the demo command.
type DemoOutput struct {
	Backend string `json:"backend"`
	Chain   string `json:"chain"`
	Values  []int  `json:"values"`
	Len     int    `json:"len"`
	// Arena is set for the linked backend.
	Arena *ArenaInfo `json:"arena,omitempty"`
}

// ArenaInfo reports node-slot usage of the linked backend.
type ArenaInfo struct {
	Slots int `json:"slots"`
	Free  int `json:"free"`
	Limit int `json:"limit"`
}

// RunOutput is the JSON shape of the run command.
type RunOutput struct {
	Description string          `json:"description,omitempty"`
	Trace       *scenario.Trace `json:"trace"`
}

// CompareStep pairs the two backends' results for one operation.
type CompareStep struct {
	Index   int    `json:"index"`
	Op      string `json:"op"`
	Linked  []int  `json:"linked"`
	Static  []int  `json:"static"`
	Outcome string `json:"outcome"`
	Agree   bool   `json:"agree"`
}

// CompareOutput is the JSON shape of the compare command.
type CompareOutput struct {
	Scenario   string        `json:"scenario"`
	Capacity   int           `json:"capacity"`
	Agree      bool          `json:"agree"`
	Steps      []CompareStep `json:"steps"`
	Comparison []core.Trait  `json:"comparison"`
}
