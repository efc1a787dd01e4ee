// Package evidence defines the closed set of evidence kinds gear can
// report and the fixed ghost-type -> evidence-subset table evidence
// gear and the truck journal (both out of core scope) consult.
package evidence

import "fmt"

// Kind is one of the eight categorical signals evidence gear can
// report.
type Kind uint8

const (
	FreezingTemp Kind = iota
	FloatingOrbs
	UVEctoplasm
	EMFLevel5
	EVPRecording
	SpiritBox
	RLPresence
	CPM500

	numKinds = 8
)

// All returns every evidence kind in declaration order.
func All() []Kind {
	return []Kind{FreezingTemp, FloatingOrbs, UVEctoplasm, EMFLevel5, EVPRecording, SpiritBox, RLPresence, CPM500}
}

var names = [numKinds]string{
	"Freezing Temps",
	"Floating Orbs",
	"UV Ectoplasm",
	"EMF Level 5",
	"EVP Recording",
	"Spirit Box",
	"RL Presence",
	"500+ cpm",
}

var helpText = [numKinds]string{
	"The ghost and breach make the ambient colder.\nSome ghosts will make the temperature drop below 0.0C.",
	"Check if the breach lights up under night vision.\nLights need to be off.",
	"Check if the ghost turns green under UV.\nLights need to be off.",
	"Some ghosts will register EMF5 on the meter.\nFollow the ghost closely and keep an eye on the reading.",
	"Some ghosts leave recordings. Keep an eye on the recorder.\nIf an EVP recording is made, [EVP RECORDED] will appear.",
	"Some ghosts talk through the spirit box.\nIf you hear the ghost talking through it, mark this evidence.",
	"Some ghosts glow orange under red light.\nLights need to be off.",
	"Some ghosts are radioactive and will register above 500cpm.\nIt takes time for the Geiger counter to settle into a value.",
}

// Name is the human-facing label for the evidence kind.
func (k Kind) Name() string {
	if int(k) < 0 || int(k) >= numKinds {
		return "Unknown"
	}
	return names[k]
}

// HelpText is the manual-page text describing how to observe this
// evidence; the manual UI itself is out of core scope but the data is
// owned here so any collaborator can read it without recomputing it.
func (k Kind) HelpText() string {
	if int(k) < 0 || int(k) >= numKinds {
		return ""
	}
	return helpText[k]
}

func (k Kind) String() string { return k.Name() }

// Set is a bitmask of evidence kinds.
type Set uint8

// NewSet builds a Set from individual kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

// Has reports whether k is present in the set.
func (s Set) Has(k Kind) bool {
	return s&(1<<uint(k)) != 0
}

// Add returns the set with k included.
func (s Set) Add(k Kind) Set {
	return s | (1 << uint(k))
}

// Len returns the number of evidence kinds present.
func (s Set) Len() int {
	n := 0
	for i := 0; i < numKinds; i++ {
		if s&(1<<uint(i)) != 0 {
			n++
		}
	}
	return n
}

// ToBits returns the raw bitmask.
func (s Set) ToBits() uint8 { return uint8(s) }

// FromBits reconstructs a Set from a raw bitmask. from_bits(to_bits(s))
// == s for any subset s of the eight evidences.
func FromBits(bits uint8) Set { return Set(bits) }

// Kinds returns the evidence kinds present, in declaration order.
func (s Set) Kinds() []Kind {
	var out []Kind
	for i := 0; i < numKinds; i++ {
		if s&(1<<uint(i)) != 0 {
			out = append(out, Kind(i))
		}
	}
	return out
}

func (s Set) String() string {
	return fmt.Sprintf("%08b", uint8(s))
}
