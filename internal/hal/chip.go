package hal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownChip = errors.New("unknown chip")

// Variant is a chip's classification of the SoC id, such as whether a
// 660-family part is really an SDM630.
type Variant int

const (
	VariantDefault Variant = iota
	Variant8916
	VariantSDM630
)

func (v Variant) String() string {
	switch v {
	case Variant8916:
		return "msm8916"
	case VariantSDM630:
		return "sdm630"
	}
	return "default"
}

type EncodeMode int

const (
	// EncodeUnhandled leaves video encode hints to the platform default.
	EncodeUnhandled EncodeMode = iota
	// EncodeNoOp swallows video encode hints.
	EncodeNoOp
	// EncodeSync applies the encode table as soon as encoding starts.
	EncodeSync
	// EncodeDelayed applies the encode table after a settle delay, unless
	// encoding stopped or restarted in the meantime.
	EncodeDelayed
)

func (m EncodeMode) String() string {
	switch m {
	case EncodeNoOp:
		return "noop"
	case EncodeSync:
		return "sync"
	case EncodeDelayed:
		return "delayed"
	}
	return "unhandled"
}

// DisplayAction is what a chip does when the display turns off, and undoes
// when it turns back on. MinFreqOffKHz and MinFreqOnKHz are written to
// scaling_min_freq when non-zero.
type DisplayAction struct {
	Off           Table
	MinFreqOffKHz int
	MinFreqOnKHz  int
}

// Chip holds one SoC family's hint policy. Implementations are pure data;
// debounce, the encode session and governor probing live in HAL.
type Chip interface {
	Name() string
	// GovernorCores lists the CPUs probed, in order, for the scaling governor.
	GovernorCores() []int
	// InteractionTables returns the plain and fling boost tables, ok is false
	// when the chip does not handle interaction or launch hints.
	InteractionTables() (boost, fling Table, ok bool)
	LaunchTable() (Table, bool)
	VideoEncode() EncodeMode
	VideoEncodeTable(v Variant) Table
	// Swallows reports kinds the chip recognizes and deliberately ignores.
	Swallows(kind Kind) bool
	Display(v Variant) DisplayAction
}

// Classifier is implemented by chips whose tables depend on the exact model.
// Chips without it never query the SoC id.
type Classifier interface {
	Variant(socID int) Variant
	Variants() []Variant
}

var chips = map[string]Chip{}

func register(c Chip, aliases ...string) {
	chips[c.Name()] = c
	for _, alias := range aliases {
		chips[alias] = c
	}
}

// Chips returns every registered family, sorted by name.
func Chips() []Chip {
	seen := map[string]bool{}
	out := make([]Chip, 0, len(chips))
	for _, c := range chips {
		if seen[c.Name()] {
			continue
		}
		seen[c.Name()] = true
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// LookupChip finds a family by name or alias, e.g. "msm8992" or "8992".
func LookupChip(name string) (Chip, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := chips[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChip, name)
}

// socFamilies maps SoC ids onto the family whose overrides apply.
var socFamilies = map[int]string{
	206: "msm8916", 247: "msm8916", 248: "msm8916", 249: "msm8916", 250: "msm8916",
	239: "msm8916", 241: "msm8916", 263: "msm8916",
	268: "msm8916", 269: "msm8916", 270: "msm8916", 271: "msm8916",
	264: "msm8952",
	251: "msm8992", 252: "msm8992",
	317: "sdm660", 324: "sdm660", 325: "sdm660", 326: "sdm660",
	318: "sdm660", 327: "sdm660",
}

// DetectChip picks the family for a SoC id.
func DetectChip(socID int) (Chip, error) {
	name, ok := socFamilies[socID]
	if !ok {
		return nil, fmt.Errorf("%w: soc id %d", ErrUnknownChip, socID)
	}
	return LookupChip(name)
}

// ChipTables is every table a chip can hand to the runtime, per variant.
type ChipTables struct {
	Name        string          `yaml:"name"`
	Cores       []int           `yaml:"governor_cores,flow"`
	Encode      string          `yaml:"video_encode"`
	Interaction []Table         `yaml:"interaction,omitempty"`
	Launch      *Table          `yaml:"launch,omitempty"`
	Variants    []VariantTables `yaml:"variants"`
}

type VariantTables struct {
	Variant       string `yaml:"variant"`
	VideoEncode   *Table `yaml:"video_encode,omitempty"`
	DisplayOff    Table  `yaml:"display_off"`
	MinFreqOffKHz int    `yaml:"min_freq_off_khz,omitempty"`
	MinFreqOnKHz  int    `yaml:"min_freq_on_khz,omitempty"`
}

func DescribeChip(c Chip) ChipTables {
	out := ChipTables{
		Name:   c.Name(),
		Cores:  c.GovernorCores(),
		Encode: c.VideoEncode().String(),
	}
	if boost, fling, ok := c.InteractionTables(); ok {
		out.Interaction = []Table{boost, fling}
	}
	if launch, ok := c.LaunchTable(); ok {
		out.Launch = &launch
	}

	variants := []Variant{VariantDefault}
	if cl, ok := c.(Classifier); ok {
		variants = cl.Variants()
	}
	for _, v := range variants {
		display := c.Display(v)
		vt := VariantTables{
			Variant:       v.String(),
			DisplayOff:    display.Off,
			MinFreqOffKHz: display.MinFreqOffKHz,
			MinFreqOnKHz:  display.MinFreqOnKHz,
		}
		if mode := c.VideoEncode(); mode == EncodeSync || mode == EncodeDelayed {
			encode := c.VideoEncodeTable(v)
			vt.VideoEncode = &encode
		}
		out.Variants = append(out.Variants, vt)
	}
	return out
}
