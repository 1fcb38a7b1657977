package hal

import (
	"fmt"
	"strings"
)

// Kind mirrors power_hint_t from hardware/power.h.
type Kind int32

const (
	HintVsync                Kind = 0x00000001
	HintInteraction          Kind = 0x00000002
	HintVideoEncode          Kind = 0x00000003
	HintVideoDecode          Kind = 0x00000004
	HintLowPower             Kind = 0x00000005
	HintSustainedPerformance Kind = 0x00000006
	HintVRMode               Kind = 0x00000007
	HintLaunch               Kind = 0x00000008
)

var kindNames = map[Kind]string{
	HintVsync:                "vsync",
	HintInteraction:          "interaction",
	HintVideoEncode:          "video_encode",
	HintVideoDecode:          "video_decode",
	HintLowPower:             "low_power",
	HintSustainedPerformance: "sustained_performance",
	HintVRMode:               "vr_mode",
	HintLaunch:               "launch",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("hint_%#x", int32(k))
}

// ParseKind accepts the names printed by Kind.String, with dashes or
// underscores, case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown power hint %q", name)
}

// Result is what an override reports back to the host dispatcher. The values
// match HINT_HANDLED and HINT_NONE in power-common.h.
type Result int32

const (
	Handled    Result = 0
	NotHandled Result = -1
)

func (r Result) String() string {
	if r == Handled {
		return "handled"
	}
	return "not handled"
}

// Request is a single power hint. Duration is the optional interaction
// payload in milliseconds; Metadata is the video encode/decode blob.
type Request struct {
	Kind     Kind
	Duration *int32
	Metadata string
}

func Hint(kind Kind) Request {
	return Request{Kind: kind}
}

func HintWithDuration(kind Kind, ms int32) Request {
	return Request{Kind: kind, Duration: &ms}
}

func HintWithMetadata(kind Kind, metadata string) Request {
	return Request{Kind: kind, Metadata: metadata}
}
