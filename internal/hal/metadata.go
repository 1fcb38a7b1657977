package hal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedMetadata = errors.New("malformed video encode metadata")

// VideoEncodeMetadata is the parsed form of an encode/decode hint blob.
// State is 1 when encoding starts, 0 when it stops and -1 when absent.
type VideoEncodeMetadata struct {
	State  int
	HintID int32
}

// ParseVideoEncodeMetadata parses blobs such as "state=1;hint_id=0x104".
// Unknown keys are skipped.
func ParseVideoEncodeMetadata(blob string) (VideoEncodeMetadata, error) {
	meta := VideoEncodeMetadata{State: -1, HintID: DefaultVideoEncodeHintID}
	if strings.TrimSpace(blob) == "" {
		return meta, fmt.Errorf("%w: empty", ErrMalformedMetadata)
	}

	for _, token := range strings.Split(blob, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return meta, fmt.Errorf("%w: token %q has no value", ErrMalformedMetadata, token)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "state":
			state, err := strconv.Atoi(value)
			if err != nil || state < -1 || state > 1 {
				return meta, fmt.Errorf("%w: state %q", ErrMalformedMetadata, value)
			}
			meta.State = state
		case "hint_id":
			id, err := strconv.ParseInt(value, 0, 32)
			if err != nil {
				return meta, fmt.Errorf("%w: hint_id %q", ErrMalformedMetadata, value)
			}
			meta.HintID = int32(id)
		}
	}
	return meta, nil
}
