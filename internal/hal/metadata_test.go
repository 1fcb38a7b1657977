package hal

import (
	"errors"
	"testing"
)

func TestParseVideoEncodeMetadata(t *testing.T) {
	cases := []struct {
		blob  string
		state int
		id    int32
	}{
		{"state=1", 1, DefaultVideoEncodeHintID},
		{"state=0;hint_id=0x104", 0, 0x104},
		{"hint_id=260; state=1;", 1, 260},
		{"foo=bar;state=1", 1, DefaultVideoEncodeHintID},
		{"hint_id=0x105", -1, 0x105},
	}
	for _, tc := range cases {
		meta, err := ParseVideoEncodeMetadata(tc.blob)
		if err != nil {
			t.Fatalf("%q: %v", tc.blob, err)
		}
		if meta.State != tc.state || meta.HintID != tc.id {
			t.Fatalf("%q parsed to %+v", tc.blob, meta)
		}
	}
}

func TestParseVideoEncodeMetadataRejects(t *testing.T) {
	for _, blob := range []string{"", "  ", "state", "state=2", "state=yes", "hint_id=zz", "hint_id=0x1ffffffff"} {
		if _, err := ParseVideoEncodeMetadata(blob); !errors.Is(err, ErrMalformedMetadata) {
			t.Fatalf("%q: expected ErrMalformedMetadata, got %v", blob, err)
		}
	}
}
