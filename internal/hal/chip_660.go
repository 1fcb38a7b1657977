package hal

func init() {
	register(sdm660{}, "660", "sdm630", "630")
}

// sdm660 also serves the SDM630, which tunes its big cluster where the 660
// tunes the little one.
type sdm660 struct{}

var (
	// hispeed 1113MHz, go_hispeed_load 95, above_hispeed_delay 40ms,
	// target_loads 95, nr_run 5, bus DCVS sample 10ms.
	sdm630VideoEncode = Pairs("video_encode",
		Resource{HispeedFreqBig, 0x459},
		Resource{GoHispeedLoadBig, 0x5F},
		Resource{AboveHispeedDelayBig, 0x4},
		Resource{TargetLoadsBig, 0x5F},
		Resource{SchedSpillNrRun, 0x5},
		Resource{CPUBWHwmonSampleMs, 0xA},
	)
	// hispeed 902MHz, go_hispeed_load 95, above_hispeed_delay 40ms,
	// bus DCVS sample 10ms.
	sdm660VideoEncode = Pairs("video_encode",
		Resource{HispeedFreqLittle, 0x386},
		Resource{GoHispeedLoadLittle, 0x5F},
		Resource{AboveHispeedDelayLittle, 0x4},
		Resource{CPUBWHwmonSampleMs, 0xA},
	)

	sdm630DisplayOff = Pairs("display_off",
		Resource{HispeedFreqBig, 0x459},
		Resource{GoHispeedLoadBig, 0x5F},
		Resource{AboveHispeedDelayBig, 0x4},
		Resource{CPUBWHwmonSampleMs, 0xA},
	)
	// As the encode table, plus sched group upmigrate 500.
	sdm660DisplayOff = Pairs("display_off",
		Resource{HispeedFreqLittle, 0x386},
		Resource{GoHispeedLoadLittle, 0x5F},
		Resource{AboveHispeedDelayLittle, 0x4},
		Resource{CPUBWHwmonSampleMs, 0xA},
		Resource{SchedGroupUpMigrate, 0x1F4},
	)
)

func (sdm660) Name() string                            { return "sdm660" }
func (sdm660) GovernorCores() []int                    { return []int{0, 1, 2, 3} }
func (sdm660) InteractionTables() (Table, Table, bool) { return Table{}, Table{}, false }
func (sdm660) LaunchTable() (Table, bool)              { return Table{}, false }
func (sdm660) VideoEncode() EncodeMode                 { return EncodeSync }
func (sdm660) Swallows(kind Kind) bool                 { return kind == HintVsync }

func (sdm660) VideoEncodeTable(v Variant) Table {
	if v == VariantSDM630 {
		return sdm630VideoEncode
	}
	return sdm660VideoEncode
}

func (sdm660) Display(v Variant) DisplayAction {
	if v == VariantSDM630 {
		return DisplayAction{Off: sdm630DisplayOff}
	}
	return DisplayAction{Off: sdm660DisplayOff}
}

func (sdm660) Variant(socID int) Variant {
	if socID == 318 || socID == 327 {
		return VariantSDM630
	}
	return VariantDefault
}

func (sdm660) Variants() []Variant { return []Variant{VariantSDM630, VariantDefault} }
