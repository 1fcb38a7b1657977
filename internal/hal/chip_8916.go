package hal

func init() {
	register(msm8916{}, "8916", "msm8939", "8939")
}

// msm8916 covers the 8916/8939/8929 parts. The quad-core 8916 itself has a
// single cluster; the octa-core siblings also drop cpu0's floor while the
// screen is off, so volume key presses don't spike peak power.
type msm8916 struct{}

var (
	msm8916InteractionBoost = Opcodes("interaction_boost",
		AllCPUsPwrClpsDis, SchedPreferIdleDis, 0x20D)
	msm8916InteractionFling = Opcodes("interaction_fling_boost",
		AllCPUsPwrClpsDis, SchedBoostOn, SchedPreferIdleDis, 0x20D)
	msm8916Launch = Opcodes("launch",
		AllCPUsPwrClpsDis, SchedBoostOn, SchedPreferIdleDis,
		0x20F, 0x1C00, 0x4001, 0x4101, 0x4201)

	msm8916DisplayOff = Opcodes("display_off",
		TrMs50, ThreadMigrationSyncOff)
	msm8939DisplayOff = Opcodes("display_off",
		TrMsCPU050, TrMsCPU450, ThreadMigrationSyncOff)
)

const (
	minFreqCPU0DisplayOff = 400000
	minFreqCPU0DisplayOn  = 960000
)

func (msm8916) Name() string            { return "msm8916" }
func (msm8916) GovernorCores() []int    { return []int{0, 1, 2, 3} }
func (msm8916) VideoEncode() EncodeMode { return EncodeNoOp }

func (msm8916) InteractionTables() (Table, Table, bool) {
	return msm8916InteractionBoost, msm8916InteractionFling, true
}

func (msm8916) LaunchTable() (Table, bool) { return msm8916Launch, true }

func (msm8916) VideoEncodeTable(Variant) Table { return Table{} }

func (msm8916) Swallows(kind Kind) bool { return kind == HintVideoDecode }

func (msm8916) Display(v Variant) DisplayAction {
	if v == Variant8916 {
		return DisplayAction{Off: msm8916DisplayOff}
	}
	return DisplayAction{
		Off:           msm8939DisplayOff,
		MinFreqOffKHz: minFreqCPU0DisplayOff,
		MinFreqOnKHz:  minFreqCPU0DisplayOn,
	}
}

func (msm8916) Variant(socID int) Variant {
	if socID == 206 || (socID >= 247 && socID <= 250) {
		return Variant8916
	}
	return VariantDefault
}

func (msm8916) Variants() []Variant { return []Variant{Variant8916, VariantDefault} }
