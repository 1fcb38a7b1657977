package hal

func init() {
	register(msm8992{}, "8992", "msm8994", "8994")
}

// msm8992 delays its encode hint: the table offlines the A57 cluster, and
// doing that before the camera has started up stalls it.
type msm8992 struct{}

var (
	msm8992InteractionBoost = Opcodes("interaction_boost",
		AllCPUsPwrClpsDis, SchedPreferIdleDis)
	msm8992InteractionFling = Opcodes("interaction_fling_boost",
		AllCPUsPwrClpsDis, SchedBoostOn, SchedPreferIdleDis)
	msm8992Launch = Opcodes("launch",
		SchedBoostOn, 0x20C)

	// A57 offline, four A53 cores online at 1.2GHz.
	msm8992VideoEncode = Opcodes("video_encode",
		0x150C, 0x160C, 0x170C, 0x180C, 0x3DFF)
	// 4+0 core configuration.
	msm8992DisplayOff = Opcodes("display_off",
		0x41004000, 0x0)
)

func (msm8992) Name() string { return "msm8992" }

// Only cpu0 is probed; the big cluster may be hotplugged out.
func (msm8992) GovernorCores() []int { return []int{0} }

func (msm8992) InteractionTables() (Table, Table, bool) {
	return msm8992InteractionBoost, msm8992InteractionFling, true
}

func (msm8992) LaunchTable() (Table, bool)     { return msm8992Launch, true }
func (msm8992) VideoEncode() EncodeMode        { return EncodeDelayed }
func (msm8992) VideoEncodeTable(Variant) Table { return msm8992VideoEncode }
func (msm8992) Swallows(Kind) bool             { return false }

func (msm8992) Display(Variant) DisplayAction {
	return DisplayAction{Off: msm8992DisplayOff}
}
