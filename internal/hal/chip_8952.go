package hal

func init() {
	register(msm8952{}, "8952")
}

type msm8952 struct{}

var (
	// Both clusters track scheduler load and migrations, sampling every 40ms.
	msm8952VideoEncode = Pairs("video_encode",
		Resource{IntOpCluster0UseSchedLoad, 0x1},
		Resource{IntOpCluster1UseSchedLoad, 0x1},
		Resource{IntOpCluster0UseMigrationNotif, 0x1},
		Resource{IntOpCluster1UseMigrationNotif, 0x1},
		Resource{IntOpCluster0TimerRate, BigLittleTrMs40},
		Resource{IntOpCluster1TimerRate, BigLittleTrMs40},
	)
	msm8952DisplayOff = Pairs("display_off",
		Resource{IntOpCluster0TimerRate, BigLittleTrMs50},
		Resource{IntOpCluster1TimerRate, BigLittleTrMs50},
		Resource{IntOpNotifyOnMigrate, 0x00},
	)
)

func (msm8952) Name() string                            { return "msm8952" }
func (msm8952) GovernorCores() []int                    { return []int{0, 1, 2, 3} }
func (msm8952) InteractionTables() (Table, Table, bool) { return Table{}, Table{}, false }
func (msm8952) LaunchTable() (Table, bool)              { return Table{}, false }
func (msm8952) VideoEncode() EncodeMode                 { return EncodeSync }
func (msm8952) VideoEncodeTable(Variant) Table          { return msm8952VideoEncode }
func (msm8952) Swallows(Kind) bool                      { return false }

func (msm8952) Display(Variant) DisplayAction {
	return DisplayAction{Off: msm8952DisplayOff}
}
