package hal

// Legacy perflock opcodes (msm8916, msm8992 generation).
const (
	AllCPUsPwrClpsDis  int32 = 0x101
	SchedBoostOn       int32 = 0x1E01
	SchedPreferIdleDis int32 = 0x3E01

	TrMs50     int32 = 0xEFA
	TrMsCPU050 int32 = 0x30FA
	TrMsCPU450 int32 = 0x3BFA

	ThreadMigrationSyncOff int32 = 0x1F00
)

// Perflock v2 resource ids (msm8952, sdm660 generation), paired with a value.
const (
	IntOpCluster0TimerRate         int32 = 0x41424000
	IntOpCluster1TimerRate         int32 = 0x41424100
	IntOpCluster0UseSchedLoad      int32 = 0x41430000
	IntOpCluster1UseSchedLoad      int32 = 0x41430100
	IntOpCluster0UseMigrationNotif int32 = 0x41434000
	IntOpCluster1UseMigrationNotif int32 = 0x41434100
	IntOpNotifyOnMigrate           int32 = 0x4241C000

	AboveHispeedDelayBig    int32 = 0x41400000
	GoHispeedLoadBig        int32 = 0x41410000
	HispeedFreqBig          int32 = 0x41414000
	TargetLoadsBig          int32 = 0x41420000
	AboveHispeedDelayLittle int32 = 0x41400100
	GoHispeedLoadLittle     int32 = 0x41410100
	HispeedFreqLittle       int32 = 0x41414100

	SchedSpillNrRun     int32 = 0x40C1C000
	SchedGroupUpMigrate int32 = 0x40C54000
	CPUBWHwmonSampleMs  int32 = 0x41820000
)

// Interactive timer rates for big.LITTLE targets, in ms.
const (
	BigLittleTrMs50 int32 = 0x32
	BigLittleTrMs40 int32 = 0x28
)

// Hint ids shared with the host HAL.
const (
	DisplayStateHintID       int32 = 0x1000
	DefaultVideoEncodeHintID int32 = 0x100
)
