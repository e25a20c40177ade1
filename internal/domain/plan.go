package domain

type CopyItem struct {
	Pair       AssetPair
	SourcePath string
	DestPath   string
	// SourceExists is only populated when the planner probes sources.
	SourceExists bool
}

type CopyPlan struct {
	SourceDir string
	DestDir   string
	Items     []CopyItem
	Collapsed int
	Missing   int
	Probed    bool
}
