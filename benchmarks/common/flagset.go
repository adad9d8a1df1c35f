package common

import (
	"path"
	"time"

	"github.com/zeu5/nchain-rl-testing/chain"
	"github.com/zeu5/nchain-rl-testing/util"
)

type Flags struct {
	ChainFlags
	SavePath string
	RunFlags
	Parallelism int
}

type ChainFlags struct {
	Length          int
	Slip            float64
	SmallReward     float64
	LargeReward     float64
	MaxEpisodeSteps int
	Seed            uint64
}

type RunFlags struct {
	NumRuns                int
	Episodes               int
	Horizon                int
	MaxConsecutiveErrors   int
	MaxConsecutiveTimeouts int
	EpisodeTimeout         time.Duration
}

func DefaultFlags() *Flags {
	chainDefaults := chain.DefaultConfig()
	return &Flags{
		ChainFlags: ChainFlags{
			Length:          chainDefaults.Length,
			Slip:            chainDefaults.Slip,
			SmallReward:     chainDefaults.SmallReward,
			LargeReward:     chainDefaults.LargeReward,
			MaxEpisodeSteps: chainDefaults.MaxEpisodeSteps,
			Seed:            1,
		},
		SavePath: "results",
		RunFlags: RunFlags{
			NumRuns:                1,
			Episodes:               1000,
			Horizon:                100,
			MaxConsecutiveErrors:   20,
			MaxConsecutiveTimeouts: 20,
			EpisodeTimeout:         10 * time.Second,
		},
		Parallelism: 4,
	}
}

// ChainConfig maps the flag values onto an environment config.
func (f *Flags) ChainConfig() chain.Config {
	return chain.Config{
		Length:          f.Length,
		Slip:            f.Slip,
		SmallReward:     f.SmallReward,
		LargeReward:     f.LargeReward,
		MaxEpisodeSteps: f.MaxEpisodeSteps,
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
