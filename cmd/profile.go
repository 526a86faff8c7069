package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/profile"
)

var profileModes = map[string]func(*profile.Profile){
	"cpu":    profile.CPUProfile,
	"mem":    profile.MemProfile,
	"allocs": profile.MemProfileAllocs,
	"heap":   profile.MemProfileHeap,
	"mutex":  profile.MutexProfile,
	"block":  profile.BlockProfile,
	"thread": profile.ThreadcreationProfile,
	"trace":  profile.TraceProfile,
}

var activeProfile interface{ Stop() }

func startProfile(mode, path string) error {
	if mode == "" {
		return nil
	}
	fn, ok := profileModes[mode]
	if !ok {
		return fmt.Errorf("unknown profile mode %q", mode)
	}

	opts := []func(*profile.Profile){fn, profile.Quiet, profile.NoShutdownHook}
	if path != "" {
		opts = append(opts, profile.ProfilePath(path))
	}
	activeProfile = profile.Start(opts...)
	slog.Debug("profiling started", slog.String("mode", mode), slog.String("path", path))
	return nil
}

func stopProfile() {
	if activeProfile == nil {
		return
	}
	activeProfile.Stop()
	activeProfile = nil
}
