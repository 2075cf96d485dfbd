package version

import "runtime/debug"

// Version can be set at build time, e.g.
// go build -ldflags "-X github.com/vsariola/midiscales/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with "-dirty"
// appended if the working tree had local modifications.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && modified {
		revision += "-dirty"
	}
	return revision
}()

// VersionOrHash returns Version if set, otherwise the Hash, otherwise the
// module version recorded by go install.
func VersionOrHash() string {
	if Version != "" {
		return Version
	}
	if Hash != "" {
		return Hash
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "unknown"
}
