package version

import "runtime/debug"

var (
	cliVersionHash = ""
	cliVersion     = "v0.1.0+dev"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	modified := false

	for _, v := range info.Settings {
		if v.Key == "vcs.revision" {
			cliVersionHash = v.Value
		}
		if v.Key == "vcs.modified" && v.Value == "true" {
			modified = true
		}
	}
	if modified {
		cliVersionHash += "-modified"
	}
}

// Info is the version of the binary as printed by the version command.
type Info struct {
	Version string `json:"version"`
	Hash    string `json:"hash"`
}

func Get() string {
	return cliVersion
}

func GetCommitHash() string {
	return cliVersionHash
}

func GetInfo() Info {
	return Info{
		Version: cliVersion,
		Hash:    cliVersionHash,
	}
}
