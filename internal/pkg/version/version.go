package version

import (
	_ "embed"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- && printf clean > dirty.txt || printf dirty > dirty.txt"

// AppName is shown in the start banner and sent as the API caller name.
const AppName = "Meraki Network Appliance Bulk Port Configuration"

// AppVersion is the release version of the tool.
const AppVersion = "1.0.0"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

type gitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

var info = gitInfo{
	Commit: strings.TrimSpace(commit),
	Branch: strings.TrimSpace(branch),
	Tag:    strings.TrimSpace(tag),
	Dirty:  strings.TrimSpace(dirty) == "dirty",
}

// GetGitInfo returns a copy of the gitInfo struct containing git metadata.
func GetGitInfo() gitInfo {
	return info
}

// UserAgent returns the caller identification sent with every API request.
func UserAgent() string {
	return "appliance-portcfg/" + AppVersion + " " + strings.ReplaceAll(AppName, " ", "")
}
