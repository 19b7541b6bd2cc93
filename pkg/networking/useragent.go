package networking

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mosaiq/go-import-framework/pkg/runtimeinfo"
)

type UserAgentOptions func(ua *UserAgentInfo)

type UserAgentInfo struct {
	App         string
	AppVersion  string
	OS          string
	Arch        string
	ProcessName string
}

func UaWithRuntimeInfo(ri runtimeinfo.RuntimeInfo) UserAgentOptions {
	result := func(ua *UserAgentInfo) {
		ua.App = ri.GetName()
		ua.AppVersion = ri.GetVersion()
	}
	return result
}

func UaWithApplication(app string, appVersion string) UserAgentOptions {
	result := func(ua *UserAgentInfo) {
		ua.App = app
		ua.AppVersion = appVersion
	}
	return result
}

func UaWithOS(osName string) UserAgentOptions {
	result := func(ua *UserAgentInfo) {
		ua.OS = osName
	}
	return result
}

func UserAgent(opts ...UserAgentOptions) UserAgentInfo {
	processName, _ := os.Executable()
	ua := UserAgentInfo{
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		ProcessName: filepath.Base(processName),
	}

	for _, opt := range opts {
		opt(&ua)
	}

	return ua
}

// String returns a value that can be used as a User-Agent header.
// The string is following this format:
// <app>/<appVer> (<os>;<arch>;<procName>)
func (s UserAgentInfo) String() string {
	str := fmt.Sprint(
		s.App, "/", s.AppVersion,
		" (", s.OS, ";", s.Arch, ";", s.ProcessName, ")",
	)

	return str
}
