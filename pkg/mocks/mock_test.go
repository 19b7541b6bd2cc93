package mocks

import (
	"github.com/mosaiq/go-import-framework/pkg/configuration"
	"github.com/mosaiq/go-import-framework/pkg/networking"
	"github.com/mosaiq/go-import-framework/pkg/runtimeinfo"
	"github.com/mosaiq/go-import-framework/pkg/ui"
)

var _ configuration.Configuration = (*MockConfiguration)(nil)
var _ networking.NetworkAccess = (*MockNetworkAccess)(nil)
var _ ui.ProgressBar = (*MockProgressBar)(nil)
var _ runtimeinfo.RuntimeInfo = (*MockRuntimeInfo)(nil)
var _ ui.UserInterface = (*MockUserInterface)(nil)
