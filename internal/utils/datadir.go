package utils

import (
	"io/fs"
	"path"

	"github.com/rs/zerolog"
)

const (
	FILEPERM_755 fs.FileMode = 0755 // Owner=rwx, Group=r-x, Other=r-x
)

// DataDirectory returns the directory an import run stages its files in.
// If configured is non-empty it is used as-is, otherwise a directory below
// the user cache dir is chosen. The directory is created if missing.
func DataDirectory(configured string, logger *zerolog.Logger) (string, error) {
	osutil := NewOSUtil()
	return dataDirectoryImpl(configured, logger, osutil)
}

func dataDirectoryImpl(configured string, logger *zerolog.Logger, osUtil OSUtil) (string, error) {
	dir := configured
	if dir == "" {
		base, err := osUtil.UserCacheDir()
		if err != nil {
			logger.Debug().Err(err).Msg("no user cache dir, falling back to system temp")
			base = osUtil.TempDir()
		}
		dir = path.Join(base, "mosaiq", "import-data")
	}

	if _, err := osUtil.Stat(dir); err != nil {
		logger.Debug().Str("path", dir).Msg("data directory does not exist, creating it")
		if err := osUtil.MkdirAll(dir, FILEPERM_755); err != nil {
			return "", err
		}
	}

	return dir, nil
}

// RemoveDirectory deletes a staging directory and everything below it.
func RemoveDirectory(dir string) error {
	osutil := NewOSUtil()
	return osutil.RemoveAll(dir)
}
