// OS interface wrappers

package utils

import "os"

type OSUtil interface {
	UserCacheDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
	Stat(name string) (os.FileInfo, error)
	RemoveAll(path string) error
	TempDir() string
}

type osUtilImpl struct{}

func (o *osUtilImpl) UserCacheDir() (string, error) {
	return os.UserCacheDir()
}

func (o *osUtilImpl) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osUtilImpl) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (o *osUtilImpl) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (o *osUtilImpl) TempDir() string {
	return os.TempDir()
}

func NewOSUtil() OSUtil {
	return &osUtilImpl{}
}
