package directory

import (
	"os"
)

// pathResolver defines workspace path resolution operations.
type pathResolver interface {
	Abs(path string) (string, error)
	Rel(path string) (string, error)
}

// fileSystem defines the minimal filesystem interface needed by directory tools.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
}

// gitignoreService checks whether a workspace-relative path is gitignored.
type gitignoreService interface {
	ShouldIgnore(relativePath string) bool
}
