package ignore

// DefaultPatterns is the immutable default ignore list applied unless the
// caller disables it. It covers version-control metadata, build artifacts,
// caches, editor and IDE folders, OS metadata files, and common
// compiled-binary extensions.
var DefaultPatterns = []string{
	// version control
	".git",
	".hg",
	".svn",
	// dependency and build output
	"node_modules",
	"bower_components",
	"build",
	"dist",
	"target",
	"out",
	"bin",
	"obj",
	"venv",
	".venv",
	"env",
	"*.egg-info",
	// caches
	"__pycache__",
	".pytest_cache",
	".mypy_cache",
	".tox",
	".cache",
	".sass-cache",
	".gradle",
	".coverage",
	"coverage",
	// editors and IDEs
	".idea",
	".vscode",
	"*.swp",
	"*.swo",
	// OS metadata
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
	// compiled binaries
	"*.pyc",
	"*.pyo",
	"*.pyd",
	"*.class",
	"*.o",
	"*.obj",
	"*.a",
	"*.so",
	"*.dll",
	"*.dylib",
	"*.exe",
	// logs and archives
	"*.log",
	"*.zip",
	"*.tar.gz",
}
