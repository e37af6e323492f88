package version

// Both are replaced at build time with -ldflags "-X github.com/elyby/skulls/internal/version.version=..."
var (
	version = "undefined"
	commit  = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}
