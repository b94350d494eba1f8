package pkg

// set by -ldflags "-X github.com/moltbot/gateway/pkg.version=..."
var version = "unset"

func GetVersion() string {
	return version
}
