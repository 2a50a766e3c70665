package build

import "fmt"

// Overridden at link time with -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var LongVersion = fmt.Sprintf("%s (%s)", Version, GitCommit)
