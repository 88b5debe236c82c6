package app

import "strings"

// Set with -ldflags "-X github.com/heartmarshall/clicktionary-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion reports the version for startup logs and /health, adding the
// commit and build time only when they were stamped.
func BuildVersion() string {
	var b strings.Builder
	b.WriteString(Version)

	var extra []string
	if Commit != "" && Commit != "unknown" {
		c := Commit
		if len(c) > 12 {
			c = c[:12]
		}
		extra = append(extra, "commit "+c)
	}
	if BuildTime != "" && BuildTime != "unknown" {
		extra = append(extra, "built "+BuildTime)
	}
	if len(extra) > 0 {
		b.WriteString(" (" + strings.Join(extra, ", ") + ")")
	}
	return b.String()
}
