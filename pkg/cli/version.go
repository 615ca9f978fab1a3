package cli

// Version is the build version, overridden at release time with
// -ldflags "-X github.com/pbakke/bimp/pkg/cli.Version=x.y.z".
var Version = "0.1.0"
