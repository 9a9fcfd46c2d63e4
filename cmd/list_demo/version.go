package main

import (
	"fmt"
	"os"
	"runtime"
)

var (
	// GitTagSha is set with -ldflags at build time
	GitTagSha = "Git tag sha: not provided"
)

func printVersion() {
	fmt.Printf("%s, %s\n", getVersion(), runtime.Version())
	os.Exit(0)
}

func getVersion() string {
	return GitTagSha
}
