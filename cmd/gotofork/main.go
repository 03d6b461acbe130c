package main

import (
	"os"
)

func main() {
	if err := newRootCmd(openPipeline).Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
