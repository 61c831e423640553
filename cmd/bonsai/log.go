package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func setupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&prefixed.TextFormatter{})
	log.SetLevel(log.WarnLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// fail logs the error and exits with the given status code
func fail(code int, err error) {
	log.Error(err)
	os.Exit(code)
}
