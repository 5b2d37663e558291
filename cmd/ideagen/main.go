package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"idea-eval/backend/internal/cli"
)

// Set by the linker at release time.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.Error(color.RedString(err.Error()))
		os.Exit(1)
	}
}
