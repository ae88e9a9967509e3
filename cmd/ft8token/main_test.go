package main

import (
	"os"
	"testing"

	"github.com/spf13/pflag"

	ft8token "github.com/doismellburning/ft8token/src"
)

func Test_main(t *testing.T) {
	var oldArgs = os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"ft8token", "KK5JY/R", "EM16"}
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)

	ft8token.AssertOutputContains(t, main, "base KK5JY")
}
