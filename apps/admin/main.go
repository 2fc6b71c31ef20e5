package main

import (
	"log"
	"os"

	"github.com/trezcool/happyclass/storage/seed"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	s, err := seed.Default()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		out:  os.Stdout,
		seed: s,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
