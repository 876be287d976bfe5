// Command genperm generates a random permutation of a universe and prints it
// to the standard output, one decimal number per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	randperm "github.com/pdinklag/random-permutation"
)

// getLogger returns a stdr.Logger that implements the logr.Logger interface
// and sets the verbosity of the returned logger.
// Set v to 0 for info level messages and 1 for debug messages.
func getLogger(v int) logr.Logger {
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("genperm")
	if v < 0 || v > 1 {
		v = 0
		logger.Info("Invalid verbosity, setting logger to display info level messages only.")
	}
	stdr.SetVerbosity(v)
	return logger
}

func exitOnErr(logger logr.Logger, err error, msg string) {
	if err != nil {
		logger.Error(err, msg)
		os.Exit(1)
	}
}

// verify queries every index of the universe and checks that no value comes
// up twice. A collision means the permutation math is broken, so the caller
// treats any error as fatal. The bit vector is the only path in the program
// that needs memory proportional to the universe.
func verify(perm randperm.Permutation) error {
	u := perm.Universe()
	if u > math.MaxUint64-63 {
		return fmt.Errorf("universe %d is too large to verify", u)
	}
	seen := make([]uint64, (u+63)/64)
	for i := uint64(0); i < u; i++ {
		j := perm.Permute(i)
		w, b := j/64, uint(j%64)
		if seen[w]&(1<<b) != 0 {
			return fmt.Errorf("collision: index %d produced the duplicate value %d", i, j)
		}
		seen[w] |= 1 << b
	}
	return nil
}

func main() {
	var (
		universe  = flag.Uint64("universe", 0xFFFFFFFF, "the universe to draw numbers from")
		num       = flag.Uint64("num", 10, "the number of numbers to generate")
		seed      = flag.Uint64("seed", randperm.Timestamp(), "the random seed (default: high-res timestamp)")
		check     = flag.Bool("check", false, "check that a permutation is generated (debug)")
		verbosity = flag.Int("v", 0, "log verbosity (0: info, 1: debug)")
	)
	flag.Parse()

	logger := getLogger(*verbosity)

	if *universe < *num {
		exitOnErr(logger, fmt.Errorf("universe %d is smaller than num %d", *universe, *num),
			"the universe must be at least as large as the number of generated numbers")
	}

	start := time.Now()
	perm, err := randperm.New(*universe, *seed)
	exitOnErr(logger, err, "failed to construct permutation")
	logger.V(1).Info("permutation constructed",
		"universe", *universe, "seed", *seed, "took", time.Since(start).String())

	if *check {
		start = time.Now()
		exitOnErr(logger, verify(perm), "permutation verification failed")
		logger.Info("verification passed", "universe", *universe, "took", time.Since(start).String())
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var buf []byte
	cur := perm.Cursor()
	for i := uint64(0); i < *num; i++ {
		v, ok := cur.Next()
		if !ok {
			break
		}
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := out.Write(buf); err != nil {
			exitOnErr(logger, err, "failed to write output")
		}
	}
}
