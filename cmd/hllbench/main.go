// Command hllbench feeds random numbers into a HyperLogLog sketch and an
// exact set, then reports how far the estimate is from the true cardinality.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/schollz/progressbar/v3"

	"github.com/morosdb/hyperloglog"
)

// maxExp keeps 10^exp inside a uint64.
const maxExp = 18

type config struct {
	precision uint
	numExp    uint
	maxExp    uint
	hash      string
	seed      uint64
	quiet     bool
}

type result struct {
	exact     int
	estimate  float64
	corrected float64
}

// relError is the relative error of est against the exact count.
func (r result) relError(est float64) float64 {
	if r.exact == 0 {
		return 0
	}
	fexact := float64(r.exact)
	return math.Abs(est-fexact) / fexact
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("hllbench", flag.ContinueOnError)
	fs.UintVar(&cfg.precision, "p", 6, "number of index bits used by the sketch")
	fs.UintVar(&cfg.numExp, "n", 8, "exponent of 10 for the number of values to generate")
	fs.UintVar(&cfg.maxExp, "max", 12, "exponent of 10 for the largest generated value")
	fs.StringVar(&cfg.hash, "hash", "murmur3", "hash function: murmur3, xxhash, metro or farm")
	fs.Uint64Var(&cfg.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.BoolVar(&cfg.quiet, "quiet", false, "do not draw a progress bar")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.numExp > maxExp || cfg.maxExp > maxExp {
		return cfg, fmt.Errorf("exponents must be <= %d", maxExp)
	}
	if cfg.precision > math.MaxUint8 {
		return cfg, fmt.Errorf("%w: %d", hyperloglog.ErrInvalidPrecision, cfg.precision)
	}
	if cfg.seed == 0 {
		cfg.seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

func pow10(exp uint) uint64 {
	n := uint64(1)
	for i := uint(0); i < exp; i++ {
		n *= 10
	}
	return n
}

func run(cfg config, progress io.Writer) (result, error) {
	h, ok := hyperloglog.HashByName(cfg.hash)
	if !ok {
		return result{}, fmt.Errorf("unknown hash %q", cfg.hash)
	}
	sk, err := hyperloglog.NewSketch(uint8(cfg.precision), hyperloglog.Uint64Hash(h))
	if err != nil {
		return result{}, err
	}

	numbers := pow10(cfg.numExp)
	upper := pow10(cfg.maxExp)
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))
	exact := intmap.NewSet[uint64](int(min(numbers, 1<<20)))

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions64(int64(numbers),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
	}

	for i := uint64(0); i < numbers; i++ {
		v := rng.Uint64N(upper + 1)
		sk.Insert(v)
		exact.Add(v)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(progress)
	}

	return result{
		exact:     exact.Len(),
		estimate:  sk.Estimate(),
		corrected: sk.CorrectedEstimate(),
	}, nil
}

func report(w io.Writer, res result) {
	fmt.Fprintf(w, "Cardinality counted with exact set\n> %d\n", res.exact)
	fmt.Fprintf(w, "Cardinality estimated with HLL\n> %.2f\n", res.estimate)
	fmt.Fprintf(w, "Cardinality estimated with range corrected HLL\n> %.2f\n", res.corrected)
	fmt.Fprintf(w, "Error\n> %.2f%%\n", res.relError(res.estimate)*100)
	fmt.Fprintf(w, "Corrected error\n> %.2f%%\n", res.relError(res.corrected)*100)
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	var progress io.Writer = os.Stderr
	if cfg.quiet {
		progress = nil
	}
	res, err := run(cfg, progress)
	if err != nil {
		log.Fatal(err)
	}
	report(os.Stdout, res)
}
