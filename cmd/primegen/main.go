// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Command primegen generates certified large primes from the command line.
//
// Usage:
//
//	primegen --kind random --digits 100
//	primegen --kind safe --digits 64 --count 3
//	primegen --config primegen.yaml --verbose
//
// Flags override values loaded from the optional YAML config file.
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/ipfs/go-log"
	"github.com/olekukonko/tablewriter"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/primelab/primegen/oracle"
	"github.com/primelab/primegen/prime"
)

type cliConfig struct {
	Kind      string
	Digits    int
	Count     int
	Rounds    int
	Workers   int
	Threshold int
	Timeout   time.Duration
	OracleCmd string
	Verbose   bool
}

func main() {
	cfg := cliConfig{
		Kind:   "random",
		Digits: 100,
		Count:  1,
	}

	var configPath string
	pflag.StringVar(&configPath, "config", "", "path to a YAML config file")
	pflag.StringVar(&cfg.Kind, "kind", cfg.Kind, "structural kind: random or safe")
	pflag.IntVar(&cfg.Digits, "digits", cfg.Digits, "exact decimal digit count of the result")
	pflag.IntVar(&cfg.Count, "count", cfg.Count, "number of primes to generate")
	pflag.IntVar(&cfg.Rounds, "rounds", 0, "Miller-Rabin witness rounds (0 = default)")
	pflag.IntVar(&cfg.Workers, "workers", 0, "parallel search workers (0 = one per CPU)")
	pflag.IntVar(&cfg.Threshold, "parallel-threshold", 0, "digit count at which parallel search engages (0 = default)")
	pflag.DurationVar(&cfg.Timeout, "timeout", 0, "overall deadline, e.g. 5m (0 = none)")
	pflag.StringVar(&cfg.OracleCmd, "oracle-cmd", "", "external oracle command; the candidate file path is appended")
	pflag.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	pflag.Parse()

	if configPath != "" {
		if err := applyConfigFile(configPath, &cfg); err != nil {
			pterm.Error.Printfln("loading %s: %v", configPath, err)
			os.Exit(1)
		}
	}
	if cfg.Verbose {
		_ = log.SetLogLevel("primegen", "debug")
	}

	kind, err := parseKind(cfg.Kind)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	gcfg := prime.DefaultConfig()
	if cfg.Rounds > 0 {
		gcfg.Rounds = cfg.Rounds
	}
	if cfg.Workers > 0 {
		gcfg.Workers = cfg.Workers
	}
	if cfg.Threshold > 0 {
		gcfg.ParallelThreshold = cfg.Threshold
	}
	if cfg.OracleCmd != "" {
		ext, err := parseOracleCmd(cfg.OracleCmd)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		gcfg.Oracle = ext
	}

	g, err := prime.NewGenerator(gcfg)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"#", "Kind", "Digits", "Elapsed", "Prime"})
	for i := 0; i < cfg.Count; i++ {
		spinner, _ := pterm.DefaultSpinner.Start(
			fmt.Sprintf("searching for a %d-digit %s prime (%d/%d)", cfg.Digits, kind, i+1, cfg.Count))
		start := time.Now()
		p, err := g.Generate(ctx, kind, cfg.Digits)
		if err != nil {
			spinner.Fail(err.Error())
			os.Exit(1)
		}
		elapsed := time.Since(start).Round(time.Millisecond)
		spinner.Success(fmt.Sprintf("found in %s", elapsed))
		fmt.Println(p.Text(10))
		table.Append([]string{
			strconv.Itoa(i + 1), kind.String(), strconv.Itoa(cfg.Digits), elapsed.String(), preview(p),
		})
	}
	table.Render()
}

func applyConfigFile(path string, cfg *cliConfig) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// Timeout is a string here because yaml.v3 has no native duration
	// decoding; it goes through time.ParseDuration below.
	var fileCfg struct {
		Kind      string `yaml:"kind"`
		Digits    int    `yaml:"digits"`
		Count     int    `yaml:"count"`
		Rounds    int    `yaml:"rounds"`
		Workers   int    `yaml:"workers"`
		Threshold int    `yaml:"parallel_threshold"`
		Timeout   string `yaml:"timeout"`
		OracleCmd string `yaml:"oracle_cmd"`
		Verbose   bool   `yaml:"verbose"`
	}
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return err
	}
	var fileTimeout time.Duration
	if fileCfg.Timeout != "" {
		if fileTimeout, err = time.ParseDuration(fileCfg.Timeout); err != nil {
			return err
		}
	}
	// Flags the user set explicitly win over the file.
	merge := func(flag string, apply func()) {
		if !pflag.CommandLine.Changed(flag) {
			apply()
		}
	}
	merge("kind", func() {
		if fileCfg.Kind != "" {
			cfg.Kind = fileCfg.Kind
		}
	})
	merge("digits", func() {
		if fileCfg.Digits != 0 {
			cfg.Digits = fileCfg.Digits
		}
	})
	merge("count", func() {
		if fileCfg.Count != 0 {
			cfg.Count = fileCfg.Count
		}
	})
	merge("rounds", func() { cfg.Rounds = fileCfg.Rounds })
	merge("workers", func() { cfg.Workers = fileCfg.Workers })
	merge("parallel-threshold", func() { cfg.Threshold = fileCfg.Threshold })
	merge("timeout", func() { cfg.Timeout = fileTimeout })
	merge("oracle-cmd", func() { cfg.OracleCmd = fileCfg.OracleCmd })
	merge("verbose", func() { cfg.Verbose = cfg.Verbose || fileCfg.Verbose })
	return nil
}

// parseOracleCmd splits an oracle command line into the executable and its
// arguments. Whitespace-only input is a usage error, not a panic.
func parseOracleCmd(s string) (*oracle.Exec, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("oracle-cmd must name an executable")
	}
	return &oracle.Exec{
		Path:    parts[0],
		Args:    parts[1:],
		Timeout: 30 * time.Second,
	}, nil
}

func parseKind(s string) (prime.Kind, error) {
	switch strings.ToLower(s) {
	case "random":
		return prime.Random, nil
	case "safe":
		return prime.Safe, nil
	case "mersenne":
		// Recognized so the engine can report it as unsupported.
		return prime.Mersenne, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (want random or safe)", s)
	}
}

// preview truncates very long primes for the summary table; the full value
// already went to stdout.
func preview(p *big.Int) string {
	s := p.Text(10)
	if len(s) <= 24 {
		return s
	}
	return s[:10] + "..." + s[len(s)-10:]
}
