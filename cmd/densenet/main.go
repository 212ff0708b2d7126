// Package main provides the densenet command: it trains a dense network on
// a built-in truth table or a CSV dataset, prints the cost while training
// and the final predictions, and saves or loads the weights.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/densenet/internal/matrix"
	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/serialization"
)

const version = "v0.1.0"

// config holds the parsed command line.
type config struct {
	dataset string
	csvPath string
	targets int

	hidden []int
	act    nn.Activation
	outAct nn.Activation

	epochs int
	lr     float64
	batch  int
	seed   uint64
	report int

	save string
	load string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("densenet: ")

	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("densenet %s\n", version)
		return
	}

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// parseConfig parses and validates command line arguments.
func parseConfig(args []string, output io.Writer) (*config, error) {
	fs := flag.NewFlagSet("densenet", flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := &config{}
	fs.StringVar(&cfg.dataset, "dataset", "xor", "Built-in dataset: "+strings.Join(datasetNames(), ", "))
	fs.StringVar(&cfg.csvPath, "csv", "", "CSV dataset with a header row (overrides -dataset)")
	fs.IntVar(&cfg.targets, "targets", 1, "Number of trailing CSV columns holding targets")
	hidden := fs.String("hidden", "2", "Comma-separated hidden layer widths (empty for none)")
	act := fs.String("act", "sigmoid", "Hidden layer activation: sigmoid or relu")
	outAct := fs.String("out-act", "sigmoid", "Output layer activation: sigmoid or relu")
	fs.IntVar(&cfg.epochs, "epochs", 10000, "Number of training epochs")
	fs.Float64Var(&cfg.lr, "lr", 1.0, "Learning rate")
	fs.IntVar(&cfg.batch, "batch", 0, "Mini-batch size (0 = full batch without shuffling)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "Random seed (0 = seed from the clock)")
	fs.IntVar(&cfg.report, "report", 1000, "Epochs between cost reports")
	fs.StringVar(&cfg.save, "save", "", "Write the trained weights to this file")
	fs.StringVar(&cfg.load, "load", "", "Read initial weights from this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if cfg.hidden, err = parseWidths(*hidden); err != nil {
		return nil, err
	}
	if cfg.act, err = nn.ParseActivation(*act); err != nil {
		return nil, fmt.Errorf("-act: %w", err)
	}
	if cfg.outAct, err = nn.ParseActivation(*outAct); err != nil {
		return nil, fmt.Errorf("-out-act: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the numeric options.
func (c *config) validate() error {
	switch {
	case c.epochs < 0:
		return fmt.Errorf("-epochs must be >= 0, got %d", c.epochs)
	case c.lr <= 0:
		return fmt.Errorf("-lr must be > 0, got %g", c.lr)
	case c.batch < 0:
		return fmt.Errorf("-batch must be >= 0, got %d", c.batch)
	case c.report <= 0:
		return fmt.Errorf("-report must be > 0, got %d", c.report)
	case c.csvPath != "" && c.targets <= 0:
		return fmt.Errorf("-targets must be > 0, got %d", c.targets)
	case c.csvPath == "" && !isDataset(c.dataset):
		return fmt.Errorf("unknown dataset %q (want one of %s)", c.dataset, strings.Join(datasetNames(), ", "))
	}
	return nil
}

// parseWidths parses "3,4" into []int{3, 4}.
func parseWidths(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	widths := make([]int, len(parts))
	for i, part := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid hidden width %q: %w", part, err)
		}
		if w <= 0 {
			return nil, fmt.Errorf("hidden width must be > 0, got %d", w)
		}
		widths[i] = w
	}
	return widths, nil
}

// topology returns the layer widths and activations for a dataset with
// in inputs and out targets.
func (c *config) topology(in, out int) ([]int, []nn.Activation) {
	sizes := make([]int, 0, len(c.hidden)+2)
	sizes = append(sizes, in)
	sizes = append(sizes, c.hidden...)
	sizes = append(sizes, out)

	acts := make([]nn.Activation, len(sizes)-1)
	for i := range acts {
		acts[i] = c.act
	}
	acts[len(acts)-1] = c.outAct
	return sizes, acts
}

// run trains a network as described by cfg, writing progress to w.
func run(cfg *config, w io.Writer) error {
	if cfg.seed != 0 {
		matrix.Seed(cfg.seed)
	}

	inputs, targets, err := loadData(cfg)
	if err != nil {
		return err
	}
	if cfg.batch > inputs.Rows() {
		return fmt.Errorf("-batch %d exceeds the %d dataset rows", cfg.batch, inputs.Rows())
	}

	sizes, acts := cfg.topology(inputs.Cols(), targets.Cols())
	net := nn.NewMLP(sizes, acts...)
	fmt.Fprintf(w, "network %v, %d parameters\n", sizes, nn.NumParams(net))

	if cfg.load != "" {
		if err := nn.Load(net, cfg.load); err != nil {
			return err
		}
		fmt.Fprintf(w, "loaded weights from %s\n", cfg.load)
	}

	train(net, cfg, inputs, targets, w)
	printPredictions(net, inputs, targets, w)

	if cfg.save != "" {
		if err := nn.Save(net, cfg.save); err != nil {
			return err
		}
		sum, err := serialization.FileChecksum(cfg.save)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "saved weights to %s (sha256 %x)\n", cfg.save, sum)
	}
	return nil
}

// train runs cfg.epochs epochs, reporting the cost every cfg.report epochs.
func train(net *nn.Network, cfg *config, inputs, targets *matrix.Matrix, w io.Writer) {
	// Fit shuffles in place; keep the caller's row order for predictions.
	trainIn, trainTg := inputs.Clone(), targets.Clone()

	fmt.Fprintf(w, "epoch %6d  cost %.6f\n", 0, net.Cost(inputs, targets))
	for done := 0; done < cfg.epochs; {
		step := min(cfg.report, cfg.epochs-done)
		if cfg.batch == 0 {
			net.Train(step, cfg.lr, trainIn, trainTg)
		} else {
			net.Fit(step, cfg.lr, cfg.batch, trainIn, trainTg)
		}
		done += step
		fmt.Fprintf(w, "epoch %6d  cost %.6f\n", done, net.Cost(inputs, targets))
	}
}

// printPredictions prints inputs, targets and network outputs.
func printPredictions(net *nn.Network, inputs, targets *matrix.Matrix, w io.Writer) {
	outputs := matrix.Zeros(inputs.Rows(), net.OutSize())
	for r := 0; r < inputs.Rows(); r++ {
		matrix.Copy(matrix.Row(outputs, r), net.Forward(matrix.Row(inputs, r)))
	}

	fmt.Fprintln(w, matrix.Format(inputs, "inputs"))
	fmt.Fprintln(w, matrix.Format(targets, "targets"))
	fmt.Fprintln(w, matrix.Format(outputs, "outputs"))
}
