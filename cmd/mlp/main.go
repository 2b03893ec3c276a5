// Package main provides the mlp CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/mlp/nn"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("mlp %s\n", version)
	case "xor":
		if err := runXOR(os.Args[2:]); err != nil {
			log.Fatalf("xor: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("mlp - multilayer perceptron")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a network on XOR and print its predictions")
}

var xorSamples = []struct {
	input  []float64
	target []float64
}{
	{[]float64{0, 0}, []float64{0}},
	{[]float64{0, 1}, []float64{1}},
	{[]float64{1, 0}, []float64{1}},
	{[]float64{1, 1}, []float64{0}},
}

func runXOR(args []string) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	epochs := fs.Int("epochs", 2000, "number of passes over the four samples")
	hidden := fs.Int("hidden", 2, "hidden layer size")
	eta := fs.Float64("eta", nn.DefaultEta, "learning rate")
	alpha := fs.Float64("alpha", nn.DefaultAlpha, "momentum")
	seed := fs.Uint64("seed", 0, "weight initialization seed (0 = random)")
	every := fs.Int("report", 200, "print the mean loss every N epochs (0 = never)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := nn.Config{Eta: *eta, Alpha: *alpha}
	if *seed != 0 {
		cfg = cfg.WithSeed(*seed)
	}

	net, err := nn.New([]int{2, *hidden, 1}, cfg)
	if err != nil {
		return err
	}

	for epoch := 1; epoch <= *epochs; epoch++ {
		total := 0.0
		for _, s := range xorSamples {
			if err := net.FeedForward(s.input); err != nil {
				return err
			}
			loss, err := net.Loss(s.target)
			if err != nil {
				return err
			}
			total += loss
			if err := net.BackProp(s.target); err != nil {
				return err
			}
		}
		if *every > 0 && epoch%*every == 0 {
			fmt.Printf("epoch %5d  loss %.6f\n", epoch, total/float64(len(xorSamples)))
		}
	}

	for _, s := range xorSamples {
		out, err := net.Predict(s.input)
		if err != nil {
			return err
		}
		fmt.Printf("%v -> %.4f (want %v)\n", s.input, out[0], s.target[0])
	}
	return nil
}
