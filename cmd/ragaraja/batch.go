package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/ragaraja/cmds"
	"github.com/reusee/ragaraja/phenotypes"
	"github.com/reusee/ragaraja/ragavm"
)

var batchArg = cmds.Var[string]("-batch", "express every genome of a file, one per line")

func readGenomes(r io.Reader, input []float64) ([]phenotypes.Genome, error) {
	var genomes []phenotypes.Genome
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		genomes = append(genomes, phenotypes.Genome{
			Source: line,
			Input:  input,
		})
	}
	return genomes, scanner.Err()
}

func runBatch(
	ctx context.Context,
	path string,
	instructions *ragavm.InstructionSet,
	newExpresser phenotypes.NewExpresser,
	input []float64,
	w io.Writer,
) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	genomes, err := readGenomes(f, input)
	if err != nil {
		return err
	}
	for i, p := range newExpresser(instructions).Express(ctx, genomes) {
		if p.Err != nil {
			fmt.Fprintf(w, "%d\t%s\terror: %v\n", i, p.RunID, p.Err)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%v\t%v\n", i, p.RunID, p.Result.State.Output, p.Result.Halt)
	}
	return nil
}
