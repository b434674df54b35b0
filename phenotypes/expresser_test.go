package phenotypes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/ragaraja/configs"
	"github.com/reusee/ragaraja/logs"
	"github.com/reusee/ragaraja/modes"
	"github.com/reusee/ragaraja/ragaconfigs"
	"github.com/reusee/ragaraja/ragavm"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
	).Fork(
		modes.ForTest(t),
		func() configs.Loader {
			return configs.NewLoader(nil, ragaconfigs.Schema())
		},
		func() ragaconfigs.MaxSteps {
			return 1000
		},
		func() ragaconfigs.Parallelism {
			return 4
		},
	)
}

func testInstructions(t *testing.T) *ragavm.InstructionSet {
	set, err := ragavm.Activate(ragavm.VersionAll)
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestExpress(t *testing.T) {
	testScope(t).Call(func(
		newExpresser NewExpresser,
	) {
		expresser := newExpresser(testInstructions(t))

		var genomes []Genome
		for i := range 50 {
			genomes = append(genomes, Genome{
				Source: strings.Repeat("008", i) + "016",
			})
		}
		phenotypes := expresser.Express(t.Context(), genomes)
		if len(phenotypes) != len(genomes) {
			t.Fatalf("got %d", len(phenotypes))
		}
		seen := make(map[string]bool)
		for i, p := range phenotypes {
			if p.Err != nil {
				t.Fatal(p.Err)
			}
			if !slices.Equal(p.Result.State.Output, []float64{float64(i)}) {
				t.Fatalf("%d: got %v", i, p.Result.State.Output)
			}
			seen[p.RunID.String()] = true
		}
		if len(seen) != len(genomes) {
			t.Fatalf("run ids not unique: %d", len(seen))
		}
	})
}

func TestExpressErrorsArePerGenome(t *testing.T) {
	testScope(t).Call(func(
		newExpresser NewExpresser,
	) {
		phenotypes := newExpresser(testInstructions(t)).Express(t.Context(), []Genome{
			{Source: "008016"},
			{Source: "00x"},
			{Source: "0080"},
			{Source: "008008016"},
		})
		if phenotypes[0].Err != nil || phenotypes[3].Err != nil {
			t.Fatalf("got %v %v", phenotypes[0].Err, phenotypes[3].Err)
		}
		if !errors.Is(phenotypes[1].Err, ragavm.ErrBadCodon) {
			t.Fatalf("got %v", phenotypes[1].Err)
		}
		if !errors.Is(phenotypes[2].Err, ragavm.ErrCodonWidth) {
			t.Fatalf("got %v", phenotypes[2].Err)
		}
		if !slices.Equal(phenotypes[3].Result.State.Output, []float64{2}) {
			t.Fatalf("got %v", phenotypes[3].Result.State.Output)
		}
	})
}

func TestExpressRegisterContexts(t *testing.T) {
	testScope(t).Call(func(
		newExpresser NewExpresser,
	) {
		shared := ragavm.NewRegisters()
		genomes := make([]Genome, 8)
		for i := range genomes {
			genomes[i].Source = fmt.Sprintf("008%03d", 200+i+1)
		}
		genomes[0].Registers = shared
		phenotypes := newExpresser(testInstructions(t)).Express(t.Context(), genomes)
		for i, p := range phenotypes {
			if p.Err != nil {
				t.Fatal(p.Err)
			}
			regs := p.Result.State.Registers
			if regs.Load(i+1) != 1 {
				t.Fatalf("%d: got %v", i, regs.Load(i+1))
			}
			if i > 0 && regs.Load(1) != 0 {
				t.Fatalf("%d: register context leaked", i)
			}
		}
		if shared.Load(1) != 1 {
			t.Fatalf("got %v", shared.Load(1))
		}
	})
}

func TestExpressCanceled(t *testing.T) {
	testScope(t).Call(func(
		newExpresser NewExpresser,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		phenotypes := newExpresser(testInstructions(t)).Express(ctx, []Genome{
			{Source: "008"},
			{Source: "008"},
		})
		for _, p := range phenotypes {
			if p.Err != nil && !errors.Is(p.Err, context.Canceled) {
				t.Fatalf("got %v", p.Err)
			}
		}
	})
}

func TestExpressLogsPerGenomeInDevelopment(t *testing.T) {
	logs.SetLevel(slog.LevelDebug)
	defer logs.SetLevel(slog.LevelInfo)

	for _, c := range []struct {
		mode any
		want bool
	}{
		{modes.ForTest(t), true},
		{modes.ForProduction(), false},
	} {
		buf := new(bytes.Buffer)
		dscope.New(
			new(Module),
		).Fork(
			c.mode,
			func() configs.Loader {
				return configs.NewLoader(nil, ragaconfigs.Schema())
			},
			func() ragaconfigs.MaxSteps {
				return 1000
			},
		).Fork(
			func() logs.Writer {
				return buf
			},
		).Call(func(
			newExpresser NewExpresser,
			mode modes.Mode,
		) {
			phenotypes := newExpresser(testInstructions(t)).Express(t.Context(), []Genome{
				{Source: "008016"},
			})
			if phenotypes[0].Err != nil {
				t.Fatal(phenotypes[0].Err)
			}
			if got := strings.Contains(buf.String(), "genome expressed"); got != c.want {
				t.Fatalf("%v: got %v\n%s", mode, got, buf.String())
			}
		})
	}
}
