package main

import (
	"flag"
	"io"

	"github.com/etnz/partnership"
	"github.com/etnz/partnership/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion returns the shell completion of pbook, derived from the flags of
// every subcommand.
func completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"data-dir":  predict.Dirs("*"),
			"currency":  predict.Set{"USD", "EUR", "GBP", "CAD", "AUD"},
			"partner-a": predict.Something,
			"partner-b": predict.Something,
			"v":         nil,
		},
	}
	for _, c := range cmd.Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		c.SetFlags(fs)

		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictor(f)
		})
		root.Sub[c.Name()] = sub
	}
	return root
}

// predictor returns the completion of a flag value.
func predictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return nil
	}
	switch f.Name {
	case "o", "i":
		return predict.Files("*")
	case "source":
		return predict.Set{string(partnership.WarehouseShipped), string(partnership.DirectShipped)}
	default:
		return predict.Something
	}
}
