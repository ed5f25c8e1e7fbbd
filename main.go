package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
)

func main() {
	commands := map[string]command{
		"reduce": reduceCmd(),
		"report": reportCmd(),
		"plot":   plotCmd(),
		"stream": streamCmd(),
	}

	flag.Usage = func() {
		fmt.Println("Usage: extjfx [globals] <command> [options]")
		for name, cmd := range commands {
			fmt.Printf("\n%s command:\n", name)
			cmd.fs.PrintDefaults()
		}
		fmt.Printf("\nglobal flags:\n  -cpus=%d Number of CPUs to use\n", runtime.NumCPU())
		fmt.Print(examples + "\n")
	}

	cpus := flag.Int("cpus", runtime.NumCPU(), "Number of CPUs to use")
	flag.Parse()

	runtime.GOMAXPROCS(*cpus)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if cmd, ok := commands[args[0]]; !ok {
		log.Fatalf("Unknown command: %s", args[0])
	} else if err := cmd.fn(args[1:]); err != nil {
		log.Fatal(err)
	}
}

const examples = `
examples:
  cat samples.json | extjfx reduce -max-points=500 > reduced.json
  extjfx reduce -reducer=minmax -range=0:60 samples.csv > reduced.json
  extjfx report -type=json samples.json > stats.json
  extjfx plot -title="CPU load" samples.csv > plot.html
  tail -f samples.json | extjfx stream -capacity=10000 -prom=http://0.0.0.0:8880
`

type command struct {
	fs *flag.FlagSet
	fn func(args []string) error
}
