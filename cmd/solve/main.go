// Command solve runs CFR iterations over the coin-toss game and reports the
// time-averaged strategies and final regrets for both players.
package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"

	"github.com/golang/glog"

	"github.com/fortuna-games/regretmin"
	"github.com/fortuna-games/regretmin/games/cointoss"
)

func main() {
	iters := flag.Int("iters", 100000, "Number of CFR iterations to run")
	seed := flag.Int64("seed", 123, "Random seed for chance outcomes")
	alternate := flag.Bool("alternate", false, "Alternate chance outcomes deterministically instead of sampling")
	debugAddr := flag.String("debug_addr", "", "Address to serve expvar/pprof debug info on")
	flag.Parse()

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	p1, err := regretmin.NewPolicyTable(cointoss.InfoSets(regretmin.Player1), cointoss.Actions(regretmin.Player1))
	if err != nil {
		glog.Fatal(err)
	}
	p2, err := regretmin.NewPolicyTable(cointoss.InfoSets(regretmin.Player2), cointoss.Actions(regretmin.Player2))
	if err != nil {
		glog.Fatal(err)
	}
	walker := regretmin.NewWalker(p1, p2)

	rng := rand.New(rand.NewSource(*seed))
	outcomes := []regretmin.Move{cointoss.Heads, cointoss.Tails}
	for i := 0; i < *iters; i++ {
		outcome := outcomes[rng.Intn(len(outcomes))]
		if *alternate {
			outcome = outcomes[i%len(outcomes)]
		}

		root := regretmin.NewRoot(cointoss.New())
		if err := walker.Walk(root, []regretmin.Move{outcome}); err != nil {
			glog.Fatal(err)
		}

		if (i+1)%10000 == 0 {
			glog.Infof("Completed %d iterations", i+1)
		}
	}

	for _, p := range []regretmin.Player{regretmin.Player1, regretmin.Player2} {
		table := walker.Table(p)
		for _, info := range cointoss.InfoSets(p) {
			avg, err := table.AverageStrategy(info)
			if err != nil {
				glog.Fatal(err)
			}
			regret, err := table.Regret(info)
			if err != nil {
				glog.Fatal(err)
			}
			glog.Infof("%v at %q: average strategy %v, regret %v", p, info, avg, regret)
		}
	}
}
