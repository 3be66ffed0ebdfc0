// Command tanksim is the simulator driver's CLI entry point: it parses
// arguments, loads arbiter and algorithm plugins, and dispatches to
// comparative or competition mode. It holds no simulation logic of its
// own.
package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tanksim/internal/config"
	"tanksim/internal/driver"
	"tanksim/internal/driver/history"
	"tanksim/internal/driver/scenario"
	"tanksim/internal/driver/spectate"
	"tanksim/internal/mapfile"
	"tanksim/internal/output"
	"tanksim/internal/plugin"
	"tanksim/internal/utils"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	os.Exit(run(os.Args[1:]))
}

// run implements the full CLI surface and returns the process exit code
// (0 success, 1 usage or I/O error).
func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	flags, verbose, pprofAddr, scenarioPath, historyDSN, spectateAddr := splitFlags(args[1:])

	if pprofAddr != "" {
		go http.ListenAndServe(pprofAddr, nil)
	}

	settings, cerr := config.Load("settings.ini")
	utils.Check(cerr)

	runID := uuid.New().String()

	var hub *spectate.Hub
	if spectateAddr != "" {
		hub = spectate.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/spectate", hub)
		go http.ListenAndServe(spectateAddr, mux)
	}

	recorder, herr := history.Open(historyDSN)
	if herr != nil {
		fmt.Fprintln(os.Stderr, "tanksim:", herr)
		return 1
	}
	defer recorder.Close()

	switch args[0] {
	case "-comparative":
		return runComparative(flags, verbose, scenarioPath, settings, runID, hub, recorder)
	case "-competition":
		return runCompetition(flags, verbose, settings, runID, hub)
	default:
		usage()
		return 1
	}
}

func runComparative(flags map[string]string, verbose bool, scenarioPath string, settings config.Settings,
	runID string, hub *spectate.Hub, recorder *history.Recorder) int {

	if scenarioPath != "" {
		sc, serr := scenario.Load(scenarioPath)
		if serr != nil {
			fmt.Fprintln(os.Stderr, "tanksim:", serr)
			return 1
		}
		mergeScenario(flags, sc)
	}

	gameMap, ok1 := flags["game_map"]
	arbitersFolder, ok2 := flags["game_managers_folder"]
	algo1Path, ok3 := flags["algorithm1"]
	algo2Path, ok4 := flags["algorithm2"]
	if !ok1 || !ok2 || !ok3 || !ok4 {
		usage()
		return 1
	}
	numThreads := intFlag(flags, "num_threads", settings.NumThreads)

	m, merr := mapfile.Load(gameMap)
	if merr != nil {
		fmt.Fprintln(os.Stderr, "tanksim:", merr)
		return 1
	}

	loader := plugin.NewLoader()
	algo1, aerr := loader.LoadAlgorithm(algo1Path)
	if aerr != nil {
		fmt.Fprintln(os.Stderr, "tanksim:", aerr)
		return 1
	}
	algo2, aerr := loader.LoadAlgorithm(algo2Path)
	if aerr != nil {
		fmt.Fprintln(os.Stderr, "tanksim:", aerr)
		return 1
	}

	arbiterPaths, derr := listDir(arbitersFolder)
	if derr != nil || len(arbiterPaths) == 0 {
		fmt.Fprintln(os.Stderr, "tanksim: empty or unreadable game_managers_folder")
		return 1
	}
	var arbiters []*plugin.ArbiterEntry
	for _, p := range arbiterPaths {
		arb, err := loader.LoadArbiter(p)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tanksim:", err)
			return 1
		}
		arbiters = append(arbiters, arb)
	}

	groups := driver.RunComparative(driver.ComparativeInput{
		Map: m, Arbiters: arbiters, Algo1: algo1, Algo2: algo2,
		NumThreads: numThreads, Verbose: verbose,
	})

	for _, g := range groups {
		if hub != nil {
			hub.Broadcast(fmt.Sprintf("run=%s group=%s", runID, strings.Join(g.ArbiterNames, ",")), g.FinalGrid)
		}
		recorder.Record(runID, m.Description, algo1.Name, algo2.Name, g.Reason, g.Winner, g.Rounds)
	}

	path := fmt.Sprintf("comparative_results_%d.txt", time.Now().Unix())
	output.WriteComparative(path, gameMap, algo1.Name, algo2.Name, groups)
	return 0
}

func runCompetition(flags map[string]string, verbose bool, settings config.Settings,
	runID string, hub *spectate.Hub) int {

	mapsFolder, ok1 := flags["game_maps_folder"]
	arbiterPath, ok2 := flags["game_manager"]
	algosFolder, ok3 := flags["algorithms_folder"]
	if !ok1 || !ok2 || !ok3 {
		usage()
		return 1
	}
	numThreads := intFlag(flags, "num_threads", settings.NumThreads)

	mapPaths, derr := listDir(mapsFolder)
	if derr != nil || len(mapPaths) == 0 {
		fmt.Fprintln(os.Stderr, "tanksim: empty or unreadable game_maps_folder")
		return 1
	}
	var maps []*mapfile.Map
	for _, p := range mapPaths {
		m, merr := mapfile.Load(p)
		if merr != nil {
			log.Println("tanksim: skipping map", p, ":", merr)
			continue
		}
		maps = append(maps, m)
	}
	if len(maps) == 0 {
		fmt.Fprintln(os.Stderr, "tanksim: no valid maps in game_maps_folder")
		return 1
	}

	loader := plugin.NewLoader()
	arbiter, aerr := loader.LoadArbiter(arbiterPath)
	if aerr != nil {
		fmt.Fprintln(os.Stderr, "tanksim:", aerr)
		return 1
	}

	algoPaths, derr := listDir(algosFolder)
	if derr != nil || len(algoPaths) < 2 {
		fmt.Fprintln(os.Stderr, "tanksim: competition mode needs at least two algorithms")
		return 1
	}
	var algos []*plugin.AlgorithmEntry
	for _, p := range algoPaths {
		a, err := loader.LoadAlgorithm(p)
		if err != nil {
			log.Println("tanksim: excluding algorithm", p, ":", err)
			continue
		}
		algos = append(algos, a)
	}
	if len(algos) < 2 {
		fmt.Fprintln(os.Stderr, "tanksim: fewer than two algorithms loaded successfully")
		return 1
	}

	standings := driver.RunCompetition(driver.CompetitionInput{
		Arbiter: arbiter, Maps: maps, Algorithms: algos,
		NumThreads: numThreads, Verbose: verbose,
	})

	if hub != nil {
		lines := make([]string, len(standings))
		for i, s := range standings {
			lines[i] = fmt.Sprintf("%s %d", s.Name, s.Score)
		}
		hub.Broadcast(fmt.Sprintf("run=%s competition complete", runID), lines)
	}

	path := fmt.Sprintf("competition_%d.txt", time.Now().Unix())
	output.WriteCompetition(path, mapsFolder, arbiterPath, standings)
	return 0
}

func mergeScenario(flags map[string]string, sc *scenario.Comparative) {
	setIfMissing(flags, "game_map", sc.Map)
	setIfMissing(flags, "game_managers_folder", sc.GameManagersFolder)
	setIfMissing(flags, "algorithm1", sc.Algorithm1)
	setIfMissing(flags, "algorithm2", sc.Algorithm2)
	if sc.NumThreads > 0 {
		setIfMissing(flags, "num_threads", strconv.Itoa(sc.NumThreads))
	}
}

func setIfMissing(flags map[string]string, key, value string) {
	if value == "" {
		return
	}
	if _, ok := flags[key]; !ok {
		flags[key] = value
	}
}

// splitFlags separates the key=value positional arguments from the
// recognised bare switches.
func splitFlags(args []string) (flags map[string]string, verbose bool, pprofAddr, scenarioPath, historyDSN, spectateAddr string) {
	flags = make(map[string]string)
	for _, a := range args {
		switch {
		case a == "-verbose":
			verbose = true
		case strings.HasPrefix(a, "-pprof_addr="):
			pprofAddr = strings.TrimPrefix(a, "-pprof_addr=")
		case strings.HasPrefix(a, "-scenario="):
			scenarioPath = strings.TrimPrefix(a, "-scenario=")
		case strings.HasPrefix(a, "-history_dsn="):
			historyDSN = strings.TrimPrefix(a, "-history_dsn=")
		case strings.HasPrefix(a, "-spectate_addr="):
			spectateAddr = strings.TrimPrefix(a, "-spectate_addr=")
		default:
			if idx := strings.IndexByte(a, '='); idx > 0 {
				flags[a[:idx]] = a[idx+1:]
			}
		}
	}
	return
}

func intFlag(flags map[string]string, key string, def int) int {
	v, ok := flags[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// listDir returns every regular file directly inside dir, sorted by name,
// so that which artefact is found first is deterministic across runs.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  tanksim -comparative game_map=<path> game_managers_folder=<dir> "+
		"algorithm1=<path> algorithm2=<path> [num_threads=<n>] [-verbose]")
	fmt.Fprintln(os.Stderr, "  tanksim -competition game_maps_folder=<dir> game_manager=<path> "+
		"algorithms_folder=<dir> [num_threads=<n>] [-verbose]")
}
