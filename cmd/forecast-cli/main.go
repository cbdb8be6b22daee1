package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/radieske/match-forecast-poc/internal/shared/config"
	"github.com/radieske/match-forecast-poc/internal/simulation"
)

// forecast-cli roda a simulação de uma partida de forma interativa,
// direto contra o engine, sem depender de Postgres/Redis/Kafka.
// SIM_SEED define uma semente fixa para execuções reprodutíveis.

const line = "============================================================"

func main() {
	cfg := config.Load()
	in := bufio.NewReader(os.Stdin)

	fmt.Println("\n" + line)
	fmt.Println("  MATCH FORECAST - Monte Carlo / Poisson")
	fmt.Println(line)

	fmt.Println("\n--- HOME TEAM ---")
	homeName := promptString(in, "Home team name", "Home")
	homeStats := promptStats(in, homeName, simulation.TeamStats{Possession: 55, AvgShots: 12, Efficiency: 15})

	fmt.Println("\n--- AWAY TEAM ---")
	awayName := promptString(in, "Away team name", "Away")
	awayStats := promptStats(in, awayName, simulation.TeamStats{Possession: 45, AvgShots: 10, Efficiency: 12})

	fmt.Println("\n--- SIMULATION ---")
	trials := promptInt(in, "Monte Carlo trials", cfg.DefaultTrials)

	lambdaHome, err := simulation.ComputeExpectedGoals(homeStats)
	if err != nil {
		fatal(err)
	}
	lambdaAway, err := simulation.ComputeExpectedGoals(awayStats)
	if err != nil {
		fatal(err)
	}

	engine := simulation.New(seededRng())
	batch, err := engine.RunMonteCarlo(context.Background(), lambdaHome, lambdaAway, trials)
	if err != nil {
		fatal(err)
	}
	analysis, err := simulation.AnalyzeTopK(batch, cfg.TopScores)
	if err != nil {
		fatal(err)
	}

	printReport(homeName, awayName, lambdaHome, lambdaAway, analysis)
}

// seededRng devolve uma fonte determinística quando SIM_SEED está definido
func seededRng() *rand.Rand {
	if v, ok := os.LookupEnv("SIM_SEED"); ok {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return rand.New(rand.NewSource(seed))
		}
	}
	return nil
}

func promptString(in *bufio.Reader, label, def string) string {
	fmt.Printf("%s [%s]: ", label, def)
	text, _ := in.ReadString('\n')
	text = strings.TrimSpace(text)
	if text == "" {
		return def
	}
	return text
}

func promptFloat(in *bufio.Reader, label string, def float64) float64 {
	fmt.Printf("  %s [%g]: ", label, def)
	text, _ := in.ReadString('\n')
	text = strings.TrimSpace(text)
	if text == "" {
		return def
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fmt.Printf("  invalid number, using %g\n", def)
		return def
	}
	return v
}

func promptInt(in *bufio.Reader, label string, def int) int {
	fmt.Printf("%s [%d]: ", label, def)
	text, _ := in.ReadString('\n')
	text = strings.TrimSpace(text)
	if text == "" {
		return def
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		fmt.Printf("invalid number, using %d\n", def)
		return def
	}
	return v
}

func promptStats(in *bufio.Reader, name string, def simulation.TeamStats) simulation.TeamStats {
	fmt.Printf("\n%s stats:\n", name)
	return simulation.TeamStats{
		Possession: promptFloat(in, "Average possession (%)", def.Possession),
		AvgShots:   promptFloat(in, "Shots on target per match", def.AvgShots),
		Efficiency: promptFloat(in, "Scoring efficiency (%)", def.Efficiency),
	}
}

func printReport(homeName, awayName string, lambdaHome, lambdaAway float64, a *simulation.Analysis) {
	fmt.Println("\n" + line)
	fmt.Printf("MATCH: %s vs %s\n", homeName, awayName)
	fmt.Println(line)

	fmt.Println("\nEXPECTED GOALS (Poisson lambda):")
	fmt.Printf("   %s: %.2f goals\n", homeName, lambdaHome)
	fmt.Printf("   %s: %.2f goals\n", awayName, lambdaAway)

	fmt.Println("\n" + line)
	fmt.Println("SIMULATION RESULTS")
	fmt.Println(line)
	fmt.Printf("Total trials: %d\n\n", a.TotalTrials)

	fmt.Println("OUTCOME PROBABILITIES:")
	fmt.Printf("   %-20s win: %6.2f%% (%d times)\n", homeName, a.HomeWinPct, a.HomeWins)
	fmt.Printf("   %-20s    : %6.2f%% (%d times)\n", "Draw", a.DrawPct, a.Draws)
	fmt.Printf("   %-20s win: %6.2f%% (%d times)\n", awayName, a.AwayWinPct, a.AwayWins)

	fmt.Println("\nMOST LIKELY SCORELINES:")
	for i, sc := range a.TopScores {
		fmt.Printf("   %d. %d-%d -> %5.2f%% (%d times)\n", i+1, sc.HomeGoals, sc.AwayGoals, sc.Pct, sc.Count)
	}

	fmt.Println("\n" + line)
	fmt.Println("FINAL FORECAST")
	fmt.Println(line)

	var label string
	switch a.Forecast {
	case simulation.HomeWin:
		label = homeName + " win"
	case simulation.AwayWin:
		label = awayName + " win"
	default:
		label = "Draw"
	}
	fmt.Printf("Most likely outcome: %s\n", label)
	fmt.Printf("Most likely score: %d-%d\n", a.MostLikelyScore.HomeGoals, a.MostLikelyScore.AwayGoals)
	fmt.Println(line)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
