package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dom/superheroes-api/internal/domain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:3000"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list":
		listCmd(apiURL, args)
	case "compare":
		compareCmd(apiURL, args)
	case "tournament":
		tournamentCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Superheroes Simulator - Development tool for exercising a running API

USAGE:
  simulator <command> [options]

COMMANDS:
  list        Print every hero with its powerstats
  compare     Compare two heroes and print the category breakdown
  tournament  Compare every pair of heroes and print the standings
  help        Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:3000)

EXAMPLES:
  # Who wins between A-Bomb and Abin Sur?
  simulator compare --id1=1 --id2=3

  # Round-robin over the first 20 heroes
  simulator tournament --limit=20`)
}

func listCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Parse(args)

	heroes, err := NewAPIClient(apiURL).ListHeroes()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, h := range heroes {
		values := make([]string, 0, domain.NumCategories)
		for _, c := range domain.Categories() {
			values = append(values, fmt.Sprintf("%s=%v", c, h.Powerstats.Get(c).Float()))
		}
		fmt.Printf("%6s  %-28s %s\n", h.ID, h.Name, strings.Join(values, " "))
	}
	fmt.Printf("\n%d heroes\n", len(heroes))
}

func compareCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	id1 := fs.String("id1", "", "First hero id")
	id2 := fs.String("id2", "", "Second hero id")
	fs.Parse(args)

	client := NewAPIClient(apiURL)
	result, err := client.Compare(domain.HeroID(*id1), domain.HeroID(*id2))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	names := map[domain.HeroID]string{}
	for _, id := range []domain.HeroID{result.HeroA, result.HeroB} {
		if hero, err := client.GetHero(id); err == nil {
			names[id] = hero.Name
		} else {
			names[id] = id.String()
		}
	}

	fmt.Printf("=== %s vs %s ===\n\n", names[result.HeroA], names[result.HeroB])
	for _, c := range result.Categories {
		fmt.Printf("  %-13s %6v vs %-6v -> %s\n", c.Name, float64(c.ValueA), float64(c.ValueB), winnerName(c.Winner, names))
	}
	winsA, winsB := result.Wins()
	fmt.Printf("\nOverall: %s (%d-%d)\n", winnerName(result.OverallWinner, names), winsA, winsB)
}

func tournamentCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("tournament", flag.ExitOnError)
	limit := fs.Int("limit", 10, "Number of heroes to include, from the start of the catalog")
	fs.Parse(args)

	if *limit < 2 {
		fmt.Println("Error: --limit must be at least 2")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)
	heroes, err := client.ListHeroes()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if len(heroes) > *limit {
		heroes = heroes[:*limit]
	}

	type standing struct {
		hero               *domain.Hero
		wins, losses, ties int
	}
	table := make(map[domain.HeroID]*standing, len(heroes))
	for _, h := range heroes {
		table[h.ID] = &standing{hero: h}
	}

	fmt.Printf("Running %d matches across %d heroes...\n\n", len(heroes)*(len(heroes)-1)/2, len(heroes))
	for i := 0; i < len(heroes); i++ {
		for j := i + 1; j < len(heroes); j++ {
			a, b := heroes[i].ID, heroes[j].ID
			result, err := client.Compare(a, b)
			if err != nil {
				fmt.Printf("  %s vs %s: FAILED (%v)\n", a, b, err)
				continue
			}
			switch {
			case result.OverallWinner.IsTie():
				table[a].ties++
				table[b].ties++
			case result.OverallWinner.HeroID() == a:
				table[a].wins++
				table[b].losses++
			default:
				table[b].wins++
				table[a].losses++
			}
		}
	}

	standings := make([]*standing, 0, len(table))
	for _, s := range table {
		standings = append(standings, s)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].wins != standings[j].wins {
			return standings[i].wins > standings[j].wins
		}
		return standings[i].losses < standings[j].losses
	})

	fmt.Printf("%-4s %-28s %4s %4s %4s\n", "#", "Hero", "W", "L", "T")
	for i, s := range standings {
		fmt.Printf("%-4d %-28s %4d %4d %4d\n", i+1, s.hero.Name, s.wins, s.losses, s.ties)
	}
}

func winnerName(w domain.Winner, names map[domain.HeroID]string) string {
	if w.IsTie() {
		return "tie"
	}
	if name, ok := names[w.HeroID()]; ok {
		return name
	}
	return w.HeroID().String()
}
