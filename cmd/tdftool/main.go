/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/pokemon-tdftool/internal"
	"github.com/mikeb26/pokemon-tdftool/tdf"
	"github.com/mikeb26/pokemon-tdftool/tomweb"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":      handleHelp,
	"info":      handleInfo,
	"check":     handleCheck,
	"roster":    handleRoster,
	"standings": handleStandings,
	"reconcile": handleReconcile,
	"generate":  handleGenerate,
	"merge":     handleMerge,
	"validate":  handleValidate,
	"fetch":     handleFetch,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// parseFile loads and parses a TDF document from disk.
func parseFile(path string) *tdf.Tournament {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Error reading %v: %v", path, err)
	}
	tourney, err := tdf.Parse(string(data))
	if err != nil {
		log.Fatalf("Error parsing %v: %v", path, err)
	}
	return tourney
}

func handleInfo(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	file := fs.String("file", "", "TDF document to inspect")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *file == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --file path.")
		fs.Usage()
		os.Exit(1)
	}

	tourney := parseFile(*file)
	fmt.Print(tdf.BuildInfoOutput(tourney, ""))
}

func handleCheck(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Please provide one or more TDF files to check.")
		os.Exit(1)
	}

	// documents are independent, so check them concurrently
	results := make([]tdf.CompatibilityResult, len(files))
	var eg errgroup.Group
	for idx, path := range files {
		eg.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %v: %w", path, err)
			}
			results[idx] = tdf.IsCompatible(string(data))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalf("Error checking files: %v", err)
	}

	exitCode := 0
	for idx, path := range files {
		if results[idx].Compatible {
			fmt.Printf("%v: compatible\n", path)
		} else {
			fmt.Printf("%v: INCOMPATIBLE (%v)\n", path, results[idx].Reason)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func handleRoster(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("roster", flag.ExitOnError)
	file := fs.String("file", "", "TDF document to read")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *file == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --file path.")
		fs.Usage()
		os.Exit(1)
	}

	tourney := parseFile(*file)
	fmt.Print(tdf.BuildRosterOutput(tourney))
}

func handleStandings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	file := fs.String("file", "", "TDF document to read")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *file == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --file path.")
		fs.Usage()
		os.Exit(1)
	}

	tourney := parseFile(*file)
	fmt.Print(tdf.BuildStandingsOutput(tourney))
}

func handleReconcile(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("reconcile", flag.ExitOnError)
	file := fs.String("file", "", "TDF document to read")
	accountsFile := fs.String("accounts", "",
		"JSON file mapping external user ids to accounts")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *file == "" || *accountsFile == "" {
		fmt.Fprintln(os.Stderr,
			"Please provide valid --file and --accounts paths.")
		fs.Usage()
		os.Exit(1)
	}

	tourney := parseFile(*file)

	data, err := os.ReadFile(*accountsFile)
	if err != nil {
		log.Fatalf("Error reading %v: %v", *accountsFile, err)
	}
	var accounts map[tdf.UserID]tdf.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		log.Fatalf("Error parsing %v: %v", *accountsFile, err)
	}

	report := tdf.ReconcilePlayers(tourney.Players, accounts)
	fmt.Printf("%v of %v players imported\n", report.ImportedCount,
		report.Total)
	for _, skip := range report.Skipped {
		name := strings.TrimSpace(skip.Record.FirstName + " " +
			skip.Record.LastName)
		fmt.Printf("  skipped %v (userid:%v): %v\n", name,
			skip.Record.UserID, skip.Reason)
	}
}

// loadParticipants reads a registration roster from a JSON file.
func loadParticipants(path string) []tdf.Participant {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Error reading %v: %v", path, err)
	}
	var participants []tdf.Participant
	if err := json.Unmarshal(data, &participants); err != nil {
		log.Fatalf("Error parsing %v: %v", path, err)
	}
	return participants
}

func writeDoc(doc *tdf.GeneratedDocument, out string) {
	if out == "" {
		out = tdf.Filename(doc.Metadata)
	}
	if err := os.WriteFile(out, []byte(doc.XMLContent), 0644); err != nil {
		log.Fatalf("Error writing %v: %v", out, err)
	}
	fmt.Printf("Wrote %v (%v players)\n", out, doc.PlayerCount)
}

func handleGenerate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	name := fs.String("name", "", "Tournament name")
	id := fs.String("id", "", "External tournament id (YY-MM-XXXXXX); generated when omitted")
	city := fs.String("city", "", "City")
	state := fs.String("state", "", "State")
	country := fs.String("country", "", "Country")
	startDate := fs.String("startdate", "", "Start date (any common format)")
	organizer := fs.String("organizer", "", "Organizer name")
	popid := fs.String("popid", "", "Organizer popid")
	format := fs.String("format", "tcg-standard",
		"Tournament format (tcg-standard, tcg-expanded, vgc-standard, go-standard)")
	roundTime := fs.Int("roundtime", tdf.DefaultRoundTime, "Round time in minutes")
	playersFile := fs.String("players", "", "Participant roster JSON file")
	out := fs.String("out", "", "Output path (derived from the tournament id when omitted)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "Please provide a tournament --name.")
		fs.Usage()
		os.Exit(1)
	}
	if *id != "" && !tdf.ValidTournamentID(*id) {
		log.Fatalf("Invalid tournament id %q; expected YY-MM-XXXXXX", *id)
	}

	ttype, ok := typeFromName(*format)
	if !ok {
		log.Fatalf("Unknown format %q", *format)
	}
	gametype, mode := tdf.MapInternalType(ttype)

	start, err := internal.ParseDateOrZero(*startDate)
	if err != nil {
		log.Fatalf("Error parsing --startdate %q: %v", *startDate, err)
	}

	var participants []tdf.Participant
	if *playersFile != "" {
		participants = loadParticipants(*playersFile)
	}

	doc, err := tdf.GenerateFromScratch(tdf.Metadata{
		ID:             *id,
		Name:           *name,
		City:           *city,
		State:          *state,
		Country:        *country,
		StartDate:      start,
		OrganizerName:  *organizer,
		OrganizerPopID: *popid,
		GameType:       gametype,
		Mode:           mode,
		RoundTime:      *roundTime,
	}, participants)
	if err != nil {
		log.Fatalf("Error generating document: %v", err)
	}

	writeDoc(doc, *out)
}

func handleMerge(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	file := fs.String("file", "", "Original TDF document")
	playersFile := fs.String("players", "", "Participant roster JSON file")
	out := fs.String("out", "", "Output path (overwrites --file when omitted)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *file == "" || *playersFile == "" {
		fmt.Fprintln(os.Stderr,
			"Please provide valid --file and --players paths.")
		fs.Usage()
		os.Exit(1)
	}

	original, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error reading %v: %v", *file, err)
	}

	doc, err := tdf.UpdateWithPlayers(string(original),
		loadParticipants(*playersFile))
	if err != nil {
		log.Fatalf("Error merging players into %v: %v", *file, err)
	}

	if *out == "" {
		*out = *file
	}
	writeDoc(doc, *out)
}

func handleValidate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "TDF document to validate")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *file == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --file path.")
		fs.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error reading %v: %v", *file, err)
	}

	result := tdf.ValidateGenerated(string(data))
	if result.IsValid {
		fmt.Printf("%v: valid\n", *file)
		return
	}
	fmt.Printf("%v: INVALID\n", *file)
	for _, e := range result.Errors {
		fmt.Printf("  - %v\n", e)
	}
	os.Exit(1)
}

func handleFetch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	url := fs.String("url", "", "URL of a TDF document or an HTML page listing them")
	out := fs.String("out", "", "Output path (derived from the tournament id when omitted)")
	nocache := fs.Bool("nocache", false, "Bypass the shared web cache")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *url == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --url.")
		fs.Usage()
		os.Exit(1)
	}

	var client *tomweb.Client
	if *nocache {
		client = tomweb.NewUncachedClient()
	} else {
		client = tomweb.NewClient(ctx)
	}

	// an HTML index page gets its .tdf links listed instead
	if !strings.HasSuffix(strings.ToLower(*url), ".tdf") {
		links, err := client.ListDocumentLinks(ctx, *url)
		if err != nil {
			log.Fatalf("Error listing %v: %v", *url, err)
		}
		if len(links) == 0 {
			fmt.Printf("No TDF links found at %v\n", *url)
			return
		}
		for _, link := range links {
			fmt.Println(link)
		}
		fmt.Printf("\nRun '%s fetch --url <link>' to download one\n", os.Args[0])
		return
	}

	text, err := client.FetchDocument(ctx, *url)
	if err != nil {
		log.Fatalf("Error fetching %v: %v", *url, err)
	}

	tourney, err := tdf.Parse(text)
	if err != nil {
		log.Fatalf("Error parsing fetched document: %v", err)
	}

	path := *out
	if path == "" {
		path = tdf.Filename(tourney.Metadata)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		log.Fatalf("Error writing %v: %v", path, err)
	}
	fmt.Printf("Wrote %v (%v players)\n", path, len(tourney.Players))
}

// typeFromName maps a CLI format name back to the internal enumeration.
func typeFromName(name string) (tdf.TournamentType, bool) {
	for _, t := range tdf.SupportedTypes() {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
