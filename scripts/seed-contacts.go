package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/contactd/contactd/internal/config"
	"github.com/contactd/contactd/internal/repository"
	"github.com/contactd/contactd/internal/service"
)

type output struct {
	Inserted []int64  `json:"inserted"`
	Rejected []string `json:"rejected,omitempty"`
	Total    int64    `json:"total"`
}

var sampleNames = []string{"Ada Lovelace", "Grace Hopper", "Alan Turing", "Edsger Dijkstra", "Barbara Liskov"}

func main() {
	var (
		databaseURL = flag.String("database-url", "", "PostgreSQL connection string (defaults to config)")
		count       = flag.Int("count", 5, "Number of sample contacts to insert")
		file        = flag.String("file", "", "JSON file with an array of {name,email,phone,message} to insert instead of samples")
		format      = flag.String("format", "plain", "Output format: plain or json")
		reset       = flag.Bool("reset", false, "Drop the contacts table before seeding")
	)
	flag.Parse()

	dsn := *databaseURL
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(1)
		}
		dsn = cfg.DSN()
	}

	outFormat, err := parseFormat(*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	submissions, err := loadSubmissions(*file, *count)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, repository.PoolConfig{DatabaseURL: dsn, MinConns: 1, MaxConns: 4})
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	if *reset {
		if err := repo.DropSchema(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "drop schema:", err)
			os.Exit(1)
		}
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ensure schema:", err)
		os.Exit(1)
	}

	// Seeded rows go through the same validation as API submissions.
	svc := service.NewContactService(repo, nil, nil)

	out := output{Inserted: make([]int64, 0, len(submissions))}
	for i, sub := range submissions {
		contact, err := svc.Create(ctx, sub)
		if service.IsValidationError(err) {
			out.Rejected = append(out.Rejected, fmt.Sprintf("#%d: %v", i, err))
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		out.Inserted = append(out.Inserted, contact.ID)
	}

	out.Total, err = repo.CountContacts(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "count contacts:", err)
		os.Exit(1)
	}

	switch outFormat {
	case "plain":
		fmt.Printf("inserted %d contacts (%d rejected), %d total\n", len(out.Inserted), len(out.Rejected), out.Total)
		for _, r := range out.Rejected {
			fmt.Println("rejected", r)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	}
}

// parseFormat runs before any database work so a bad flag writes nothing.
func parseFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "plain", "json":
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q; use plain or json", format)
	}
}

func loadSubmissions(path string, count int) ([]service.ContactSubmission, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var subs []service.ContactSubmission
		if err := json.Unmarshal(data, &subs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return subs, nil
	}

	if count < 0 {
		return nil, fmt.Errorf("count must not be negative")
	}
	subs := make([]service.ContactSubmission, count)
	for i := range subs {
		name := sampleNames[i%len(sampleNames)]
		subs[i] = service.ContactSubmission{
			Name:    name,
			Email:   strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
			Message: fmt.Sprintf("Sample message %d", i+1),
		}
	}
	return subs, nil
}
