// Command genmock writes a small synthetic names.zip fixture with the same
// shape as the real SSA archive: one yobYYYY.txt entry per year plus the
// readme stub. Contents are deterministic so runs against the fixture are
// reproducible.
//
// Usage:
//
//	go run ./cmd/genmock -out names.zip -start 2000 -years 10
//
// Point the fetch command at the fixture with ARCHIVE_CACHE=names.zip to run
// the whole pipeline offline.
package main

import (
	"archive/zip"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

var femaleNames = []string{"Mary", "Emma", "Olivia", "Sophia", "Ava", "Jordan", "Taylor"}
var maleNames = []string{"John", "Liam", "Noah", "James", "Oliver", "Jordan", "Taylor"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "names.zip", "output path for the synthetic archive")
	start := flag.Int("start", 2000, "first year to generate")
	years := flag.Int("years", 10, "number of consecutive years")
	flag.Parse()

	if *years <= 0 {
		return fmt.Errorf("-years must be positive, got %d", *years)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	total := 0
	for offset := 0; offset < *years; offset++ {
		year := *start + offset
		entry, err := w.Create(fmt.Sprintf("yob%d.txt", year))
		if err != nil {
			return err
		}
		lines := yearLines(offset)
		if _, err := entry.Write([]byte(strings.Join(lines, "\n") + "\n")); err != nil {
			return err
		}
		total += len(lines)
	}

	// The real archive ships a readme the normalizer must skip.
	readme, err := w.Create("NationalReadMe.pdf")
	if err != nil {
		return err
	}
	if _, err := readme.Write([]byte("synthetic fixture, no name data\n")); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	log.Printf("%s: %d years, %d records", *out, *years, total)
	return nil
}

// yearLines builds one year's lines: females first, each gender sorted by
// descending count, matching SSA file conventions. Counts vary per name and
// year through fixed arithmetic, no randomness.
func yearLines(yearOffset int) []string {
	lines := genderLines(femaleNames, "F", yearOffset)
	lines = append(lines, genderLines(maleNames, "M", yearOffset)...)
	return lines
}

func genderLines(names []string, gender string, yearOffset int) []string {
	type nameCount struct {
		name  string
		count int
	}

	counts := make([]nameCount, len(names))
	for i, name := range names {
		counts[i] = nameCount{name: name, count: 500 + (i*137+yearOffset*61)%900}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})

	lines := make([]string, len(counts))
	for i, nc := range counts {
		lines[i] = fmt.Sprintf("%s,%s,%d", nc.name, gender, nc.count)
	}
	return lines
}
