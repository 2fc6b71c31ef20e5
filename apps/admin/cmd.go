package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/trezcool/happyclass/core/portal"
)

var (
	isTerminalFunc = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) } // mockable

	errHelp = errors.New("help provided")

	pages = []string{"home", "gallery", "resources", "notice"}
)

type commandLine struct {
	out  io.Writer
	seed portal.Seed
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  seed [-page home|gallery|resources|notice] - print the seed data of every page, or of one page")
	fmt.Fprintln(cli.out, "  routes - print the navigation bar")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ContinueOnError)
	seedCmd.SetOutput(cli.out)
	seedPage := seedCmd.String("page", "", "Only print this page: "+strings.Join(pages, ", "))

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		return cli.printSeed(*seedPage)
	case "routes":
		return cli.printRoutes()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) printSeed(page string) error {
	selected := pages
	if page != "" {
		if !contains(pages, page) {
			return fmt.Errorf("unknown page %q", page)
		}
		selected = []string{page}
	}

	if !isTerminalFunc() {
		data := make(map[string]interface{}, len(selected))
		for _, p := range selected {
			data[p] = cli.pageSeed(p)
		}
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	for i, p := range selected {
		if i > 0 {
			fmt.Fprintln(w)
		}
		cli.writeSeed(w, p)
	}
	return w.Flush()
}

func (cli *commandLine) pageSeed(page string) interface{} {
	switch page {
	case "home":
		return cli.seed.Home
	case "gallery":
		return cli.seed.Gallery
	case "resources":
		return cli.seed.Resources
	default:
		return cli.seed.Notice
	}
}

func (cli *commandLine) writeSeed(w io.Writer, page string) {
	fmt.Fprintf(w, "== %s ==\n", page)
	switch page {
	case "home":
		n := cli.seed.Home.TopNotice
		fmt.Fprintf(w, "top notice:\t%s: %s (%s)\n", n.Title, n.Content, n.Date)
		fmt.Fprintln(w, "ID\tLIKES\tDATE")
		for _, p := range cli.seed.Home.Photos {
			fmt.Fprintf(w, "%s\t%d\t%s\n", p.ID, p.Likes, p.Date)
		}
	case "gallery":
		fmt.Fprintf(w, "categories:\t%s\n", strings.Join(cli.seed.Gallery.Categories, ", "))
		fmt.Fprintln(w, "ID\tCATEGORY\tLIKES\tDATE")
		for _, p := range cli.seed.Gallery.Photos {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.ID, p.Category, p.Likes, p.Date)
		}
	case "resources":
		fmt.Fprintf(w, "subjects:\t%s\n", strings.Join(cli.seed.Resources.Subjects, ", "))
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tSUBJECT\tSIZE\tDATE\tDOWNLOADS")
		for _, f := range cli.seed.Resources.Files {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n", f.ID, f.Name, f.Type, f.Subject, f.Size, f.Date, f.Downloads)
		}
	case "notice":
		fmt.Fprintln(w, "ID\tDATE\tTITLE")
		for _, n := range cli.seed.Notice.Notices {
			fmt.Fprintf(w, "%s\t%s\t%s\n", n.ID, n.Date, n.Title)
		}
		fmt.Fprintf(w, "schedule:\tweek %d\n", cli.seed.Notice.Schedule.Week)
		for _, d := range cli.seed.Notice.Schedule.Days {
			fmt.Fprintf(w, "%s\t%s\n", d.Day, strings.Join(d.Lessons, " "))
		}
	}
}

func (cli *commandLine) printRoutes() error {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tTITLE")
	for _, r := range portal.Routes {
		fmt.Fprintf(w, "%s\t%s\n", r.Path, r.Title)
	}
	return w.Flush()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
