/*
cselect is a command line tool to build CSS selector strings and try them
out against real web pages.

Have a look at the README.md for more information.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"github.com/jakopako/cselect/config"
	"github.com/jakopako/cselect/fetch"
	"github.com/jakopako/cselect/log"
	"github.com/jakopako/cselect/match"
	"github.com/jakopako/cselect/output"
	"github.com/jakopako/cselect/selector"
	"github.com/jakopako/cselect/types"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

var version = "dev"

// orderedSelectors returns the built selectors in declaration order.
func orderedSelectors(c *config.Config, built map[string]selector.Stringifier) []match.NamedSelector {
	sels := []match.NamedSelector{}
	for _, sc := range c.Selectors {
		sels = append(sels, match.NamedSelector{Name: sc.Name, Selector: built[sc.Name]})
	}
	for _, cc := range c.Combined {
		sels = append(sels, match.NamedSelector{Name: cc.Name, Selector: built[cc.Name]})
	}
	return sels
}

func printSummary(results []types.MatchResult) {
	slog.Info("printing check summary")
	total := 0
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Name", "Selector", "Matches"})
	for _, r := range results {
		table.Append([]string{r.Name, r.Selector, strconv.Itoa(r.Count)})
		total += r.Count
	}
	table.Footer([]string{"total", "", strconv.Itoa(total)})
	table.Render()
}

func check(c *config.Config, url string, toStdout bool) error {
	built, err := c.BuildAll()
	if err != nil {
		return err
	}
	sels := orderedSelectors(c, built)

	fetcher, err := fetch.NewFetcher(&c.Fetcher)
	if err != nil {
		return err
	}
	defer fetcher.Cancel()

	var writer output.Writer
	if toStdout {
		writer = output.NewStdoutWriter(&c.Writer)
	} else {
		if writer, err = output.NewWriter(&c.Writer); err != nil {
			return err
		}
	}

	checker := match.NewChecker(fetcher, sels)
	ctx := log.ContextWithLogger(context.Background(), slog.Default())
	results, status, err := checker.CheckURL(ctx, url)
	if err != nil {
		return err
	}

	var writerWg sync.WaitGroup
	resultChan := make(chan types.MatchResult)
	writerWg.Add(1)
	go func() {
		defer writerWg.Done()
		writer.Write(resultChan)
	}()
	for _, r := range results {
		resultChan <- r
	}
	close(resultChan)
	writerWg.Wait()
	writer.WriteStatus(status)

	printSummary(results)
	return nil
}

func main() {
	configLoc := flag.String("c", "./config.yml", "The location of the configuration file.")
	printVersion := flag.Bool("v", false, "The version of cselect.")
	debugFlag := flag.Bool("debug", false, "Set log level to 'debug'.")
	checkUrl := flag.String("check", "", "Fetch the given url and check all configured selectors against it.")
	stringifyName := flag.String("stringify", "", "Print the rendered selector with the given name.")
	distanceNames := flag.String("distance", "", "Print the levenshtein distance between two named selectors, e.g. -distance teaser,title.")
	dumpFlag := flag.Bool("dump", false, "Print all rendered selectors as yaml.")
	toStdout := flag.Bool("stdout", false, "If set to true the check results will be written to stdout despite any other existing writer configuration.")

	flag.Parse()

	if *printVersion {
		buildInfo, ok := debug.ReadBuildInfo()
		if ok {
			if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
				fmt.Println(buildInfo.Main.Version)
				return
			}
		}
		fmt.Println(version)
		return
	}

	config.Debug = *debugFlag
	log.InitializeDefaultLogger()

	c, err := config.NewConfig(*configLoc)
	if err != nil {
		slog.Error(fmt.Sprintf("%v", err))
		os.Exit(1)
	}

	if *stringifyName != "" {
		built, err := c.BuildAll()
		if err != nil {
			slog.Error(fmt.Sprintf("%v", err))
			os.Exit(1)
		}
		s, ok := built[*stringifyName]
		if !ok {
			slog.Error(fmt.Sprintf("no selector with name '%s'", *stringifyName))
			os.Exit(1)
		}
		rendered, err := s.Stringify()
		if err != nil {
			slog.Error(fmt.Sprintf("%v", err))
			os.Exit(1)
		}
		fmt.Println(rendered)
		return
	}

	if *distanceNames != "" {
		names := strings.SplitN(*distanceNames, ",", 2)
		if len(names) != 2 {
			slog.Error("-distance needs two selector names separated by a comma")
			os.Exit(1)
		}
		built, err := c.BuildAll()
		if err != nil {
			slog.Error(fmt.Sprintf("%v", err))
			os.Exit(1)
		}
		a, okA := built[names[0]]
		b, okB := built[names[1]]
		if !okA || !okB {
			slog.Error(fmt.Sprintf("unknown selector name in '%s'", *distanceNames))
			os.Exit(1)
		}
		d, err := selector.Distance(a, b)
		if err != nil {
			slog.Error(fmt.Sprintf("%v", err))
			os.Exit(1)
		}
		fmt.Println(d)
		return
	}

	if *dumpFlag {
		built, err := c.BuildAll()
		if err != nil {
			slog.Error(fmt.Sprintf("%v", err))
			os.Exit(1)
		}
		rendered := map[string]string{}
		for name, s := range built {
			if rendered[name], err = s.Stringify(); err != nil {
				slog.Error(fmt.Sprintf("%v", err))
				os.Exit(1)
			}
		}
		yamlData, err := yaml.Marshal(rendered)
		if err != nil {
			slog.Error(fmt.Sprintf("error while marshaling. %v", err))
			os.Exit(1)
		}
		fmt.Print(string(yamlData))
		return
	}

	if *checkUrl != "" {
		if err := check(c, *checkUrl, *toStdout); err != nil {
			slog.Error(fmt.Sprintf("%v", err))
			os.Exit(1)
		}
		return
	}

	flag.Usage()
}
