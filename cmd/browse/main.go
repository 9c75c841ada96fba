package main

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"browser/fetch"
	"browser/js"
	"browser/page"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dump    bool
)

var rootCmd = &cobra.Command{
	Use:   "browse <url|file>",
	Short: "Load an HTML page and run its scripts",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "print the document tree after loading")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	loader := fetch.NewLoader()
	base, body, err := load(loader, args[0])
	if err != nil {
		return err
	}
	p := page.NewPage(base, loader, js.New())
	if err := p.LoadHTML(bytes.NewReader(body)); err != nil {
		return err
	}
	if dump {
		fmt.Println(p.Document())
	}
	return nil
}

func load(loader *fetch.Loader, target string) (*url.URL, []byte, error) {
	if u, err := url.Parse(target); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return loader.FetchResource(u)
	}
	body, err := os.ReadFile(target)
	if err != nil {
		return nil, nil, err
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, nil, err
	}
	return &url.URL{Scheme: "file", Path: abs}, body, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
