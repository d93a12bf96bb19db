package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gbarnett-hz/langchain/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	modelFlag := flag.String("model", "", "segmenter or extractor id")

	lengthFlag := flag.Int("length", 0, "segment length")
	overlapFlag := flag.Int("overlap", -1, "segment overlap")

	extractFlag := flag.Bool("extract", false, "extract text instead of segmenting")
	jsonFlag := flag.Bool("json", false, "print json")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	name, input, err := openInput(flag.Arg(0))

	if err != nil {
		fail(err)
	}

	defer input.Close()

	if *extractFlag {
		result, err := c.Extractions.New(ctx, client.ExtractionRequest{
			Model: *modelFlag,

			Name:   name,
			Reader: input,
		})

		if err != nil {
			fail(err)
		}

		if *jsonFlag {
			printJson(result)
			return
		}

		fmt.Println(result.Text)
		return
	}

	req := client.SegmentRequest{
		Model: *modelFlag,

		Name:   name,
		Reader: input,
	}

	if *lengthFlag > 0 {
		req.SegmentLength = client.Ptr(*lengthFlag)
	}

	if *overlapFlag >= 0 {
		req.SegmentOverlap = client.Ptr(*overlapFlag)
	}

	segments, err := c.Segments.New(ctx, req)

	if err != nil {
		fail(err)
	}

	if *jsonFlag {
		printJson(segments)
		return
	}

	for i, s := range segments {
		if i > 0 {
			fmt.Println()
		}

		fmt.Printf("--- #%d @%d\n", i+1, s.Offset)
		fmt.Println(s.Text)
	}
}

// openInput opens the named file, or stdin for an empty name or "-".
func openInput(path string) (string, io.ReadCloser, error) {
	if path == "" || path == "-" {
		return "stdin.txt", io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)

	if err != nil {
		return "", nil, err
	}

	return filepath.Base(path), f, nil
}

func printJson(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
	os.Exit(1)
}
