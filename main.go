package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/brayfield/quill/binding"
	"github.com/brayfield/quill/layout"
	"github.com/brayfield/quill/preview"
	canvassurface "github.com/brayfield/quill/renderer/canvas"
)

func main() {
	input := flag.String("in", "", "markdown input path")
	output := flag.String("out", "output/doc.pdf", "PDF output path")
	htmlOut := flag.String("html", "", "HTML preview output path")
	debugOut := flag.String("debug", "", "draw-instruction JSON output path (fixed-advance metrics)")
	size := flag.String("size", "A4", "page preset: A4, A5 or Letter")
	landscape := flag.Bool("landscape", false, "landscape orientation")
	margin := flag.String("margin", "20mm", "page margins, shorthand with 1-4 lengths")
	align := flag.String("align", "left", "paragraph alignment: left, center, right or justify")
	fontSize := flag.String("font-size", "12pt", "body font size")
	title := flag.String("title", "", "PDF title")
	author := flag.String("author", "", "PDF author")
	header := flag.String("header", "", `header template, e.g. "${title}"`)
	footer := flag.String("footer", "", `footer template, e.g. "Page ${page}"`)
	dataJSON := flag.String("data", "", "JSON data bound into ${path} placeholders")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -in markdown file")
	}
	raw, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read %s: %v", *input, err)
	}
	md := string(raw)
	if *dataJSON != "" {
		var data any
		if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
			log.Fatalf("parse data JSON: %v", err)
		}
		md = binding.Interpolate(md, data)
	}

	cfg := layout.Config{
		Margin:   layout.ParseMargin(*margin),
		BodySize: layout.ParseLength(*fontSize),
		Align:    layout.ParseAlign(*align),
		Header:   *header,
		Footer:   *footer,
	}
	meta := canvassurface.Meta{Title: *title, Author: *author, Creator: "quill"}

	if *htmlOut != "" {
		if err := writeFile(*htmlOut, []byte(preview.Render(md))); err != nil {
			log.Fatalf("write HTML preview: %v", err)
		}
		fmt.Printf("wrote HTML preview %s\n", *htmlOut)
	}

	if err := run(md, *output, *debugOut, *size, *landscape, cfg, meta); err != nil {
		log.Fatalf("generate PDF: %v", err)
	}
	fmt.Printf("wrote PDF %s\n", *output)
}

// run chains layout and rendering for one document build.
func run(md, outputPath, debugPath, size string, landscape bool, cfg layout.Config, meta canvassurface.Meta) error {
	pageW, pageH, err := layout.PageSize(size, landscape)
	if err != nil {
		return err
	}

	if debugPath != "" {
		rec := layout.NewRecorder(pageW, pageH)
		if err := layout.NewEngine(rec, cfg).Document(md); err != nil {
			return fmt.Errorf("layout (debug trace): %w", err)
		}
		if err := layout.WriteDebugJSON(rec.Ops(), debugPath); err != nil {
			return fmt.Errorf("write debug JSON: %w", err)
		}
	}

	surf, err := canvassurface.New(pageW, pageH, meta)
	if err != nil {
		return err
	}
	if err := layout.NewEngine(surf, cfg).Document(md); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	pdfBytes, err := surf.Close()
	if err != nil {
		return err
	}
	return writeFile(outputPath, pdfBytes)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
