// Command resume-import runs the import pipeline over one local file and
// prints the extraction result as JSON. It never touches a database; drafts
// are printed, not staged.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/careerdock/resume-import/constants"
	"github.com/careerdock/resume-import/internal/common"
	"github.com/careerdock/resume-import/internal/extract"
	"github.com/careerdock/resume-import/internal/llm"
	"github.com/careerdock/resume-import/internal/llm/openai"
	"github.com/careerdock/resume-import/internal/pipeline"
	"github.com/careerdock/resume-import/internal/profile"
)

var extensionMediaTypes = map[string]string{
	".txt":  constants.MediaPlainText,
	".md":   constants.MediaMarkdown,
	".pdf":  constants.MediaPDF,
	".doc":  constants.MediaWord,
	".docx": constants.MediaWordX,
}

func main() {
	_ = godotenv.Load()

	var (
		filePath  = flag.String("file", "", "path to the resume document")
		mediaType = flag.String("media-type", "", "declared media type (defaults from the file extension)")
		showText  = flag.Bool("text", false, "include the extracted text in the output")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: resume-import -file <resume.pdf|.docx|.txt> [-media-type <type>]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *filePath, err)
		os.Exit(1)
	}

	mt := *mediaType
	if mt == "" {
		mt = extensionMediaTypes[strings.ToLower(filepath.Ext(*filePath))]
	}
	if mt == "" {
		fmt.Fprintln(os.Stderr, "cannot infer media type; pass -media-type")
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	ocrClient := extract.NewOCRClient(extract.OCRConfig{
		BaseURL:         cfg.OCR.BaseURL,
		APIKey:          cfg.OCR.APIKey,
		Model:           cfg.OCR.Model,
		Timeout:         cfg.OCR.Timeout,
		SignedURLExpiry: cfg.OCR.SignedURLExpiry,
	}, logger)

	var ai llm.ResumeExtractor
	if cfg.LLM.APIKey != "" {
		ai = openai.NewClient(openai.Config{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}

	importer := pipeline.NewImporter(
		extract.NewExtractor(ocrClient, logger),
		profile.NewExtractor(ai, logger),
		logger,
	)

	res, err := importer.Import(context.Background(), pipeline.ImportRequest{
		Data:      data,
		FileName:  filepath.Base(*filePath),
		MediaType: mt,
		ProfileID: uuid.New(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}

	if !*showText {
		res.Markdown = ""
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
}
