package corpus

import (
	"context"
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/sync/errgroup"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

// Corpus file names relative to the data directory, matching what the
// original page fetched.
const (
	jobsFile     = "jobs.json"
	faqFile      = "faq.json"
	handbookFile = "handbook.json"
)

type jobsDocument struct {
	Jobs []types.Job `json:"jobs"`
}

type faqDocument struct {
	FAQs []types.FAQ `json:"faqs"`
}

type handbookDocument struct {
	Company types.Handbook `json:"company"`
}

// Load reads the three corpus documents from dir concurrently, validates
// each against its JSON Schema and per-record struct rules, and returns a
// fully populated Store. If any document fails, the whole load fails and no
// Store is returned: the assistant must never run against partial data.
func Load(ctx context.Context, dir string) (*Store, error) {
	validate := validator.New()

	var (
		jobsDoc     jobsDocument
		faqDoc      faqDocument
		handbookDoc handbookDocument
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loadDocument(filepath.Join(dir, jobsFile), "schema/jobs.schema.json", &jobsDoc)
	})
	g.Go(func() error {
		return loadDocument(filepath.Join(dir, faqFile), "schema/faq.schema.json", &faqDoc)
	})
	g.Go(func() error {
		return loadDocument(filepath.Join(dir, handbookFile), "schema/handbook.schema.json", &handbookDoc)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, job := range jobsDoc.Jobs {
		if err := validate.Struct(job); err != nil {
			return nil, &LoadError{Document: jobsFile, Message: "invalid job record", Cause: err}
		}
	}
	for _, faq := range faqDoc.FAQs {
		if err := validate.Struct(faq); err != nil {
			return nil, &LoadError{Document: faqFile, Message: "invalid faq record", Cause: err}
		}
	}
	if err := validate.Struct(handbookDoc.Company); err != nil {
		return nil, &LoadError{Document: handbookFile, Message: "invalid handbook", Cause: err}
	}

	return newStore(jobsDoc.Jobs, faqDoc.FAQs, handbookDoc.Company), nil
}

// loadDocument reads one corpus file, checks it against the embedded schema
// and decodes it into out.
func loadDocument(path, schemaName string, out any) error {
	document := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Document: document, Message: "read failed", Cause: err}
	}

	schemaBytes, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return &LoadError{Document: document, Message: "embedded schema missing", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &LoadError{Document: document, Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descriptions = append(descriptions, desc.String())
		}
		return &LoadError{Document: document, Message: strings.Join(descriptions, "; ")}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &LoadError{Document: document, Message: "decode failed", Cause: err}
	}
	return nil
}
