package main

import (
	"fmt"
	"os"
	"strings"

	labsync "github.com/bhklab/lab-website-data-refresh"
)

// sheetDefaults maps a configurable sheet name to its kinds and default
// worksheet/collection names. The general kind is for spreadsheets that
// predate the per-kind worksheets and keep everything on one sheet.
var sheetDefaults = map[string]struct {
	sheet      labsync.SheetKind
	collection labsync.CollectionKind
	worksheet  string
	name       string
}{
	"publications":  {labsync.SheetPublications, labsync.CollectionPublications, "Publications", "publications"},
	"preprints":     {labsync.SheetPreprints, labsync.CollectionPreprints, "Preprints", "preprints"},
	"presentations": {labsync.SheetPresentations, labsync.CollectionPresentations, "Presentations", "presentations"},
	"general":       {labsync.SheetGeneral, labsync.CollectionGeneral, "Sheet1", "general"},
}

// config holds everything the refresh needs, read from the environment.
// Validation happens at load so a misconfigured run fails before touching
// the sheet or the database.
type config struct {
	MongoURI        string
	MongoDatabase   string
	SpreadsheetID   string
	CredentialsFile string
	CredentialsJSON string
	LogLevel        string
	LogFormat       string
	Passes          []labsync.Pass
}

// loadConfig reads configuration from environment variables.
//
// Required: MONGODB_URI, MONGODB_DB, GOOGLE_SHEET_ID.
// Credentials come from GOOGLE_SERVICE_ACCOUNT_JSON (the key itself, for
// schedulers that inject secrets as values) or GOOGLE_SERVICE_ACCOUNT_FILE
// (a path); with neither set the sheets client falls back to application
// default credentials.
//
// SYNC_SHEETS selects which sheets to sync (comma-separated kinds, default
// "publications,preprints,presentations"). Per kind, <KIND>_WORKSHEET and
// <KIND>_COLLECTION override the worksheet and collection names.
func loadConfig() (*config, error) {
	cfg := &config{
		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDatabase:   os.Getenv("MONGODB_DB"),
		SpreadsheetID:   os.Getenv("GOOGLE_SHEET_ID"),
		CredentialsFile: os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"),
		CredentialsJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "text"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.MongoDatabase == "" {
		return nil, fmt.Errorf("MONGODB_DB is required")
	}
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SHEET_ID is required")
	}

	sheets := getenv("SYNC_SHEETS", "publications,preprints,presentations")
	for _, name := range strings.Split(sheets, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}

		def, ok := sheetDefaults[name]
		if !ok {
			return nil, fmt.Errorf("SYNC_SHEETS: unknown sheet kind %q", name)
		}

		prefix := strings.ToUpper(name)
		cfg.Passes = append(cfg.Passes, labsync.Pass{
			Sheet:          def.sheet,
			Worksheet:      getenv(prefix+"_WORKSHEET", def.worksheet),
			Collection:     def.collection,
			CollectionName: getenv(prefix+"_COLLECTION", def.name),
		})
	}

	if len(cfg.Passes) == 0 {
		return nil, fmt.Errorf("SYNC_SHEETS selects no sheets")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
