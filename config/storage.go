package config

import (
	"os"
	"path/filepath"
)

// DataDir is where invoice PDFs and the loadsheets subdirectory live.
func DataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

func LoadSheetDir() string {
	return filepath.Join(DataDir(), "loadsheets")
}

// LogoPath points at the optional company logo rendered on invoices.
// An empty return or a missing file means invoices go out without one.
func LogoPath() string {
	if p := os.Getenv("LOGO_PATH"); p != "" {
		return p
	}
	return filepath.Join("static", "uploads", "logo.png")
}

// CompanyName labels every rendered document.
func CompanyName() string {
	if name := os.Getenv("COMPANY_NAME"); name != "" {
		return name
	}
	return "BRANDO"
}
