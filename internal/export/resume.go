// Package export renders candidate records into downloadable resume
// documents. Rendering is a pure function of (candidate, template, logo);
// no state is kept between calls.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	apperrors "talenthub/internal/errors"
	"talenthub/internal/model"
)

// Template selects one of the fixed resume layouts.
type Template string

// Available templates. Classic is the default.
const (
	TemplateClassic Template = "classic"
	TemplateModern  Template = "modern"
	TemplateCompact Template = "compact"
)

// FindLogo returns the most recently modified logo.* file in dir, or the
// empty string when no logo has been uploaded.
func FindLogo(dir string) string {
	matches, err := filepath.Glob(filepath.Join(dir, "logo.*"))
	if err != nil {
		return ""
	}
	var newest string
	var newestMod time.Time
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = m
			newestMod = info.ModTime()
		}
	}
	return newest
}

// ParseTemplate resolves a template name, defaulting to classic when empty.
func ParseTemplate(name string) (Template, error) {
	switch Template(name) {
	case "":
		return TemplateClassic, nil
	case TemplateClassic, TemplateModern, TemplateCompact:
		return Template(name), nil
	default:
		return "", apperrors.ErrUnknownTemplate
	}
}

type style struct {
	accentR, accentG, accentB int
	headerBand                bool
	bodySize                  float64
}

var styles = map[Template]style{
	TemplateClassic: {accentR: 40, accentG: 60, accentB: 100, headerBand: false, bodySize: 10},
	TemplateModern:  {accentR: 0, accentG: 130, accentB: 120, headerBand: true, bodySize: 10},
	TemplateCompact: {accentR: 70, accentG: 70, accentB: 70, headerBand: false, bodySize: 9},
}

// Structured shapes tolerated inside the JSON-text columns. Free-text
// content that does not decode falls back to a plain paragraph.
type experienceEntry struct {
	Role             string   `json:"role"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

type educationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type languageEntry struct {
	Language    string `json:"language"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
	Level       string `json:"level"`
}

// Render produces the resume PDF for a candidate. logoPath may be empty; a
// missing logo file is skipped rather than failing the export.
func Render(c *model.Candidate, tpl Template, logoPath string) ([]byte, error) {
	st, ok := styles[tpl]
	if !ok {
		return nil, apperrors.ErrUnknownTemplate
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s %s - Resume", c.FirstName, c.LastName), false)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	// Header
	if st.headerBand {
		pdf.SetFillColor(st.accentR, st.accentG, st.accentB)
		pdf.Rect(0, 0, pageW, 34, "F")
		pdf.SetTextColor(255, 255, 255)
	} else {
		pdf.SetTextColor(st.accentR, st.accentG, st.accentB)
	}

	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			opts := fpdf.ImageOptions{ImageType: "", ReadDpi: true}
			pdf.ImageOptions(logoPath, pageW-right-24, 6, 22, 0, false, opts, 0, "")
		}
	}

	pdf.SetY(10)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(contentW, 10, tr(strings.TrimSpace(c.FirstName+" "+c.LastName)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if c.CurrentPosition != "" {
		pdf.CellFormat(contentW, 6, tr(c.CurrentPosition), "", 1, "L", false, 0, "")
	}

	contact := joinNonEmpty(" | ", c.Email, c.Phone, c.Location, c.LinkedIn)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr(contact), "", 1, "L", false, 0, "")

	pdf.SetTextColor(30, 30, 30)
	if st.headerBand {
		pdf.SetY(40)
	} else {
		pdf.Ln(4)
	}

	writeSection := func(title string) {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(st.accentR, st.accentG, st.accentB)
		pdf.CellFormat(contentW, 7, tr(title), "", 1, "L", false, 0, "")
		pdf.SetDrawColor(st.accentR, st.accentG, st.accentB)
		y := pdf.GetY()
		pdf.Line(left, y, left+contentW, y)
		pdf.Ln(1.5)
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Helvetica", "", st.bodySize)
	}

	if c.Summary != "" {
		writeSection("Summary")
		pdf.MultiCell(contentW, 5, tr(c.Summary), "", "L", false)
	}

	if len(c.Skills) > 0 {
		writeSection("Skills")
		pdf.MultiCell(contentW, 5, tr(strings.Join(c.Skills, ", ")), "", "L", false)
	}

	if c.Experience != "" {
		writeSection("Experience")
		renderExperience(pdf, tr, contentW, st, c.Experience)
	}

	if c.Education != "" {
		writeSection("Education")
		renderEducation(pdf, tr, contentW, c.Education)
	}

	if c.Languages != "" {
		writeSection("Languages")
		renderLanguages(pdf, tr, contentW, c.Languages)
	}

	if c.Certifications != "" {
		writeSection("Certifications")
		renderFreeOrList(pdf, tr, contentW, c.Certifications)
	}

	if c.Hobbies != "" {
		writeSection("Hobbies")
		pdf.MultiCell(contentW, 5, tr(c.Hobbies), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render resume: %w", err)
	}
	return buf.Bytes(), nil
}

func renderExperience(pdf *fpdf.Fpdf, tr func(string) string, w float64, st style, raw string) {
	var entries []experienceEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || len(entries) == 0 {
		pdf.MultiCell(w, 5, tr(raw), "", "L", false)
		return
	}
	for _, e := range entries {
		role := firstNonEmpty(e.Role, e.Title)
		duration := firstNonEmpty(e.Duration, e.Period)
		pdf.SetFont("Helvetica", "B", st.bodySize+1)
		pdf.CellFormat(w, 5.5, tr(joinNonEmpty(" - ", role, e.Company)), "", 1, "L", false, 0, "")
		if duration != "" {
			pdf.SetFont("Helvetica", "I", st.bodySize-1)
			pdf.CellFormat(w, 4.5, tr(duration), "", 1, "L", false, 0, "")
		}
		pdf.SetFont("Helvetica", "", st.bodySize)
		for _, resp := range e.Responsibilities {
			pdf.MultiCell(w, 5, tr("  - "+resp), "", "L", false)
		}
		pdf.Ln(1.5)
	}
}

func renderEducation(pdf *fpdf.Fpdf, tr func(string) string, w float64, raw string) {
	var entries []educationEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || len(entries) == 0 {
		pdf.MultiCell(w, 5, tr(raw), "", "L", false)
		return
	}
	for _, e := range entries {
		pdf.MultiCell(w, 5, tr(joinNonEmpty(", ", e.Degree, e.Institution, e.Year)), "", "L", false)
	}
}

func renderLanguages(pdf *fpdf.Fpdf, tr func(string) string, w float64, raw string) {
	var entries []languageEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || len(entries) == 0 {
		pdf.MultiCell(w, 5, tr(raw), "", "L", false)
		return
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		name := firstNonEmpty(e.Language, e.Name)
		level := firstNonEmpty(e.Proficiency, e.Level)
		parts = append(parts, joinNonEmpty(" ", name, wrapParens(level)))
	}
	pdf.MultiCell(w, 5, tr(strings.Join(parts, ", ")), "", "L", false)
}

func renderFreeOrList(pdf *fpdf.Fpdf, tr func(string) string, w float64, raw string) {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil || len(items) == 0 {
		pdf.MultiCell(w, 5, tr(raw), "", "L", false)
		return
	}
	for _, item := range items {
		pdf.MultiCell(w, 5, tr("  - "+item), "", "L", false)
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func wrapParens(s string) string {
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}
