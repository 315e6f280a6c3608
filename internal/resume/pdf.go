package resume

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ConvertTimeout bounds a single HTML-to-PDF conversion.
const ConvertTimeout = 60 * time.Second

// A4 paper size and margins in inches for page.PrintToPDF.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.4 // ~1cm
)

// Converter turns rendered HTML into PDF bytes.
type Converter interface {
	Convert(ctx context.Context, html string) ([]byte, error)
}

// TemplateData is the context passed to the PDF resume template.
type TemplateData struct {
	Language string
	Locale   *Locale
	Skills   []SkillCategory
}

// Generator renders the localized resume template and converts it to PDF.
type Generator struct {
	tmpl      *template.Template
	locales   fs.FS
	converter Converter
}

// NewGenerator parses the PDF template from the given template filesystem.
func NewGenerator(templates fs.FS, locales fs.FS, converter Converter) (*Generator, error) {
	tmpl, err := template.ParseFS(templates, "templates/pdf/resume_pdf.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume PDF template: %w", err)
	}
	return &Generator{tmpl: tmpl, locales: locales, converter: converter}, nil
}

// Generate produces the PDF resume for a language and returns the content
// plus the download filename.
func (g *Generator) Generate(ctx context.Context, language string) ([]byte, string, error) {
	locale, err := LoadLocale(g.locales, language)
	if err != nil {
		return nil, "", err
	}

	data := TemplateData{
		Language: language,
		Locale:   locale,
		Skills:   Skills(language),
	}

	var html strings.Builder
	if err := g.tmpl.Execute(&html, data); err != nil {
		return nil, "", fmt.Errorf("failed to render resume template: %w", err)
	}

	pdf, err := g.converter.Convert(ctx, html.String())
	if err != nil {
		return nil, "", fmt.Errorf("failed to convert resume to PDF: %w", err)
	}
	return pdf, Filename(locale, language), nil
}

// ChromeConverter renders HTML to PDF in a headless Chrome instance.
// Requires Chrome/Chromium to be installed on the system.
type ChromeConverter struct {
	Verbose bool
}

// Convert prints the given HTML document to an A4 PDF.
func (c *ChromeConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	if c.Verbose {
		log.Printf("[BROWSER] Starting headless browser for PDF conversion (%d bytes of HTML)", len(html))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, ConvertTimeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}

	if c.Verbose {
		log.Printf("[BROWSER] Rendered PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}
