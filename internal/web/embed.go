// Package web holds the embedded templates, static assets, and resume locale
// files served by the portfolio binary.
package web

import "embed"

// Templates holds the HTML templates for pages, partials, and the PDF resume.
//
//go:embed templates
var Templates embed.FS

// Static holds the static assets mounted under /static/.
//
//go:embed static
var Static embed.FS

// Locales holds the per-language resume JSON documents.
//
//go:embed locales/*.json
var Locales embed.FS
