package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/casefile/internal/domain"
)

// Evidence content with one of these prefixes is kept as is.
var linkPrefixes = []string{"http://", "https://", "data:"}

// textMarker prefixes inline text carried by document evidence.
const textMarker = "Text:"

// uriComponentEscaper undoes url.QueryEscape where it differs from
// encodeURIComponent, which leaves ! * ' ( ) alone and writes spaces as %20.
var uriComponentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// PlaceholderURL returns the stand-in image URL used for evidence whose file
// was not uploaded anywhere.
func PlaceholderURL(title string) string {
	return "https://picsum.photos/seed/" + uriComponentEscaper.Replace(url.QueryEscape(title)) + "/400/300"
}

// needsPlaceholder reports whether evidence of type t with the given content
// refers to a file that has no URL yet.
func needsPlaceholder(t domain.EvidenceType, content string) bool {
	if !t.IsBinary() {
		return false
	}
	for _, p := range linkPrefixes {
		if strings.HasPrefix(content, p) {
			return false
		}
	}
	if t == domain.EvidenceTypeDocument && strings.HasPrefix(content, textMarker) {
		return false
	}
	return true
}

// processEvidence converts validated evidence inputs into draft evidence.
// File evidence without a URL gets a placeholder URL and, when missing, a
// generated file name stamped with now.
func processEvidence(items []EvidenceInput, now time.Time) []domain.Evidence {
	out := make([]domain.Evidence, len(items))
	for i, in := range items {
		ev := domain.Evidence{
			Title:       in.Title,
			Type:        in.Type,
			Content:     in.Content,
			Description: in.Description,
			FileName:    in.FileName,
			DataAIHint:  in.DataAIHint,
		}
		if needsPlaceholder(ev.Type, ev.Content) {
			ev.Content = PlaceholderURL(ev.Title)
			if ev.FileName == "" {
				ev.FileName = fmt.Sprintf("%s_file_%d.dat", ev.Type, now.UnixMilli())
			}
		}
		out[i] = ev
	}
	return out
}
