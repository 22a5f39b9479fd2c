// Package generation provides local implementations of the external
// collaborators behind checklist actions. They mint references and titles
// without talking to any registry backend, which is enough for a standalone
// deployment and for the CLI.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtops/docket/internal/domain"
	"github.com/courtops/docket/internal/logging"
	"github.com/courtops/docket/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memberStateCount mirrors the UN membership roll used for all-states
// distributions.
const memberStateCount = 193

// LocalLetterGenerator drafts letters in place.
type LocalLetterGenerator struct {
	log zerolog.Logger
}

func NewLocalLetterGenerator() *LocalLetterGenerator {
	return &LocalLetterGenerator{log: logging.Component("generation")}
}

func (g *LocalLetterGenerator) Generate(ctx context.Context, caseID, letterType string, language domain.Language) (service.LetterRef, error) {
	if err := ctx.Err(); err != nil {
		return service.LetterRef{}, err
	}
	ref := service.LetterRef{
		Href:  fmt.Sprintf("cases/%s/letters/%s", caseID, uuid.New().String()),
		Title: fmt.Sprintf("%s letter (%s)", humanize(letterType), strings.ToUpper(string(language))),
	}
	g.log.Debug().Str("case_id", caseID).Str("letter_type", letterType).
		Str("language", string(language)).Msg("letter drafted")
	return ref, nil
}

// LocalDistributor creates distributions in place.
type LocalDistributor struct {
	log zerolog.Logger
}

func NewLocalDistributor() *LocalDistributor {
	return &LocalDistributor{log: logging.Component("generation")}
}

func (d *LocalDistributor) Create(ctx context.Context, caseID, scope string, language domain.Language) (service.DistributionRef, error) {
	if err := ctx.Err(); err != nil {
		return service.DistributionRef{}, err
	}
	ref := service.DistributionRef{
		Href:         fmt.Sprintf("cases/%s/distributions/%s", caseID, uuid.New().String()),
		Title:        fmt.Sprintf("Distribution to %s", scope),
		DeliveryMeta: deliveryMeta(scope),
	}
	d.log.Debug().Str("case_id", caseID).Str("scope", scope).Msg("distribution created")
	return ref, nil
}

func deliveryMeta(scope string) string {
	if strings.EqualFold(scope, "All States") {
		return fmt.Sprintf("%d/%d states", memberStateCount, memberStateCount)
	}
	return scope
}

// LocalFiler files documents in place.
type LocalFiler struct {
	log zerolog.Logger
}

func NewLocalFiler() *LocalFiler {
	return &LocalFiler{log: logging.Component("generation")}
}

func (f *LocalFiler) File(ctx context.Context, caseID, documentType string) (service.DocumentRef, error) {
	if err := ctx.Err(); err != nil {
		return service.DocumentRef{}, err
	}
	ref := service.DocumentRef{
		Href:  fmt.Sprintf("cases/%s/documents/%s", caseID, uuid.New().String()),
		Title: humanize(documentType),
	}
	f.log.Debug().Str("case_id", caseID).Str("document_type", documentType).Msg("document filed")
	return ref, nil
}

// LocalRecorder records procedural events in place.
type LocalRecorder struct {
	log zerolog.Logger
}

func NewLocalRecorder() *LocalRecorder {
	return &LocalRecorder{log: logging.Component("generation")}
}

func (r *LocalRecorder) Record(ctx context.Context, caseID, eventType string) (service.EventRef, error) {
	if err := ctx.Err(); err != nil {
		return service.EventRef{}, err
	}
	ref := service.EventRef{
		Href:  fmt.Sprintf("cases/%s/events/%s", caseID, uuid.New().String()),
		Title: humanize(eventType),
	}
	r.log.Debug().Str("case_id", caseID).Str("event_type", eventType).Msg("event recorded")
	return ref, nil
}

// humanize turns a snake_case type tag into a display title.
func humanize(tag string) string {
	s := strings.ReplaceAll(tag, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
