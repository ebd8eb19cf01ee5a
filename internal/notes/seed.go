// ABOUTME: Seeding for empty note collections.
// ABOUTME: Remote sample content first, synthesized welcome note as fallback.

package notes

import (
	"context"

	"github.com/inkwell-notes/inkwell/internal/models"
)

const (
	welcomeTitle   = "Welcome to Inkwell"
	welcomeContent = "This is your first note. Jot something down, tag it, " +
		"file it into a folder, and it is saved locally as you go."
	welcomeTag = "getting-started"

	defaultSampleLimit = 5
)

// ensureSeeded guarantees the collection has length >= 1 and is persisted.
// An empty collection is populated from the sample fetcher; when that fails
// or returns nothing, a single welcome note is synthesized instead.
func (r *Repository) ensureSeeded(ctx context.Context) {
	if len(r.notes) > 0 {
		return
	}

	var seeded []models.Note
	if r.samples != nil {
		for _, s := range r.samples.Fetch(ctx, r.sampleLimit) {
			seeded = append(seeded, r.Create(models.Note{
				Title:   s.Title,
				Content: s.Body,
				Tags:    []string{"sample"},
			}))
		}
	}

	if len(seeded) == 0 {
		r.log.Debug().Msg("no sample content, falling back to welcome note")
		seeded = []models.Note{r.Create(models.Note{
			Title:   welcomeTitle,
			Content: welcomeContent,
			Tags:    []string{welcomeTag},
		})}
	}

	r.notes = seeded
	r.Persist()
}
