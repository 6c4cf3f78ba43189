package transform

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"modelcat/pkg/modelcat/directory"
	"modelcat/pkg/modelcat/models"
)

// maxCandidates bounds the number of directory matches requested per token.
const maxCandidates = 10

// partyURLFormat builds the profile URL of a resolved directory party.
const partyURLFormat = "https://my.usgs.gov/catalog/Global/catalogParty/show/%d"

// PeopleSearcher is the directory surface the resolver needs.
type PeopleSearcher interface {
	SearchPeople(ctx context.Context, q string, max int) (*directory.SearchResult, error)
}

// Resolver turns a contact token into exactly one contact document.
// Ambiguity (zero or multiple matches) silently degrades to the stub
// variant; only transport failures surface as errors.
type Resolver struct {
	dir PeopleSearcher
	log *zap.Logger
}

// NewResolver creates a resolver over the given directory client.
// A nil logger disables logging.
func NewResolver(dir PeopleSearcher, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{dir: dir, log: log}
}

// Resolve looks up token in the directory and returns one contact document.
// Exactly one match yields the resolved variant; any other count yields the
// stub. No ranking or best-match heuristic is attempted.
func (r *Resolver) Resolve(ctx context.Context, token string) (models.Contact, error) {
	result, err := r.dir.SearchPeople(ctx, token, maxCandidates)
	if err != nil {
		return models.Contact{}, fmt.Errorf("search %q: %w", token, err)
	}

	if result.Total != 1 || len(result.People) != 1 {
		r.log.Debug("ambiguous contact, using stub",
			zap.String("token", token),
			zap.Int("total", result.Total))
		return models.NewStubContact(token), nil
	}

	p := result.People[0]
	contact := models.Contact{
		Kind:           models.ContactResolved,
		Name:           p.DisplayName,
		Type:           "Contact",
		Email:          p.Email,
		OldPartyID:     p.ID,
		ContactType:    p.Type,
		OnlineResource: fmt.Sprintf(partyURLFormat, p.ID),
		Active:         &p.Active,
		JobTitle:       p.Extensions.PersonExtension.JobTitle,
		FirstName:      p.Extensions.PersonExtension.FirstName,
		LastName:       p.Extensions.PersonExtension.LastName,
	}
	if p.OrcID != "" {
		contact.OrcID = p.OrcID
	}
	return contact, nil
}
