package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

var entityTypes = []string{"llc", "sole_prop", "s_corp", "c_corp"}
var entityStatuses = []string{"active", "active", "active", "pending", "dissolved"}
var documentCategories = []string{"formation", "tax", "insurance", "license"}

type EntityFactory struct{}

// CreateBusinessEntity fabricates a plausible driver business profile.
// The EIN is stored masked from the start; the factory never produces a
// full one.
func (ef *EntityFactory) CreateBusinessEntity() *models.BusinessEntity {
	now := time.Now()
	formation := fake.Time().TimeBetween(now.AddDate(-8, 0, 0), now)
	return &models.BusinessEntity{
		Name:          fmt.Sprintf("%s %s", fake.Company().Name(), entitySuffix()),
		EntityType:    entityTypes[rand.Intn(len(entityTypes))],
		Status:        entityStatuses[rand.Intn(len(entityStatuses))],
		FormationDate: formation.Format("2006-01-02"),
		EINMasked:     fmt.Sprintf("**-***%04d", fake.IntBetween(0, 9999)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CreateDocument fabricates a document record for an entity. The storage
// key is a fresh cuid; no blob is written.
func (ef *EntityFactory) CreateDocument(entityID int) *models.Document {
	category := documentCategories[rand.Intn(len(documentCategories))]
	return &models.Document{
		EntityID:    entityID,
		Name:        fmt.Sprintf("%s_%s.pdf", category, fake.Lorem().Word()),
		Category:    category,
		ContentType: "application/pdf",
		SizeBytes:   int64(fake.IntBetween(10_000, 5_000_000)),
		StorageKey:  cuid.New(),
		UploadedAt:  time.Now(),
	}
}

// CreateBusinessEntities fabricates a batch of entities.
func (ef *EntityFactory) CreateBusinessEntities(count int) []*models.BusinessEntity {
	entities := make([]*models.BusinessEntity, count)
	for i := range entities {
		entities[i] = ef.CreateBusinessEntity()
	}
	return entities
}

func entitySuffix() string {
	suffixes := []string{"LLC", "Logistics LLC", "Transport LLC", "Hauling Inc", "Services LLC"}
	return suffixes[rand.Intn(len(suffixes))]
}
