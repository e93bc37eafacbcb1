package create_booking

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// maxReferenceAttempts сколько раз генерируется новый номер при коллизии
const maxReferenceAttempts = 5

// RandomReferenceGenerator номер вида PREFIX + YYYYMMDD + 001..999
type RandomReferenceGenerator struct {
	prefix string
}

// NewReferenceGenerator создает генератор номеров
func NewReferenceGenerator(prefix string) *RandomReferenceGenerator {
	if prefix == "" {
		prefix = domain.ReferencePrefix
	}
	return &RandomReferenceGenerator{prefix: prefix}
}

// Generate генерирует номер для дня day
func (g *RandomReferenceGenerator) Generate(day time.Time) string {
	suffix := domain.ReferenceSuffixMin + rand.Intn(domain.ReferenceSuffixMax-domain.ReferenceSuffixMin+1)
	return fmt.Sprintf("%s%s%03d", g.prefix, day.Format(domain.ReferenceDateFormat), suffix)
}
