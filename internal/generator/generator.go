package generator

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dummy_reports/internal/models"
)

const (
	// KmPerDegree - приблизительная длина одного градуса широты
	KmPerDegree = 111.0

	SamplingSquare = "square"
	SamplingCircle = "circle"

	ProfileStandard = "standard"
	ProfileCoastal  = "coastal"

	maxAgeDays        = 7.0
	resolvedShare     = 0.3
	maxTrustScore     = 10
	seaShare          = 0.8
	shortLivedAgeDays = 0.1
	longLivedAgeDays  = 6.0
)

// Options - параметры генерации
type Options struct {
	CenterLat    float64
	CenterLng    float64
	RadiusKM     float64
	Sampling     string
	Profile      string
	CoastlineLat float64
}

// Bounds - максимальные смещения от центра в градусах
type Bounds struct {
	MaxLatOffset float64
	MaxLngOffset float64
}

// Generator создаёт случайные отчёты вокруг центральной точки
type Generator struct {
	opts   Options
	bounds Bounds
	rng    *rand.Rand
	clock  clockwork.Clock
}

// New создаёт генератор. Если rng равен nil, используется несидированный источник,
// если clock равен nil - реальные часы.
func New(opts Options, rng *rand.Rand, clock clockwork.Clock) (*Generator, error) {
	if opts.RadiusKM <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", opts.RadiusKM)
	}
	if opts.Sampling == "" {
		opts.Sampling = SamplingSquare
	}
	if opts.Sampling != SamplingSquare && opts.Sampling != SamplingCircle {
		return nil, fmt.Errorf("unknown sampling mode %q", opts.Sampling)
	}
	if opts.Profile == "" {
		opts.Profile = ProfileStandard
	}
	if opts.Profile != ProfileStandard && opts.Profile != ProfileCoastal {
		return nil, fmt.Errorf("unknown profile %q", opts.Profile)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Generator{
		opts:   opts,
		bounds: ComputeBounds(opts.CenterLat, opts.RadiusKM),
		rng:    rng,
		clock:  clock,
	}, nil
}

// NewSeeded возвращает источник случайных чисел для воспроизводимых запусков
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ComputeBounds переводит радиус в километрах в смещения по широте и долготе
func ComputeBounds(centerLat, radiusKM float64) Bounds {
	return Bounds{
		MaxLatOffset: radiusKM / KmPerDegree,
		MaxLngOffset: radiusKM / (KmPerDegree * math.Cos(centerLat*math.Pi/180)),
	}
}

// Bounds возвращает рассчитанные смещения
func (g *Generator) Bounds() Bounds {
	return g.bounds
}

// Options возвращает нормализованные параметры генератора
func (g *Generator) Options() Options {
	return g.opts
}

// Generate создаёт n независимых отчётов
func (g *Generator) Generate(n int) []*models.Report {
	if n <= 0 {
		return []*models.Report{}
	}
	reports := make([]*models.Report, 0, n)
	for i := 0; i < n; i++ {
		reports = append(reports, g.Next())
	}
	return reports
}

// Next создаёт один отчёт
func (g *Generator) Next() *models.Report {
	latOffset, lngOffset := g.sampleOffset()
	lat := g.opts.CenterLat + latOffset
	lng := g.opts.CenterLng + lngOffset

	rType := g.pickType(lat)
	descriptions := models.Descriptions[rType]
	desc := descriptions[g.rng.IntN(len(descriptions))]

	daysAgo := g.rng.Float64() * g.ageLimit(rType)
	createdAt := g.clock.Now().Add(-time.Duration(daysAgo * float64(24*time.Hour)))

	return &models.Report{
		Type:            rType,
		Description:     desc,
		Latitude:        lat,
		Longitude:       lng,
		TrustScore:      g.rng.IntN(maxTrustScore + 1),
		IsResolved:      g.rng.Float64() < resolvedShare,
		CreatedAt:       createdAt,
		LastConfirmedAt: createdAt,
	}
}

func (g *Generator) sampleOffset() (float64, float64) {
	for {
		latOffset := g.uniform(g.bounds.MaxLatOffset)
		lngOffset := g.uniform(g.bounds.MaxLngOffset)
		if g.opts.Sampling == SamplingSquare || insideEllipse(latOffset, lngOffset, g.bounds) {
			return latOffset, lngOffset
		}
	}
}

// uniform возвращает значение из [-limit, +limit)
func (g *Generator) uniform(limit float64) float64 {
	return (g.rng.Float64()*2 - 1) * limit
}

func insideEllipse(latOffset, lngOffset float64, b Bounds) bool {
	x := latOffset / b.MaxLatOffset
	y := lngOffset / b.MaxLngOffset
	return x*x+y*y <= 1
}

func (g *Generator) pickType(lat float64) models.ReportType {
	if g.opts.Profile == ProfileCoastal && lat > g.opts.CoastlineLat && g.rng.Float64() < seaShare {
		return models.SeaReportTypes[g.rng.IntN(len(models.SeaReportTypes))]
	}
	return models.LandReportTypes[g.rng.IntN(len(models.LandReportTypes))]
}

func (g *Generator) ageLimit(t models.ReportType) float64 {
	if g.opts.Profile != ProfileCoastal {
		return maxAgeDays
	}
	switch t {
	case models.ReportTypeFlood, models.ReportTypeTrafficJam, models.ReportTypeCrime, models.ReportTypeTidalFlood:
		return shortLivedAgeDays
	default:
		return longLivedAgeDays
	}
}
