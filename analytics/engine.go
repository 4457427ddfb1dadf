package analytics

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"focusmate/api/models"
	"focusmate/api/store"
)

// maxSites caps the per-report site breakdown.
const maxSites = 10

// Engine derives daily productivity reports from the activity store.
type Engine struct {
	store *store.ActivityStore
	now   func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewEngine(s *store.ActivityStore) *Engine {
	return &Engine{
		store: s,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// TodayReport builds the productivity summary for one user's current day.
// A user with no data gets a zeroed report, never an error. Any unexpected
// internal failure degrades to a zeroed report carrying the failure text in
// its error field, so the transport layer always has something well-formed
// to render.
func (e *Engine) TodayReport(user string) (report models.Report) {
	defer func() {
		if r := recover(); r != nil {
			report = models.Report{
				Quote:  fallbackQuote,
				BySite: []models.SiteMinutes{},
				Error:  fmt.Sprintf("failed to compute report: %v", r),
			}
		}
	}()

	data := e.store.Snapshot()
	now := e.now()
	today := now.Format(models.DateFormat)
	yesterday := now.AddDate(0, 0, -1).Format(models.DateFormat)

	record := data[today][user]
	prodMinutes, unprodMinutes := minutes(record)
	totalMinutes := prodMinutes + unprodMinutes

	percent := 0.0
	if totalMinutes > 0 {
		percent = round1(float64(prodMinutes) / float64(totalMinutes) * 100)
	}

	// Delta is only defined when yesterday has at least one full minute of
	// classified activity. Yesterday's percent stays unrounded here.
	var delta *float64
	if yRecord := data[yesterday][user]; yRecord != nil {
		yProd, yUnprod := minutes(yRecord)
		if yTotal := yProd + yUnprod; yTotal > 0 {
			yPercent := float64(yProd) / float64(yTotal) * 100
			d := round1(percent - yPercent)
			delta = &d
		}
	}

	return models.Report{
		ProductiveMinutes:   prodMinutes,
		UnproductiveMinutes: unprodMinutes,
		ProductivityPercent: percent,
		DeltaVsYesterday:    delta,
		Quote:               e.quote(),
		BySite:              topSites(record),
	}
}

// quote picks one motivational line. The rand source is guarded because
// reports can be requested concurrently.
func (e *Engine) quote() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return motivationalQuotes[e.rng.Intn(len(motivationalQuotes))]
}

// minutes converts a record's classified seconds to whole minutes, rounding
// down. A nil record counts as zero activity.
func minutes(record *models.DayUserRecord) (productive, unproductive int64) {
	if record == nil {
		return 0, 0
	}
	return record.Productive / 60, record.Unproductive / 60
}

// topSites ranks a record's hosts by whole minutes spent, dropping hosts
// under a minute and truncating to maxSites. Equal-minute hosts order by
// name so rankings are stable run to run.
func topSites(record *models.DayUserRecord) []models.SiteMinutes {
	sites := make([]models.SiteMinutes, 0)
	if record == nil {
		return sites
	}

	for host, seconds := range record.Sites {
		m := seconds / 60
		if m == 0 {
			continue
		}
		sites = append(sites, models.SiteMinutes{Host: host, Minutes: m})
	}

	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Minutes != sites[j].Minutes {
			return sites[i].Minutes > sites[j].Minutes
		}
		return sites[i].Host < sites[j].Host
	})

	if len(sites) > maxSites {
		sites = sites[:maxSites]
	}
	return sites
}

// round1 rounds to one decimal place with ties going to the even digit, so
// an exact 6.25 percent reports as 6.2.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
