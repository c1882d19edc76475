package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/npsups/pension-calculator/internal/domain"
	"github.com/npsups/pension-calculator/internal/paymatrix"
)

// iasSkipLevels are never landed on by an IAS promotion.
var iasSkipLevels = map[string]bool{"13A": true, "16": true}

// minimumStartLevel is the lowest entry level for the All India Services.
const minimumStartLevel = "10"

// CareerConfig parameterizes one career walk.
type CareerConfig struct {
	Matrix *paymatrix.Matrix

	Service           domain.ServiceType
	StartLevel        string
	StartYearInLevel  int
	PromotionSchedule []domain.PromotionStep
	CommissionYears   []int
	FitmentFactors    []decimal.Decimal

	Joining    time.Time
	Retirement time.Time

	Logger Logger
}

// Progress walks the career half-year by half-year from joining to
// retirement and returns the basic-pay series. Annual increments land on
// the second half of each year; commission resets and promotions land on
// the first half, the reset rebasing the matrix before the promotion reads
// it. Events sharing a period apply in kind order.
func Progress(cfg CareerConfig) ([]domain.PayPoint, error) {
	if cfg.Logger == nil {
		cfg.Logger = NopLogger{}
	}
	if cfg.Matrix == nil {
		return nil, fmt.Errorf("%w: pay matrix", ErrMissingParameter)
	}
	if err := validateCareer(&cfg); err != nil {
		return nil, err
	}

	schedule := cfg.PromotionSchedule
	if len(schedule) == 0 {
		schedule = domain.DefaultPromotionSchedule()
		cfg.Logger.Debugf("no promotion schedule supplied, using the default %d-step schedule", len(schedule))
	}
	for i, step := range schedule {
		if step.YearsInLevel <= 0 {
			return nil, fmt.Errorf("%w: promotion step %d has non-positive duration %d",
				ErrInvalidSchedule, i+1, step.YearsInLevel)
		}
		if step.TargetLevel != "" && !cfg.Matrix.HasLevel(step.TargetLevel) {
			return nil, fmt.Errorf("%w: promotion step %d targets unknown level %s",
				ErrInvalidSchedule, i+1, step.TargetLevel)
		}
	}

	// Promotions fall due on the first half of joining-year + cumulative
	// schedule durations.
	dueYears := make(map[int]domain.PromotionStep, len(schedule))
	due := cfg.Joining.Year()
	for _, step := range schedule {
		due += step.YearsInLevel
		dueYears[due] = step
	}

	commissions := make(map[int]int, len(cfg.CommissionYears))
	for i, y := range cfg.CommissionYears {
		commissions[y] = i
	}

	start := domain.PeriodOf(cfg.Joining)
	end := domain.PeriodOf(cfg.Retirement)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: retirement %s precedes joining %s",
			ErrInvalidSchedule, end, start)
	}

	matrix := cfg.Matrix
	level := cfg.StartLevel
	yearInLevel := cfg.StartYearInLevel
	basic, err := matrix.BasicPay(level, yearInLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	var points []domain.PayPoint
	for p := start; !p.After(end); p = p.Next() {
		events := eventsFor(p, start, dueYears, commissions)

		for _, ev := range events {
			switch ev.Kind {
			case domain.EventCommissionReset:
				factor := cfg.FitmentFactors[commissions[p.Year]]
				matrix = matrix.ApplyFitment(factor)
				basic, err = matrix.BasicPay(level, yearInLevel)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
				}
				cfg.Logger.Debugf("%s: pay commission fitment %s, level %s basic %s",
					p, factor, level, basic)

			case domain.EventPromotion:
				level, yearInLevel, basic, err = promote(matrix, level, yearInLevel,
					dueYears[p.Year].TargetLevel, cfg.Service, cfg.Logger)
				if err != nil {
					return nil, err
				}
				cfg.Logger.Debugf("%s: promoted to level %s year %d, basic %s",
					p, level, yearInLevel, basic)

			case domain.EventAnnualIncrement:
				yearInLevel++
				basic, err = matrix.BasicPay(level, yearInLevel)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
				}
			}
		}

		points = append(points, domain.PayPoint{
			Period:       p,
			Level:        level,
			YearInLevel:  yearInLevel,
			BasicPay:     basic,
			ServiceYears: float64(domain.HalvesBetween(start, p)) / 2,
			Events:       events,
		})
	}

	return points, nil
}

func validateCareer(cfg *CareerConfig) error {
	if !cfg.Matrix.HasLevel(cfg.StartLevel) {
		return fmt.Errorf("%w: starting level %s not in pay matrix", ErrInvalidSchedule, cfg.StartLevel)
	}
	if cfg.StartYearInLevel < 1 {
		return fmt.Errorf("%w: starting year in level %d", ErrInvalidSchedule, cfg.StartYearInLevel)
	}
	if len(cfg.FitmentFactors) != len(cfg.CommissionYears) {
		return fmt.Errorf("%w: %d fitment factors for %d commission years",
			ErrMissingParameter, len(cfg.FitmentFactors), len(cfg.CommissionYears))
	}
	if cfg.Service == domain.ServiceIAS || cfg.Service == domain.ServiceAllIndia {
		if cfg.Matrix.HasLevel(minimumStartLevel) && levelIndex(cfg.Matrix, cfg.StartLevel) < levelIndex(cfg.Matrix, minimumStartLevel) {
			return fmt.Errorf("%w: %s recruits start at level %s or above, got %s",
				ErrInvalidSchedule, cfg.Service, minimumStartLevel, cfg.StartLevel)
		}
	}
	return nil
}

// eventsFor lists the pay events due in a period, sorted by precedence.
func eventsFor(p, start domain.Period, due map[int]domain.PromotionStep, commissions map[int]int) []domain.CareerEvent {
	var events []domain.CareerEvent
	if p.Half == domain.H2 {
		// The annual increment needs at least half a year of service.
		if domain.HalvesBetween(start, p) >= 1 {
			events = append(events, domain.CareerEvent{Period: p, Kind: domain.EventAnnualIncrement})
		}
		return events
	}
	if _, ok := commissions[p.Year]; ok {
		events = append(events, domain.CareerEvent{Period: p, Kind: domain.EventCommissionReset})
	}
	if _, ok := due[p.Year]; ok {
		events = append(events, domain.CareerEvent{Period: p, Kind: domain.EventPromotion})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Kind < events[j].Kind })
	return events
}

// promote moves to the next level with pay protection: pay is first stepped
// one increment in the old level, then the employee lands on the first cell
// of the new level at or above the stepped pay. IAS promotions out of
// levels 10 through 12 advance two further cells.
func promote(matrix *paymatrix.Matrix, level string, yearInLevel int, target string,
	service domain.ServiceType, logger Logger) (string, int, decimal.Decimal, error) {

	steppedPay, err := matrix.BasicPay(level, yearInLevel+1)
	if err != nil {
		return "", 0, decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	next := target
	if next == "" {
		var skip map[string]bool
		if service == domain.ServiceIAS {
			skip = iasSkipLevels
		}
		next, err = matrix.LevelAfter(level, skip)
		if err != nil {
			// Already at the top of the matrix; the promotion lapses.
			logger.Warnf("promotion skipped: no level above %s", level)
			basic, berr := matrix.BasicPay(level, yearInLevel)
			return level, yearInLevel, basic, berr
		}
	} else if levelIndex(matrix, next) <= levelIndex(matrix, level) {
		return "", 0, decimal.Zero, fmt.Errorf("%w: target level %s not above %s",
			ErrInvalidSchedule, next, level)
	}

	newYear, basic, err := matrix.CellAtOrAbove(next, steppedPay)
	if err != nil {
		return "", 0, decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if service == domain.ServiceIAS && (level == "10" || level == "11" || level == "12") {
		cells, _ := matrix.Cells(next)
		newYear += 2
		if newYear > cells {
			newYear = cells
		}
		basic, err = matrix.BasicPay(next, newYear)
		if err != nil {
			return "", 0, decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
	}

	return next, newYear, basic, nil
}

func levelIndex(matrix *paymatrix.Matrix, level string) int {
	for i, lvl := range matrix.Levels() {
		if lvl == level {
			return i
		}
	}
	return -1
}
