package timetable

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/viper"

	"github.com/mmw1984/timetable/internal/models"
)

// Dataset holds the static schedule configuration. It is loaded once at
// startup and read-only afterwards.
type Dataset struct {
	CycleDays     int
	FridayVariant models.Variant
	DayCycles     map[string]int
	SpecialDates  map[string]string
	Timetables    map[models.Variant]models.TimetableDefinition
	Subjects      map[int]map[int]string
}

type fileTimetable struct {
	Variant  string             `mapstructure:"variant"`
	Assembly *models.TimeRange  `mapstructure:"assembly"`
	Periods  []models.TimeRange `mapstructure:"periods"`
	Breaks   []models.BreakDef  `mapstructure:"breaks"`
}

type fileDataset struct {
	CycleDays     int                          `mapstructure:"cycleDays"`
	FridayVariant string                       `mapstructure:"fridayVariant"`
	DayCycles     map[string]int               `mapstructure:"dayCycles"`
	SpecialDates  map[string]string            `mapstructure:"specialDates"`
	Timetables    []fileTimetable              `mapstructure:"timetables"`
	Subjects      map[string]map[string]string `mapstructure:"subjects"`
}

// LoadDataset reads and validates the schedule data file.
func LoadDataset(path string) (*Dataset, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var raw fileDataset
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	return buildDataset(raw)
}

func buildDataset(raw fileDataset) (*Dataset, error) {
	ds := &Dataset{
		CycleDays:     raw.CycleDays,
		DayCycles:     make(map[string]int, len(raw.DayCycles)),
		SpecialDates:  make(map[string]string, len(raw.SpecialDates)),
		Timetables:    make(map[models.Variant]models.TimetableDefinition, len(raw.Timetables)),
		Subjects:      make(map[int]map[int]string, len(raw.Subjects)),
		FridayVariant: models.VariantSpecialB,
	}
	if ds.CycleDays <= 0 {
		ds.CycleDays = 8
	}

	if raw.FridayVariant != "" {
		variant := models.Variant(raw.FridayVariant)
		if !isSpecialVariant(variant) && variant != models.VariantNormal {
			return nil, fmt.Errorf("fridayVariant %q is not a known variant", raw.FridayVariant)
		}
		ds.FridayVariant = variant
	}

	for date, cycle := range raw.DayCycles {
		if _, err := ParseDate(date); err != nil {
			return nil, fmt.Errorf("dayCycles: %w", err)
		}
		if cycle < 1 || cycle > ds.CycleDays {
			return nil, fmt.Errorf("dayCycles[%s]: cycle %d outside 1..%d", date, cycle, ds.CycleDays)
		}
		ds.DayCycles[date] = cycle
	}

	for date, tag := range raw.SpecialDates {
		if _, err := ParseDate(date); err != nil {
			return nil, fmt.Errorf("specialDates: %w", err)
		}
		if _, ok := models.VariantForTag(tag); !ok {
			return nil, fmt.Errorf("specialDates[%s]: unknown tag %q", date, tag)
		}
		ds.SpecialDates[date] = tag
	}

	for _, tt := range raw.Timetables {
		variant := models.Variant(tt.Variant)
		if variant != models.VariantNormal && !isSpecialVariant(variant) {
			return nil, fmt.Errorf("timetables: unknown variant %q", tt.Variant)
		}
		if _, dup := ds.Timetables[variant]; dup {
			return nil, fmt.Errorf("timetables: variant %q defined twice", tt.Variant)
		}
		def := models.TimetableDefinition{Assembly: tt.Assembly, Periods: tt.Periods, Breaks: tt.Breaks}
		if err := validateDefinition(string(variant), def); err != nil {
			return nil, err
		}
		ds.Timetables[variant] = def
	}

	for rawCycle, periods := range raw.Subjects {
		cycle, err := strconv.Atoi(rawCycle)
		if err != nil || cycle < 1 || cycle > ds.CycleDays {
			return nil, fmt.Errorf("subjects: invalid cycle key %q", rawCycle)
		}
		table := make(map[int]string, len(periods))
		for rawPeriod, subject := range periods {
			period, err := strconv.Atoi(rawPeriod)
			if err != nil || period < 1 {
				return nil, fmt.Errorf("subjects[%s]: invalid period key %q", rawCycle, rawPeriod)
			}
			table[period] = subject
		}
		ds.Subjects[cycle] = table
	}

	return ds, nil
}

// validateDefinition enforces the per-definition invariants: well-formed
// zero-padded times, start < end, and no overlap between assembly,
// periods and breaks. Touching boundaries are allowed.
func validateDefinition(name string, def models.TimetableDefinition) error {
	type span struct {
		label      string
		start, end string
	}
	var spans []span

	if def.Assembly != nil {
		spans = append(spans, span{"assembly", def.Assembly.Start, def.Assembly.End})
	}
	for i, p := range def.Periods {
		spans = append(spans, span{fmt.Sprintf("period %d", i+1), p.Start, p.End})
	}
	for _, b := range def.Breaks {
		if b.Name == "" {
			return fmt.Errorf("timetable %s: break without a name", name)
		}
		spans = append(spans, span{fmt.Sprintf("break %s", b.Name), b.Start, b.End})
	}

	for _, s := range spans {
		if !ValidClock(s.start) || !ValidClock(s.end) {
			return fmt.Errorf("timetable %s: %s has malformed time %q-%q", name, s.label, s.start, s.end)
		}
		if s.start >= s.end {
			return fmt.Errorf("timetable %s: %s does not satisfy start < end", name, s.label)
		}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return fmt.Errorf("timetable %s: %s overlaps %s", name, spans[i].label, spans[i-1].label)
		}
	}

	return nil
}

func isSpecialVariant(v models.Variant) bool {
	for _, s := range models.SpecialVariants {
		if v == s {
			return true
		}
	}
	return false
}
