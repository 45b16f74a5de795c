package testinfra

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Schema mirrors the hawaii.sqlite tables.
const Schema = `
CREATE TABLE IF NOT EXISTS station (
  id        INTEGER PRIMARY KEY,
  station   TEXT,
  name      TEXT,
  latitude  FLOAT,
  longitude FLOAT,
  elevation FLOAT
);

CREATE TABLE IF NOT EXISTS measurement (
  id      INTEGER PRIMARY KEY,
  station TEXT,
  date    TEXT,
  prcp    FLOAT,
  tobs    FLOAT
);
`

const (
	ActiveStation = "USC001"
	QuietStation  = "USC002"
	IdleStation   = "USC003"

	MaxDate = "2017-08-23"
	// MinDate is MaxDate minus 52 weeks
	MinDate = "2016-08-24"
)

type StationRow struct {
	Station   string
	Name      string
	Latitude  float64
	Longitude float64
	Elevation float64
}

type MeasurementRow struct {
	Station string
	Date    string
	Prcp    *float64
	Tobs    float64
}

type Fixture struct {
	Stations     []StationRow
	Measurements []MeasurementRow
}

func Float(v float64) *float64 {
	return &v
}

// HawaiiFixture returns 100 rows for USC001 (4 of them around the 52 week boundary, 96 consecutive
// days ending on MaxDate), 5 rows for USC002 on 2017-01-01..05 with tobs 58..66 and no rows for USC003.
// Every date is unique and every 10th USC001 row has a null prcp.
func HawaiiFixture() Fixture {
	fixture := Fixture{
		Stations: []StationRow{
			{Station: ActiveStation, Name: "WAIKIKI 717.2, HI US", Latitude: 21.2716, Longitude: -157.8168, Elevation: 3},
			{Station: QuietStation, Name: "KANEOHE 838.1, HI US", Latitude: 21.4234, Longitude: -157.8015, Elevation: 14.6},
			{Station: IdleStation, Name: "KUALOA RANCH HEADQUARTERS 886.9, HI US", Latitude: 21.5213, Longitude: -157.8374, Elevation: 7},
		},
	}

	activeDates := []string{"2016-08-21", "2016-08-22", "2016-08-23", MinDate}
	last, _ := time.Parse("2006-01-02", MaxDate)
	for offset := 95; offset >= 0; offset-- {
		activeDates = append(activeDates, last.AddDate(0, 0, -offset).Format("2006-01-02"))
	}

	for i, date := range activeDates {
		var prcp *float64
		if i%10 != 0 {
			prcp = Float(float64(i) / 100)
		}
		fixture.Measurements = append(fixture.Measurements, MeasurementRow{
			Station: ActiveStation,
			Date:    date,
			Prcp:    prcp,
			Tobs:    float64(70 + i%7),
		})
	}

	for i, tobs := range []float64{58, 60, 62, 64, 66} {
		fixture.Measurements = append(fixture.Measurements, MeasurementRow{
			Station: QuietStation,
			Date:    time.Date(2017, time.January, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Prcp:    Float(float64(i) * 0.5),
			Tobs:    tobs,
		})
	}

	return fixture
}

// OpenSQLite opens an in-memory database with the climate schema.
// The pool is capped to one connection so every session sees the same memory database.
func OpenSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		t.Fatalf("exec schema: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	return db
}

// Load inserts the fixture rows in slice order, so row ids follow the slice.
// Placeholders are positional so both sqlite3 and postgres accept them.
func Load(t *testing.T, db *sql.DB, fixture Fixture) {
	t.Helper()

	for _, s := range fixture.Stations {
		if _, err := db.Exec(`INSERT INTO station (station, name, latitude, longitude, elevation) VALUES ($1, $2, $3, $4, $5)`,
			s.Station, s.Name, s.Latitude, s.Longitude, s.Elevation); err != nil {
			t.Fatalf("insert station %s: %v", s.Station, err)
		}
	}

	for _, m := range fixture.Measurements {
		if _, err := db.Exec(`INSERT INTO measurement (station, date, prcp, tobs) VALUES ($1, $2, $3, $4)`,
			m.Station, m.Date, m.Prcp, m.Tobs); err != nil {
			t.Fatalf("insert measurement %s/%s: %v", m.Station, m.Date, err)
		}
	}
}

// OpenHawaii is OpenSQLite followed by Load of HawaiiFixture
func OpenHawaii(t *testing.T) (*sql.DB, Fixture) {
	t.Helper()

	db := OpenSQLite(t)
	fixture := HawaiiFixture()
	Load(t, db, fixture)
	return db, fixture
}

// Temperatures returns the tobs of every row with start <= date (<= end when end is set)
func (f Fixture) Temperatures(start, end string) []float64 {
	var out []float64
	for _, m := range f.Measurements {
		if m.Date < start || (end != "" && m.Date > end) {
			continue
		}
		out = append(out, m.Tobs)
	}
	return out
}

// PrecipitationSince returns the prcp of station rows dated on or after from, in date order
func (f Fixture) PrecipitationSince(station, from string) []*float64 {
	var out []*float64
	for _, m := range f.Measurements {
		if m.Station == station && m.Date >= from {
			out = append(out, m.Prcp)
		}
	}
	return out
}
