// Package schema provides the database models of the transcription
// schema. The tables mirror the layout of the reference observation
// schema so the reconciliation layer can address both with generated
// SQL that differs only in schema-specific traits.
package schema

import (
	"database/sql"
	"time"
)

// Species is one entry of the species vocabulary. Names come in up to
// three languages; historical imports often fill only the German one.
type Species struct {
	SpeciesID      int           `gorm:"primaryKey;autoIncrement:false"`
	SpeciesNameDe  string        `gorm:"type:varchar(255);index"`
	SpeciesNameEn  string        `gorm:"type:varchar(255)"`
	SpeciesNameLa  string        `gorm:"type:varchar(255);index"`
	SpeciesGroupID sql.NullInt32 `gorm:"type:int"`
}

// TableName satisfies the gorm naming convention override.
func (Species) TableName() string { return "dwd_species" }

// SpeciesGroup is the coarse taxonomic grouping of the vocabulary.
type SpeciesGroup struct {
	SpeciesGroupID int    `gorm:"primaryKey;autoIncrement:false"`
	GroupName      string `gorm:"type:varchar(100)"`
}

func (SpeciesGroup) TableName() string { return "dwd_species_group" }

// Phase is one phenological phase of the observation vocabulary.
type Phase struct {
	PhaseID   int    `gorm:"primaryKey;autoIncrement:false"`
	PhaseName string `gorm:"type:varchar(255)"`
}

func (Phase) TableName() string { return "dwd_phase" }

// Station is a named observation site. The transcription schema keys
// stations by a deterministic UUID derived from the station
// description, so re-imports are idempotent.
type Station struct {
	StationID   string  `gorm:"type:uuid;primaryKey;autoIncrement:false"`
	StationName string  `gorm:"type:varchar(255);index"`
	Description string  `gorm:"type:text"`
	Lat         float64 `gorm:"type:double precision"`
	Lon         float64 `gorm:"type:double precision"`
}

func (Station) TableName() string { return "dwd_station" }

// Observation is one phenological observation: a species reached a
// phase at a station on a day of a reference year.
type Observation struct {
	ObservationID  string        `gorm:"type:uuid;primaryKey;autoIncrement:false"`
	SpeciesID      int           `gorm:"index:idx_obs_species"`
	PhaseID        int           `gorm:"index:idx_obs_phase"`
	StationID      string        `gorm:"type:uuid;index:idx_obs_station"`
	ReferenceYear  int           `gorm:"index:idx_obs_year"`
	DayOfYear      int           `gorm:"type:smallint"`
	QualityLevelID sql.NullInt32 `gorm:"type:smallint"`
	QualityByteID  sql.NullInt32 `gorm:"type:smallint"`
	CreatedAt      time.Time     `gorm:"type:timestamp without time zone"`
}

func (Observation) TableName() string { return "dwd_observation" }

// QualityLevel describes the checking regime an observation passed.
type QualityLevel struct {
	QualityLevelID int    `gorm:"primaryKey;autoIncrement:false"`
	Description    string `gorm:"type:varchar(255)"`
}

func (QualityLevel) TableName() string { return "dwd_quality_level" }

// QualityByte is the per-observation quality flag vocabulary.
type QualityByte struct {
	QualityByteID int    `gorm:"primaryKey;autoIncrement:false"`
	Description   string `gorm:"type:varchar(255)"`
}

func (QualityByte) TableName() string { return "dwd_quality_byte" }

// About holds dataset-level metadata shown by the API overview.
type About struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false"`
	Title       string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	UpdatedAt   time.Time
}

func (About) TableName() string { return "dwd_about" }
