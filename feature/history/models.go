package history

import "time"

// Run is one recorded comparison run.
type Run struct {
	// ID is the run's UUID.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// File1 and File2 are the compared input files (base names).
	File1 string `gorm:"size:255" json:"file1"`
	File2 string `gorm:"size:255" json:"file2"`

	// Matched counts keys present in both files.
	Matched int `json:"matched"`
	// MissingInFirst counts keys present only in the second file.
	MissingInFirst int `json:"missing_in_first"`
	// MissingInSecond counts keys present only in the first file.
	MissingInSecond int `json:"missing_in_second"`

	// DurationMS is the wall-clock duration of the run in milliseconds.
	DurationMS int64 `json:"duration_ms"`

	// Archived tells whether the report artifacts were uploaded to storage.
	Archived bool `json:"archived"`

	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for GORM.
func (Run) TableName() string {
	return "comparison_runs"
}
