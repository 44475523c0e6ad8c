// Package storage persists cleaned camera records to sqlite for ad-hoc
// querying of a run's output.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/camclean/camclean/internal/dataset"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS cameras (
  id INTEGER PRIMARY KEY,
  model TEXT,
  weight_g REAL,
  max_iso REAL,
  min_shutter_speed_sec REAL,
  max_shutter_speed_sec REAL,
  max_exposure_comp REAL,
  screen_res_dots REAL,
  screen_size_in REAL,
  normal_focus_cm REAL,
  macro_focus_cm REAL,
  min_aperture_f REAL,
  dim_l REAL,
  dim_w REAL,
  dim_h REAL,
  supports_4k INTEGER NOT NULL,
  total_megapixels REAL,
  effective_megapixels REAL,
  megapixels REAL,
  crop_factor REAL,
  aperture_value REAL,
  portability_score REAL NOT NULL,
  lowlight_score REAL NOT NULL,
  video_score REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cameras_model ON cameras(model);
`
	_, err := d.conn.Exec(schema)
	return err
}

// ReplaceCameras overwrites the cameras table with the given records.
func (d *DB) ReplaceCameras(recs []dataset.CleanRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM cameras`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO cameras (
  model, weight_g, max_iso, min_shutter_speed_sec, max_shutter_speed_sec,
  max_exposure_comp, screen_res_dots, screen_size_in, normal_focus_cm,
  macro_focus_cm, min_aperture_f, dim_l, dim_w, dim_h, supports_4k,
  total_megapixels, effective_megapixels, megapixels, crop_factor,
  aperture_value, portability_score, lowlight_score, video_score
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range recs {
		if _, err := stmt.Exec(
			rec.Model, rec.WeightG, rec.MaxISO, rec.MinShutterSec, rec.MaxShutterSec,
			rec.MaxExposureComp, rec.ScreenResDots, rec.ScreenSizeIn, rec.NormalFocusCm,
			rec.MacroFocusCm, rec.MinApertureF, rec.DimL, rec.DimW, rec.DimH, rec.Supports4K,
			rec.TotalMegapixels, rec.EffectiveMP, rec.Megapixels, rec.CropFactor,
			rec.ApertureValue, rec.PortabilityScore, rec.LowLightScore, rec.VideoScore,
		); err != nil {
			return fmt.Errorf("failed to insert camera %q: %w", rec.Model, err)
		}
	}

	return tx.Commit()
}
