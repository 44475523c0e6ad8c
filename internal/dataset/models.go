package dataset

import (
	"github.com/camclean/camclean/internal/table"
)

// Column names of the cleaned table. The raw names are the exact keys
// expected in the input; the cleaned names carry the unit in the
// suffix.
const (
	ColModel       = "Model"
	ColWeight      = "Weight"
	ColISO         = "ISO"
	ColMinShutter  = "Min. shutter speed"
	ColMaxShutter  = "Max. shutter speed"
	ColExposure    = "Exposure Compensation"
	ColScreenRes   = "Screen resolution"
	ColScreenSize  = "Screen size"
	ColNormalFocus = "Normal focus range"
	ColMacroFocus  = "Macro focus range"
	ColMaxAperture = "Max aperture"
	ColDimensions  = "Dimensions"
	ColVideoRes    = "Max. video resolution"
	ColTotalMP     = "Total megapixels"
	ColEffectiveMP = "Effective megapixels"
	ColMegapixels  = "Megapixels"
	ColCropFactor  = "Crop factor"

	ColWeightG       = "Weight_g"
	ColMaxISO        = "Max_ISO"
	ColMinShutterSec = "Min_Shutter_Speed_Sec"
	ColMaxShutterSec = "Max_Shutter_Speed_Sec"
	ColMaxExposure   = "Max_Exposure_Comp"
	ColScreenDots    = "Screen_Res_Dots"
	ColScreenInches  = "Screen_Size_in"
	ColNormalFocusCm = "Normal_Focus_cm"
	ColMacroFocusCm  = "Macro_Focus_cm"
	ColMinApertureF  = "Min_Aperture_F"
	ColDimL          = "Dim_L"
	ColDimW          = "Dim_W"
	ColDimH          = "Dim_H"
	ColSupports4K    = "Supports_4K"
	ColApertureValue = "Aperture_Value"
	ColPortability   = "Portability_Score"
	ColLowLight      = "LowLight_Score"
	ColVideo         = "Video_Score"
)

// CleanRecord is the typed form of one cleaned camera row, used by the
// Parquet and sqlite sinks. Pointer fields are optional: nil marks a
// value that could not be extracted.
type CleanRecord struct {
	Model            string   `json:"model" parquet:"model"`
	WeightG          *float64 `json:"weight_g" parquet:"weight_g,optional"`
	MaxISO           *float64 `json:"max_iso" parquet:"max_iso,optional"`
	MinShutterSec    *float64 `json:"min_shutter_speed_sec" parquet:"min_shutter_speed_sec,optional"`
	MaxShutterSec    *float64 `json:"max_shutter_speed_sec" parquet:"max_shutter_speed_sec,optional"`
	MaxExposureComp  *float64 `json:"max_exposure_comp" parquet:"max_exposure_comp,optional"`
	ScreenResDots    *float64 `json:"screen_res_dots" parquet:"screen_res_dots,optional"`
	ScreenSizeIn     *float64 `json:"screen_size_in" parquet:"screen_size_in,optional"`
	NormalFocusCm    *float64 `json:"normal_focus_cm" parquet:"normal_focus_cm,optional"`
	MacroFocusCm     *float64 `json:"macro_focus_cm" parquet:"macro_focus_cm,optional"`
	MinApertureF     *float64 `json:"min_aperture_f" parquet:"min_aperture_f,optional"`
	DimL             *float64 `json:"dim_l" parquet:"dim_l,optional"`
	DimW             *float64 `json:"dim_w" parquet:"dim_w,optional"`
	DimH             *float64 `json:"dim_h" parquet:"dim_h,optional"`
	Supports4K       bool     `json:"supports_4k" parquet:"supports_4k"`
	TotalMegapixels  *float64 `json:"total_megapixels" parquet:"total_megapixels,optional"`
	EffectiveMP      *float64 `json:"effective_megapixels" parquet:"effective_megapixels,optional"`
	Megapixels       *float64 `json:"megapixels" parquet:"megapixels,optional"`
	CropFactor       *float64 `json:"crop_factor" parquet:"crop_factor,optional"`
	ApertureValue    *float64 `json:"aperture_value" parquet:"aperture_value,optional"`
	PortabilityScore float64  `json:"portability_score" parquet:"portability_score"`
	LowLightScore    float64  `json:"lowlight_score" parquet:"lowlight_score"`
	VideoScore       float64  `json:"video_score" parquet:"video_score"`
}

// RecordsFromTable converts a cleaned table into typed records, one
// per row.
func RecordsFromTable(t *table.Table) []CleanRecord {
	recs := make([]CleanRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rec := CleanRecord{
			WeightG:         numPtr(t.Cell(i, ColWeightG)),
			MaxISO:          numPtr(t.Cell(i, ColMaxISO)),
			MinShutterSec:   numPtr(t.Cell(i, ColMinShutterSec)),
			MaxShutterSec:   numPtr(t.Cell(i, ColMaxShutterSec)),
			MaxExposureComp: numPtr(t.Cell(i, ColMaxExposure)),
			ScreenResDots:   numPtr(t.Cell(i, ColScreenDots)),
			ScreenSizeIn:    numPtr(t.Cell(i, ColScreenInches)),
			NormalFocusCm:   numPtr(t.Cell(i, ColNormalFocusCm)),
			MacroFocusCm:    numPtr(t.Cell(i, ColMacroFocusCm)),
			MinApertureF:    numPtr(t.Cell(i, ColMinApertureF)),
			DimL:            numPtr(t.Cell(i, ColDimL)),
			DimW:            numPtr(t.Cell(i, ColDimW)),
			DimH:            numPtr(t.Cell(i, ColDimH)),
			TotalMegapixels: numPtr(t.Cell(i, ColTotalMP)),
			EffectiveMP:     numPtr(t.Cell(i, ColEffectiveMP)),
			Megapixels:      numPtr(t.Cell(i, ColMegapixels)),
			CropFactor:      numPtr(t.Cell(i, ColCropFactor)),
			ApertureValue:   numPtr(t.Cell(i, ColApertureValue)),
		}
		if s, ok := t.Cell(i, ColModel).Text(); ok {
			rec.Model = s
		}
		if v := t.Cell(i, ColSupports4K); v.Kind == table.KindBool {
			rec.Supports4K = v.Bool
		}
		if f, ok := t.Cell(i, ColPortability).Float(); ok {
			rec.PortabilityScore = f
		}
		if f, ok := t.Cell(i, ColLowLight).Float(); ok {
			rec.LowLightScore = f
		}
		if f, ok := t.Cell(i, ColVideo).Float(); ok {
			rec.VideoScore = f
		}
		recs = append(recs, rec)
	}
	return recs
}

func numPtr(v table.Value) *float64 {
	f, ok := v.Float()
	if !ok {
		return nil
	}
	return &f
}
