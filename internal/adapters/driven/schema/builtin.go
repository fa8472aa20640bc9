package schema

import (
	"fmt"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

// CategoryOf classifies a SEED blockette number by its control header:
// volume index (010–012), abbreviation dictionary (030–048) or station
// (050–062).
func CategoryOf(gt domain.GroupType) domain.Category {
	switch {
	case gt >= 10 && gt <= 12:
		return domain.CategoryHeader
	case gt >= 30 && gt <= 48:
		return domain.CategoryLookup
	case gt >= 50 && gt <= 62:
		return domain.CategoryEntity
	default:
		return domain.CategoryUnknown
	}
}

func scalar(id int, name string, length int, def string) domain.FieldDescriptor {
	return domain.FieldDescriptor{ID: id, Name: name, Kind: domain.FieldFixed, Length: length, Default: def}
}

func number(id int, name string, length int) domain.FieldDescriptor {
	return scalar(id, name, length, "0")
}

func text(id int, name string, length int) domain.FieldDescriptor {
	return domain.FieldDescriptor{ID: id, Name: name, Kind: domain.FieldVariable, Length: length}
}

// Loop capacities. rdseed writes one RESP line per repetition, so each loop
// needs room for the longest run seen in practice; unused repetitions are
// defaulted.
const (
	indexEntries   = 64
	decoderKeys    = 16
	polesZeros     = 64
	coefficients   = 512
	responsePoints = 256
	corners        = 16
	calibrations   = 16
	responseStages = 32
	// Values bind to the first free slot, so a nested loop only stays
	// aligned with its stage when every stage fills it.
	stageResponses    = 1
	polynomialEntries = 32
)

func loop(name string, repeat int, fields ...domain.FieldDescriptor) domain.FieldDescriptor {
	return domain.FieldDescriptor{Name: name, Kind: domain.FieldLoop, Repeat: repeat, Fields: fields}
}

// blockette builds a template led by the type and length fields every
// blockette carries.
func blockette(gt domain.GroupType, name string, fields ...domain.FieldDescriptor) domain.Template {
	all := make([]domain.FieldDescriptor, 0, len(fields)+2)
	all = append(all,
		scalar(1, "Blockette type", 3, fmt.Sprintf("%03d", int(gt))),
		number(2, "Length of blockette", 4),
	)
	all = append(all, fields...)
	return domain.Template{Type: gt, Name: name, Category: CategoryOf(gt), Fields: all}
}

func builtinTemplates() []domain.Template {
	return []domain.Template{
		blockette(10, "Volume Identifier",
			scalar(3, "Version of format", 4, "2.4"),
			scalar(4, "Logical record length", 2, "12"),
			text(5, "Beginning time", 22),
			text(6, "End time", 22),
			text(7, "Volume time", 22),
			text(8, "Originating organization", 80),
			text(9, "Label", 80),
		),
		blockette(11, "Volume Station Header Index",
			number(3, "Number of stations", 3),
			loop("Station identifier", indexEntries,
				scalar(4, "Station identifier code", 5, ""),
				number(5, "Sequence no. of station header", 6),
			),
		),
		blockette(12, "Volume Timespan Index",
			number(3, "Number of spans in table", 4),
			loop("Timespan", indexEntries,
				text(4, "Beginning of span", 22),
				text(5, "End of span", 22),
				number(6, "Sequence no. of time span header", 6),
			),
		),
		blockette(30, "Data Format Dictionary",
			text(3, "Short descriptive name", 50),
			number(4, "Data format identifier code", 4),
			number(5, "Data family type", 3),
			number(6, "Number of decoder keys", 2),
			loop("Decoder keys", decoderKeys,
				text(7, "Decoder keys", 9999),
			),
		),
		blockette(31, "Comment Description",
			number(3, "Comment code key", 4),
			scalar(4, "Comment class code", 1, ""),
			text(5, "Description of comment", 70),
			number(6, "Units of comment level", 3),
		),
		blockette(33, "Generic Abbreviation",
			number(3, "Abbreviation lookup code", 3),
			text(4, "Abbreviation description", 50),
		),
		blockette(34, "Units Abbreviations",
			number(3, "Unit lookup code", 3),
			text(4, "Unit name", 20),
			text(5, "Unit description", 50),
		),
		blockette(50, "Station Identifier",
			scalar(3, "Station call letters", 5, ""),
			number(4, "Latitude", 10),
			number(5, "Longitude", 11),
			number(6, "Elevation", 7),
			number(7, "Number of channels", 4),
			number(8, "Number of station comments", 3),
			text(9, "Site name", 60),
			number(10, "Network identifier code", 3),
			scalar(11, "32 bit word order", 4, "3210"),
			scalar(12, "16 bit word order", 2, "10"),
			text(13, "Start effective date", 22),
			text(14, "End effective date", 22),
			scalar(15, "Update flag", 1, "N"),
			scalar(16, "Network Code", 2, ""),
		),
		blockette(51, "Station Comment",
			text(3, "Beginning of effective time", 22),
			text(4, "End effective time", 22),
			number(5, "Comment code key", 4),
			number(6, "Comment level", 6),
		),
		blockette(52, "Channel Identifier",
			scalar(3, "Location identifier", 2, ""),
			scalar(4, "Channel identifier", 3, ""),
			number(5, "Subchannel identifier", 4),
			number(6, "Instrument identifier", 3),
			text(7, "Optional comment", 30),
			number(8, "Units of signal response", 3),
			number(9, "Units of calibration input", 3),
			number(10, "Latitude", 10),
			number(11, "Longitude", 11),
			number(12, "Elevation", 7),
			number(13, "Local depth", 5),
			number(14, "Azimuth", 5),
			number(15, "Dip", 5),
			number(16, "Data format identifier code", 4),
			number(17, "Data record length", 2),
			number(18, "Sample rate", 10),
			number(19, "Max clock drift", 10),
			number(20, "Number of comments", 4),
			text(21, "Channel flags", 26),
			text(22, "Start date", 22),
			text(23, "End date", 22),
			scalar(24, "Update flag", 1, "N"),
		),
		blockette(53, "Response Poles and Zeros",
			scalar(3, "Transfer function types", 1, "A"),
			number(4, "Stage sequence number", 2),
			number(5, "Stage signal input units", 3),
			number(6, "Stage signal output units", 3),
			number(7, "A0 normalization factor", 12),
			number(8, "Normalization frequency", 12),
			number(9, "Number of complex zeros", 3),
			loop("Complex zeros", polesZeros,
				number(10, "Real zero", 12),
				number(11, "Imaginary zero", 12),
				number(12, "Real zero error", 12),
				number(13, "Imaginary zero error", 12),
			),
			number(14, "Number of complex poles", 3),
			loop("Complex poles", polesZeros,
				number(15, "Real pole", 12),
				number(16, "Imaginary pole", 12),
				number(17, "Real pole error", 12),
				number(18, "Imaginary pole error", 12),
			),
		),
		blockette(54, "Response Coefficients",
			scalar(3, "Response type", 1, "D"),
			number(4, "Stage sequence number", 2),
			number(5, "Signal input units", 3),
			number(6, "Signal output units", 3),
			number(7, "Number of numerators", 4),
			loop("Numerators", coefficients,
				number(8, "Numerator coefficient", 12),
				number(9, "Numerator error", 12),
			),
			number(10, "Number of denominators", 4),
			loop("Denominators", coefficients,
				number(11, "Denominator coefficient", 12),
				number(12, "Denominator error", 12),
			),
		),
		blockette(55, "Response List",
			number(3, "Stage sequence number", 2),
			number(4, "Signal input units", 3),
			number(5, "Signal output units", 3),
			number(6, "Number of responses listed", 4),
			loop("Responses", responsePoints,
				number(7, "Frequency", 12),
				number(8, "Amplitude", 12),
				number(9, "Amplitude error", 12),
				number(10, "Phase angle", 12),
				number(11, "Phase error", 12),
			),
		),
		blockette(56, "Generic Response",
			number(3, "Stage sequence number", 2),
			number(4, "Signal input units", 3),
			number(5, "Signal output units", 3),
			number(6, "Number of corners listed", 4),
			loop("Corners", corners,
				number(7, "Corner frequency", 12),
				number(8, "Corner slope", 12),
			),
		),
		blockette(57, "Decimation",
			number(3, "Stage sequence number", 2),
			number(4, "Input sample rate", 10),
			number(5, "Decimation factor", 5),
			number(6, "Decimation offset", 5),
			number(7, "Estimated delay", 11),
			number(8, "Correction applied", 11),
		),
		blockette(58, "Channel Sensitivity Gain",
			number(3, "Stage sequence number", 2),
			number(4, "Sensitivity gain", 12),
			number(5, "Frequency", 12),
			number(6, "Number of history values", 2),
			loop("History", calibrations,
				number(7, "Sensitivity for calibration", 12),
				number(8, "Frequency of calibration sensitivity", 12),
				text(9, "Time of above calibration", 22),
			),
		),
		blockette(59, "Channel Comment",
			text(3, "Beginning of effective time", 22),
			text(4, "End effective time", 22),
			number(5, "Comment code key", 4),
			number(6, "Comment level", 6),
		),
		blockette(60, "Response Reference",
			number(3, "Number of stages", 2),
			loop("Stages", responseStages,
				number(4, "Stage sequence number", 2),
				number(5, "Number of responses", 2),
				loop("Responses", stageResponses,
					number(6, "Response lookup key", 4),
				),
			),
		),
		blockette(61, "FIR Response",
			number(3, "Stage sequence number", 2),
			text(4, "Response Name", 25),
			scalar(5, "Symmetry Code", 1, "A"),
			number(6, "Signal In Units", 3),
			number(7, "Signal Out Units", 3),
			number(8, "Number of Coefficients", 4),
			loop("Coefficients", coefficients,
				number(9, "FIR Coefficient", 14),
			),
		),
		blockette(62, "Response Polynomial",
			scalar(3, "Transfer Function Type", 1, "P"),
			number(4, "Stage Sequence Number", 2),
			number(5, "Stage Signal In Units", 3),
			number(6, "Stage Signal Out Units", 3),
			scalar(7, "Polynomial Approximation Type", 1, "M"),
			scalar(8, "Valid Frequency Units", 1, "B"),
			number(9, "Lower Valid Frequency Bound", 12),
			number(10, "Upper Valid Frequency Bound", 12),
			number(11, "Lower Bound of Approximation", 12),
			number(12, "Upper Bound of Approximation", 12),
			number(13, "Maximum Absolute Error", 12),
			number(14, "Number of Polynomial Coefficients", 3),
			loop("Coefficients", polynomialEntries,
				number(15, "Polynomial Coefficient", 12),
				number(16, "Polynomial Coefficient Error", 12),
			),
		),
	}
}
