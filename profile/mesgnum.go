// Package profile is the hand-written stand-in for the profile façade
// (spec.md §4.6, component C5). In a full toolchain this catalog — the
// global-message-number table, per-message expected field numbers, and
// enum value sets — is generated from the vendor's FIT SDK profile
// workbook; that spreadsheet parser and code generator are out of scope
// (spec.md §1), so the catalog below is written directly, covering a
// representative subset of real FIT messages rather than the SDK's full
// set.
package profile

// MesgNum is a FIT global message number (spec.md glossary).
type MesgNum uint16

// A representative subset of the FIT SDK's documented global message
// numbers.
const (
	MesgNumFileId           MesgNum = 0
	MesgNumDeviceInfo       MesgNum = 23
	MesgNumEvent            MesgNum = 21
	MesgNumRecord           MesgNum = 20
	MesgNumLap              MesgNum = 19
	MesgNumSession          MesgNum = 18
	MesgNumActivity         MesgNum = 34
	MesgNumFileCreator      MesgNum = 49
	MesgNumFieldDescription MesgNum = 206
	MesgNumDeveloperDataId  MesgNum = 207
)

func (m MesgNum) String() string {
	switch m {
	case MesgNumFileId:
		return "file_id"
	case MesgNumDeviceInfo:
		return "device_info"
	case MesgNumEvent:
		return "event"
	case MesgNumRecord:
		return "record"
	case MesgNumLap:
		return "lap"
	case MesgNumSession:
		return "session"
	case MesgNumActivity:
		return "activity"
	case MesgNumFileCreator:
		return "file_creator"
	case MesgNumFieldDescription:
		return "field_description"
	case MesgNumDeveloperDataId:
		return "developer_data_id"
	default:
		return "unknown"
	}
}

// Manufacturer-specific message range (spec.md glossary), the FIT SDK's
// documented MfgRangeMin/MfgRangeMax constants.
const (
	MfgRangeMin uint16 = 0xFF00
	MfgRangeMax uint16 = 0xFFFE
)

// IsKnownMessage reports whether num is a documented global message number
// in this catalog.
func IsKnownMessage(num uint16) bool {
	_, ok := catalog[MesgNum(num)]
	return ok
}

// IsManufacturerSpecific reports whether num falls in the inclusive
// manufacturer-specific range.
func IsManufacturerSpecific(num uint16) bool {
	return num >= MfgRangeMin && num <= MfgRangeMax
}
