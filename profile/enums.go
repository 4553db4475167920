package profile

// Each enum type below follows the same shape: a handful of documented
// named values plus an Invalid sentinel substituted when
// Options.ErrorOnInvalidEnumValue is false and a decoded value falls
// outside the documented set (spec.md §4.5, §9 "Tagged variants").

// FileType is file_id's type field (field number 0).
type FileType uint8

const (
	FileTypeDevice   FileType = 1
	FileTypeSettings FileType = 2
	FileTypeSport    FileType = 3
	FileTypeActivity FileType = 4
	FileTypeWorkout  FileType = 5
	FileTypeCourse   FileType = 6
	FileTypeSchedule FileType = 7
	FileTypeInvalid  FileType = 0xFF
)

func fileTypeValid(v uint8) bool {
	switch FileType(v) {
	case FileTypeDevice, FileTypeSettings, FileTypeSport, FileTypeActivity,
		FileTypeWorkout, FileTypeCourse, FileTypeSchedule:
		return true
	default:
		return false
	}
}

// BatteryStatus is device_info's battery_status field (field number 11).
type BatteryStatus uint8

const (
	BatteryStatusNew      BatteryStatus = 1
	BatteryStatusGood     BatteryStatus = 2
	BatteryStatusOk       BatteryStatus = 3
	BatteryStatusLow      BatteryStatus = 4
	BatteryStatusCritical BatteryStatus = 5
	BatteryStatusInvalid  BatteryStatus = 0xFF
)

func batteryStatusValid(v uint8) bool {
	switch BatteryStatus(v) {
	case BatteryStatusNew, BatteryStatusGood, BatteryStatusOk, BatteryStatusLow, BatteryStatusCritical:
		return true
	default:
		return false
	}
}

// Event is the event field shared by event, lap, session and activity
// messages (field number 0 on each).
type Event uint8

const (
	EventTimer       Event = 0
	EventWorkout     Event = 3
	EventWorkoutStep Event = 4
	EventPowerDown   Event = 5
	EventPowerUp     Event = 6
	EventOffCourse   Event = 7
	EventSession     Event = 8
	EventLap         Event = 9
	EventBattery     Event = 11
	EventInvalid     Event = 0xFF
)

func eventValid(v uint8) bool {
	switch Event(v) {
	case EventTimer, EventWorkout, EventWorkoutStep, EventPowerDown, EventPowerUp,
		EventOffCourse, EventSession, EventLap, EventBattery:
		return true
	default:
		return false
	}
}

// EventType is the event_type field shared by event, lap and session
// messages (field number 1 on each).
type EventType uint8

const (
	EventTypeStart       EventType = 0
	EventTypeStop        EventType = 1
	EventTypeMarker      EventType = 3
	EventTypeStopAll     EventType = 4
	EventTypeBeginCourse EventType = 5
	EventTypeEndCourse   EventType = 6
	EventTypeInvalid     EventType = 0xFF
)

func eventTypeValid(v uint8) bool {
	switch EventType(v) {
	case EventTypeStart, EventTypeStop, EventTypeMarker, EventTypeStopAll,
		EventTypeBeginCourse, EventTypeEndCourse:
		return true
	default:
		return false
	}
}

// Sport is the sport field on session messages (field number 5).
type Sport uint8

const (
	SportGeneric          Sport = 0
	SportRunning          Sport = 1
	SportCycling          Sport = 2
	SportTransition       Sport = 3
	SportFitnessEquipment Sport = 4
	SportSwimming         Sport = 5
	SportInvalid          Sport = 0xFF
)

func sportValid(v uint8) bool {
	switch Sport(v) {
	case SportGeneric, SportRunning, SportCycling, SportTransition, SportFitnessEquipment, SportSwimming:
		return true
	default:
		return false
	}
}

// SubSport is the sub_sport field on session messages (field number 6).
type SubSport uint8

const (
	SubSportGeneric   SubSport = 0
	SubSportTreadmill SubSport = 1
	SubSportStreet    SubSport = 2
	SubSportTrail     SubSport = 3
	SubSportTrack     SubSport = 4
	SubSportInvalid   SubSport = 0xFF
)

func subSportValid(v uint8) bool {
	switch SubSport(v) {
	case SubSportGeneric, SubSportTreadmill, SubSportStreet, SubSportTrail, SubSportTrack:
		return true
	default:
		return false
	}
}

// ActivityType is the type field on activity messages (field number 2).
type ActivityType uint8

const (
	ActivityTypeManual         ActivityType = 0
	ActivityTypeAutoMultiSport ActivityType = 1
	ActivityTypeInvalid        ActivityType = 0xFF
)

func activityTypeValid(v uint8) bool {
	switch ActivityType(v) {
	case ActivityTypeManual, ActivityTypeAutoMultiSport:
		return true
	default:
		return false
	}
}
