package profile

import "github.com/gofitkit/fit/wire"

// FileIdMesg is file_id (global message number 0), the one message every
// well-formed FIT file carries.
type FileIdMesg struct {
	Type           FileType
	Manufacturer   uint16
	Product        uint16
	SerialNumber   uint32
	TimeCreated    uint32
	Number         uint16
	ProductName    string
	hasType        bool
	hasManufacturer bool
	hasProduct     bool
	hasSerial      bool
	hasTimeCreated bool
	hasNumber      bool
	hasProductName bool
}

func (m FileIdMesg) MesgNum() MesgNum { return MesgNumFileId }

var fileIdKind = Kind{
	Num:                  MesgNumFileId,
	ExpectedFieldNumbers: []uint8{0, 1, 2, 3, 4, 5, 8},
	New: func(f map[uint8]wire.Value, _ []wire.DeveloperMessageField, _ []wire.UndocumentedMessageField, strict bool) (Mesg, error) {
		m := FileIdMesg{}
		if v, ok := u8(f, 0); ok {
			t, err := castEnum("file_id.type", v, fileTypeValid, uint8(FileTypeInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.Type, m.hasType = FileType(t), true
		}
		m.Manufacturer, m.hasManufacturer = u16(f, 1)
		m.Product, m.hasProduct = u16(f, 2)
		m.SerialNumber, m.hasSerial = u32(f, 3)
		m.TimeCreated, m.hasTimeCreated = u32(f, 4)
		m.Number, m.hasNumber = u16(f, 5)
		m.ProductName, m.hasProductName = str(f, 8)
		return m, nil
	},
}

// DeviceInfoMesg is device_info (global message number 23).
type DeviceInfoMesg struct {
	Timestamp        uint32
	DeviceIndex      uint8
	Manufacturer     uint16
	SerialNumber     uint32
	Product          uint16
	SoftwareVersion  uint16
	BatteryStatus    BatteryStatus
	hasTimestamp     bool
	hasDeviceIndex   bool
	hasManufacturer  bool
	hasSerialNumber  bool
	hasProduct       bool
	hasSoftware      bool
	hasBatteryStatus bool
}

func (m DeviceInfoMesg) MesgNum() MesgNum { return MesgNumDeviceInfo }

var deviceInfoKind = Kind{
	Num:                  MesgNumDeviceInfo,
	ExpectedFieldNumbers: []uint8{253, 0, 2, 3, 4, 5, 11},
	New: func(f map[uint8]wire.Value, _ []wire.DeveloperMessageField, _ []wire.UndocumentedMessageField, strict bool) (Mesg, error) {
		m := DeviceInfoMesg{}
		m.Timestamp, m.hasTimestamp = u32(f, 253)
		m.DeviceIndex, m.hasDeviceIndex = u8(f, 0)
		m.Manufacturer, m.hasManufacturer = u16(f, 2)
		m.SerialNumber, m.hasSerialNumber = u32(f, 3)
		m.Product, m.hasProduct = u16(f, 4)
		m.SoftwareVersion, m.hasSoftware = u16(f, 5)
		if v, ok := u8(f, 11); ok {
			b, err := castEnum("device_info.battery_status", v, batteryStatusValid, uint8(BatteryStatusInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.BatteryStatus, m.hasBatteryStatus = BatteryStatus(b), true
		}
		return m, nil
	},
}

// EventMesg is event (global message number 21).
type EventMesg struct {
	Timestamp     uint32
	Event         Event
	EventType     EventType
	Data          uint32
	hasTimestamp  bool
	hasEvent      bool
	hasEventType  bool
	hasData       bool
}

func (m EventMesg) MesgNum() MesgNum { return MesgNumEvent }

var eventKind = Kind{
	Num:                  MesgNumEvent,
	ExpectedFieldNumbers: []uint8{253, 0, 1, 3},
	New: func(f map[uint8]wire.Value, _ []wire.DeveloperMessageField, _ []wire.UndocumentedMessageField, strict bool) (Mesg, error) {
		m := EventMesg{}
		m.Timestamp, m.hasTimestamp = u32(f, 253)
		if v, ok := u8(f, 0); ok {
			e, err := castEnum("event.event", v, eventValid, uint8(EventInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.Event, m.hasEvent = Event(e), true
		}
		if v, ok := u8(f, 1); ok {
			et, err := castEnum("event.event_type", v, eventTypeValid, uint8(EventTypeInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.EventType, m.hasEventType = EventType(et), true
		}
		m.Data, m.hasData = u32(f, 3)
		return m, nil
	},
}

// RecordMesg is record (global message number 20), the per-sample stream
// produced while an activity is recorded.
type RecordMesg struct {
	Timestamp       uint32
	PositionLat     int32
	PositionLong    int32
	HeartRate       uint8
	Cadence         uint8
	Distance        uint32
	Speed           uint16
	Power           uint16
	hasTimestamp    bool
	hasPositionLat  bool
	hasPositionLong bool
	hasHeartRate    bool
	hasCadence      bool
	hasDistance     bool
	hasSpeed        bool
	hasPower        bool
}

func (m RecordMesg) MesgNum() MesgNum { return MesgNumRecord }

var recordKind = Kind{
	Num:                  MesgNumRecord,
	ExpectedFieldNumbers: []uint8{253, 0, 1, 3, 4, 5, 6, 7},
	New: func(f map[uint8]wire.Value, _ []wire.DeveloperMessageField, _ []wire.UndocumentedMessageField, _ bool) (Mesg, error) {
		m := RecordMesg{}
		m.Timestamp, m.hasTimestamp = u32(f, 253)
		m.PositionLat, m.hasPositionLat = i32(f, 0)
		m.PositionLong, m.hasPositionLong = i32(f, 1)
		m.HeartRate, m.hasHeartRate = u8(f, 3)
		m.Cadence, m.hasCadence = u8(f, 4)
		m.Distance, m.hasDistance = u32(f, 5)
		m.Speed, m.hasSpeed = u16(f, 6)
		m.Power, m.hasPower = u16(f, 7)
		return m, nil
	},
}

// LapMesg is lap (global message number 19).
type LapMesg struct {
	MessageIndex        uint16
	Timestamp           uint32
	StartTime           uint32
	Event               Event
	EventType           EventType
	TotalElapsedTime    uint32
	TotalDistance       uint32
	hasMessageIndex     bool
	hasTimestamp        bool
	hasStartTime        bool
	hasEvent            bool
	hasEventType        bool
	hasTotalElapsedTime bool
	hasTotalDistance    bool
}

func (m LapMesg) MesgNum() MesgNum { return MesgNumLap }

var lapKind = Kind{
	Num:                  MesgNumLap,
	ExpectedFieldNumbers: []uint8{254, 253, 0, 1, 2, 7, 9},
	New: func(f map[uint8]wire.Value, _ []wire.DeveloperMessageField, _ []wire.UndocumentedMessageField, strict bool) (Mesg, error) {
		m := LapMesg{}
		m.MessageIndex, m.hasMessageIndex = u16(f, 254)
		m.Timestamp, m.hasTimestamp = u32(f, 253)
		m.StartTime, m.hasStartTime = u32(f, 2)
		if v, ok := u8(f, 0); ok {
			e, err := castEnum("lap.event", v, eventValid, uint8(EventInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.Event, m.hasEvent = Event(e), true
		}
		if v, ok := u8(f, 1); ok {
			et, err := castEnum("lap.event_type", v, eventTypeValid, uint8(EventTypeInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.EventType, m.hasEventType = EventType(et), true
		}
		m.TotalElapsedTime, m.hasTotalElapsedTime = u32(f, 7)
		m.TotalDistance, m.hasTotalDistance = u32(f, 9)
		return m, nil
	},
}

// SessionMesg is session (global message number 18).
type SessionMesg struct {
	MessageIndex     uint16
	Timestamp        uint32
	StartTime        uint32
	Sport            Sport
	SubSport         SubSport
	TotalElapsedTime uint32
	TotalDistance    uint32
	hasMessageIndex  bool
	hasTimestamp     bool
	hasStartTime     bool
	hasSport         bool
	hasSubSport      bool
	hasElapsed       bool
	hasDistance      bool
}

func (m SessionMesg) MesgNum() MesgNum { return MesgNumSession }

var sessionKind = Kind{
	Num:                  MesgNumSession,
	ExpectedFieldNumbers: []uint8{254, 253, 2, 5, 6, 7, 9},
	New: func(f map[uint8]wire.Value, _ []wire.DeveloperMessageField, _ []wire.UndocumentedMessageField, strict bool) (Mesg, error) {
		m := SessionMesg{}
		m.MessageIndex, m.hasMessageIndex = u16(f, 254)
		m.Timestamp, m.hasTimestamp = u32(f, 253)
		m.StartTime, m.hasStartTime = u32(f, 2)
		if v, ok := u8(f, 5); ok {
			s, err := castEnum("session.sport", v, sportValid, uint8(SportInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.Sport, m.hasSport = Sport(s), true
		}
		if v, ok := u8(f, 6); ok {
			s, err := castEnum("session.sub_sport", v, subSportValid, uint8(SubSportInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.SubSport, m.hasSubSport = SubSport(s), true
		}
		m.TotalElapsedTime, m.hasElapsed = u32(f, 7)
		m.TotalDistance, m.hasDistance = u32(f, 9)
		return m, nil
	},
}

// ActivityMesg is activity (global message number 34).
type ActivityMesg struct {
	Timestamp      uint32
	TotalTimerTime uint32
	NumSessions    uint16
	Type           ActivityType
	Event          Event
	EventType      EventType
	hasTimestamp   bool
	hasTotalTimer  bool
	hasNumSessions bool
	hasType        bool
	hasEvent       bool
	hasEventType   bool
}

func (m ActivityMesg) MesgNum() MesgNum { return MesgNumActivity }

var activityKind = Kind{
	Num:                  MesgNumActivity,
	ExpectedFieldNumbers: []uint8{253, 0, 1, 2, 3, 4},
	New: func(f map[uint8]wire.Value, _ []wire.DeveloperMessageField, _ []wire.UndocumentedMessageField, strict bool) (Mesg, error) {
		m := ActivityMesg{}
		m.Timestamp, m.hasTimestamp = u32(f, 253)
		m.TotalTimerTime, m.hasTotalTimer = u32(f, 0)
		m.NumSessions, m.hasNumSessions = u16(f, 1)
		if v, ok := u8(f, 2); ok {
			t, err := castEnum("activity.type", v, activityTypeValid, uint8(ActivityTypeInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.Type, m.hasType = ActivityType(t), true
		}
		if v, ok := u8(f, 3); ok {
			e, err := castEnum("activity.event", v, eventValid, uint8(EventInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.Event, m.hasEvent = Event(e), true
		}
		if v, ok := u8(f, 4); ok {
			et, err := castEnum("activity.event_type", v, eventTypeValid, uint8(EventTypeInvalid), strict)
			if err != nil {
				return nil, err
			}
			m.EventType, m.hasEventType = EventType(et), true
		}
		return m, nil
	},
}

// FileCreatorMesg is file_creator (global message number 49).
type FileCreatorMesg struct {
	SoftwareVersion uint16
	HardwareVersion uint8
	hasSoftware     bool
	hasHardware     bool
}

func (m FileCreatorMesg) MesgNum() MesgNum { return MesgNumFileCreator }

var fileCreatorKind = Kind{
	Num:                  MesgNumFileCreator,
	ExpectedFieldNumbers: []uint8{0, 1},
	New: func(f map[uint8]wire.Value, _ []wire.DeveloperMessageField, _ []wire.UndocumentedMessageField, _ bool) (Mesg, error) {
		m := FileCreatorMesg{}
		m.SoftwareVersion, m.hasSoftware = u16(f, 0)
		m.HardwareVersion, m.hasHardware = u8(f, 1)
		return m, nil
	},
}
