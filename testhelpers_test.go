package fit

import "encoding/binary"

// wrapWithHeaderAndCRC prepends a 12-byte file header sized for body and
// appends the trailing CRC over the whole file, mirroring what a real FIT
// encoder emits around a record stream.
func wrapWithHeaderAndCRC(body []byte) []byte {
	header := make([]byte, 12)
	header[0] = headerSizeMinimum
	header[1] = 0x10
	binary.LittleEndian.PutUint16(header[2:4], 2132)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(body)))
	copy(header[8:12], dataTypeMagic)

	full := append(append([]byte{}, header...), body...)
	crc := NewCRC()
	for _, b := range full {
		crc.Update(b)
	}
	crcBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(crcBytes, crc.Current())
	return append(full, crcBytes...)
}

// fileIdDefinition builds a definition record for global message 0
// (file_id), local type 0, with two fields: type (enum, field 0) and
// manufacturer (uint16, field 1).
func fileIdDefinition() []byte {
	return []byte{
		0x40,       // header: definition, local type 0
		0x00,       // reserved
		0x00,       // architecture: little-endian
		0x00, 0x00, // global message number 0 (file_id)
		0x02,             // 2 fields
		0x00, 0x01, 0x00, // field 0 (type): size 1, base type enum (field byte 0x00)
		0x01, 0x02, 0x84, // field 1 (manufacturer): size 2, base type uint16 (field byte 0x84)
	}
}

// fileIdData builds a matching data record: type=FileTypeActivity(4),
// manufacturer=1.
func fileIdData() []byte {
	return []byte{
		0x00, // header: data, local type 0
		0x04, // type = 4 (activity)
		0x01, 0x00,
	}
}

// recordDefinition builds a definition record for global message 20
// (record), local type 1, with one field: heart_rate (uint8, field 3).
func recordDefinition() []byte {
	return []byte{
		0x41,        // header: definition, local type 1
		0x00,        // reserved
		0x00,        // architecture: little-endian
		0x14, 0x00,  // global message number 20 (record)
		0x01,        // 1 field
		0x03, 0x01, 0x02, // field 3 (heart_rate): size 1, base type uint8
	}
}

func recordData(heartRate byte) []byte {
	return []byte{0x01, heartRate} // header: data, local type 1
}
