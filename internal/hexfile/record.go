package hexfile

// RecordType is the type field of an Intel HEX record.
type RecordType byte

// Record types defined by the Intel HEX format.
const (
	DataRecord                   RecordType = 0x00
	EOFRecord                    RecordType = 0x01
	ExtendedSegmentAddressRecord RecordType = 0x02
	StartSegmentAddressRecord    RecordType = 0x03
	ExtendedLinearAddressRecord  RecordType = 0x04
	StartLinearAddressRecord     RecordType = 0x05
)

const (
	// BlockSize is the size of the address window that a data record address field can express.
	BlockSize = 0x10000

	// MaxRecordLength is the largest payload byte count a record can carry.
	MaxRecordLength = 0xFF

	// DefaultRecordLength is the payload size used if none is requested.
	DefaultRecordLength = 16
)

var recordTypeNames = map[RecordType]string{
	DataRecord:                   "data",
	EOFRecord:                    "end of file",
	ExtendedSegmentAddressRecord: "extended segment address",
	StartSegmentAddressRecord:    "start segment address",
	ExtendedLinearAddressRecord:  "extended linear address",
	StartLinearAddressRecord:     "start linear address",
}

func (t RecordType) String() string {
	name, ok := recordTypeNames[t]
	if !ok {
		return "unknown"
	}
	return name
}
